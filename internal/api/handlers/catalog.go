package handlers

import (
	"net/http"

	"translationflow/internal/language"
	"translationflow/internal/workflow"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static phase and language catalogs
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// PhaseCatalogResponse lists the workflow phases in order
type PhaseCatalogResponse struct {
	Phases []workflow.PhaseInfo `json:"phases"`
}

// LanguageCatalogResponse lists selectable languages
type LanguageCatalogResponse struct {
	Languages []language.Language `json:"languages"`
	Total     int                 `json:"total"`
}

// ListPhases handles GET /phases
// @Summary List workflow phases
// @Description The four phases every project moves through, in order
// @Tags catalog
// @Produce json
// @Success 200 {object} PhaseCatalogResponse "Phase catalog"
// @Security BearerAuth
// @Router /phases [get]
func (h *CatalogHandler) ListPhases(c *gin.Context) {
	c.JSON(http.StatusOK, PhaseCatalogResponse{Phases: workflow.Catalog()})
}

// ListLanguages handles GET /languages
// @Summary List languages
// @Description Languages offered as source and target, common ones first
// @Tags catalog
// @Produce json
// @Param q query string false "Filter by name or code"
// @Success 200 {object} LanguageCatalogResponse "Language catalog"
// @Security BearerAuth
// @Router /languages [get]
func (h *CatalogHandler) ListLanguages(c *gin.Context) {
	languages := language.Search(c.Query("q"))
	c.JSON(http.StatusOK, LanguageCatalogResponse{Languages: languages, Total: len(languages)})
}
