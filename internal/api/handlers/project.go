package handlers

import (
	"net/http"

	"translationflow/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Description Create a translation project owned by the caller. Every phase starts as not_started.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(c, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects handles GET /projects
// @Summary List projects
// @Description List the caller's projects, most recently updated first
// @Tags projects
// @Produce json
// @Success 200 {object} service.ProjectListResponse "Successfully retrieved projects"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListByOwner(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Description Get a specific project with its phase map and progress
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(c, userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:id
// @Summary Update project
// @Description Edit any of the name, description and languages of a project. Omitted fields keep their value and phase state is left untouched.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body service.UpdateProjectRequest true "Updated project data"
// @Success 200 {object} service.ProjectResponse "Successfully updated project"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Project was modified concurrently"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.Update(c, userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete project
// @Description Delete a project together with its videos
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204 "Successfully deleted project"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c, userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStats handles GET /projects/stats
// @Summary Dashboard statistics
// @Description Aggregate counts over the caller's projects
// @Tags projects
// @Produce json
// @Success 200 {object} service.StatsResponse "Statistics"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/stats [get]
func (h *ProjectHandler) GetStats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := h.projectService.Stats(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetPhase handles GET /projects/:id/phases/:phase
// @Summary Get phase
// @Description Describe one phase of a project, including whether it may start
// @Tags phases
// @Produce json
// @Param id path string true "Project ID"
// @Param phase path string true "Phase key" Enums(subtitle_translation, translation_proofreading, audio_production, audio_review)
// @Success 200 {object} service.PhaseResponse "Phase details"
// @Failure 400 {object} ErrorResponse "Unknown phase"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/phases/{phase} [get]
func (h *ProjectHandler) GetPhase(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	phase, err := h.projectService.GetPhase(c, userID, c.Param("id"), c.Param("phase"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, phase)
}

// UpdatePhaseStatus handles PUT /projects/:id/phases/:phase
// @Summary Change phase status
// @Description Move a phase to a new status. Backward moves and starting a phase before its predecessor is completed are refused unless force is set.
// @Tags phases
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param phase path string true "Phase key" Enums(subtitle_translation, translation_proofreading, audio_production, audio_review)
// @Param request body service.UpdatePhaseRequest true "New status"
// @Success 200 {object} service.ProjectResponse "Updated project"
// @Failure 400 {object} ErrorResponse "Unknown phase or status"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Transition refused or version conflict"
// @Security BearerAuth
// @Router /projects/{id}/phases/{phase} [put]
func (h *ProjectHandler) UpdatePhaseStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.UpdatePhaseRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.UpdatePhaseStatus(c, userID, c.Param("id"), c.Param("phase"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}
