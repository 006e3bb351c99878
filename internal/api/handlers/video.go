package handlers

import (
	"net/http"

	"translationflow/internal/service"

	"github.com/gin-gonic/gin"
)

// VideoHandler handles HTTP requests for the videos of a project
type VideoHandler struct {
	videoService service.VideoServiceInterface
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(videoService service.VideoServiceInterface) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// CreateVideo handles POST /projects/:id/videos
// @Summary Add a video
// @Description Add a video to a project. New videos are pending.
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param video body service.CreateVideoRequest true "Video data"
// @Success 201 {object} service.VideoResponse "Successfully created video"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/videos [post]
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateVideoRequest
	if !bindJSON(c, &req) {
		return
	}

	video, err := h.videoService.Create(c, userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

// ListVideos handles GET /projects/:id/videos
// @Summary List videos
// @Description List the videos of a project
// @Tags videos
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} service.VideoListResponse "Successfully retrieved videos"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	videos, err := h.videoService.ListByProject(c, userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, videos)
}

// GetVideo handles GET /projects/:id/videos/:videoId
// @Summary Get video
// @Tags videos
// @Produce json
// @Param id path string true "Project ID"
// @Param videoId path string true "Video ID"
// @Success 200 {object} service.VideoResponse "Successfully retrieved video"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project or video not found"
// @Security BearerAuth
// @Router /projects/{id}/videos/{videoId} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	video, err := h.videoService.GetByID(c, userID, c.Param("id"), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

// UpdateVideo handles PUT /projects/:id/videos/:videoId
// @Summary Update video
// @Description Update the given fields of a video; omitted fields are kept
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param videoId path string true "Video ID"
// @Param video body service.UpdateVideoRequest true "Fields to change"
// @Success 200 {object} service.VideoResponse "Successfully updated video"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project or video not found"
// @Security BearerAuth
// @Router /projects/{id}/videos/{videoId} [put]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.UpdateVideoRequest
	if !bindJSON(c, &req) {
		return
	}

	video, err := h.videoService.Update(c, userID, c.Param("id"), c.Param("videoId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

// UpdateVideoStatus handles PUT /projects/:id/videos/:videoId/status
// @Summary Change video status
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param videoId path string true "Video ID"
// @Param request body service.UpdateVideoStatusRequest true "New status"
// @Success 200 {object} service.VideoResponse "Successfully updated video"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project or video not found"
// @Security BearerAuth
// @Router /projects/{id}/videos/{videoId}/status [put]
func (h *VideoHandler) UpdateVideoStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.UpdateVideoStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	video, err := h.videoService.UpdateStatus(c, userID, c.Param("id"), c.Param("videoId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

// DeleteVideo handles DELETE /projects/:id/videos/:videoId
// @Summary Delete video
// @Tags videos
// @Param id path string true "Project ID"
// @Param videoId path string true "Video ID"
// @Success 204 "Successfully deleted video"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project or video not found"
// @Security BearerAuth
// @Router /projects/{id}/videos/{videoId} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.videoService.Delete(c, userID, c.Param("id"), c.Param("videoId")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
