package repository

import (
	"context"
	"errors"

	"translationflow/internal/database/models"
	apperrors "translationflow/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var videoColumns = []string{
	"title",
	"description",
	"source_file_name",
	"source_language",
	"target_language",
	"source_file_content",
	"translated_file_name",
	"translated_file_content",
	"original_translated_content",
	"video_url",
	"audio_url",
	"status",
	"updated_at",
}

// VideoRepository handles database operations for videos
type VideoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create creates a new video
func (r *VideoRepository) Create(ctx context.Context, video *models.Video) error {
	if video.Status == "" {
		video.Status = models.VideoStatusPending
	}
	return r.db.WithContext(ctx).Create(video).Error
}

// GetByID retrieves a video by ID within a project
func (r *VideoRepository) GetByID(ctx context.Context, projectID, videoID string) (*models.Video, error) {
	if !validIDs(projectID, videoID) {
		return nil, apperrors.ErrVideoNotFound
	}

	var video models.Video
	err := r.db.WithContext(ctx).First(&video, "id = ? AND project_id = ?", videoID, projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}

// ListByProject retrieves all videos of a project, most recently updated first
func (r *VideoRepository) ListByProject(ctx context.Context, projectID string) ([]models.Video, error) {
	videos := []models.Video{}
	if !validIDs(projectID) {
		return videos, nil
	}
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("updated_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// Update updates a video
func (r *VideoRepository) Update(ctx context.Context, video *models.Video) error {
	if !validIDs(video.ProjectID, video.ID) {
		return apperrors.ErrVideoNotFound
	}

	result := r.db.WithContext(ctx).Model(video).
		Where("project_id = ?", video.ProjectID).
		Select(videoColumns).
		Updates(video)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrVideoNotFound
	}
	return nil
}

// Delete deletes a video
func (r *VideoRepository) Delete(ctx context.Context, projectID, videoID string) error {
	if !validIDs(projectID, videoID) {
		return apperrors.ErrVideoNotFound
	}

	result := r.db.WithContext(ctx).Delete(&models.Video{}, "id = ? AND project_id = ?", videoID, projectID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrVideoNotFound
	}
	return nil
}

// CountByProject returns the number of videos in a project
func (r *VideoRepository) CountByProject(ctx context.Context, projectID string) (int64, error) {
	var count int64
	if !validIDs(projectID) {
		return 0, nil
	}
	err := r.db.WithContext(ctx).Model(&models.Video{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

func validIDs(ids ...string) bool {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return false
		}
	}
	return true
}
