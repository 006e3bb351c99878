package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"translationflow/internal/database/models"
	apperrors "translationflow/internal/errors"
	"translationflow/internal/language"
	"translationflow/internal/logger"
	"translationflow/internal/repository"

	"github.com/go-playground/validator/v10"
)

// VideoService handles business logic for the videos of a project
type VideoService struct {
	repo        repository.VideoRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// NewVideoService creates a new video service
func NewVideoService(repo repository.VideoRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, validator *validator.Validate) *VideoService {
	return &VideoService{
		repo:        repo,
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// CreateVideoRequest represents the request to add a video to a project
type CreateVideoRequest struct {
	Title                 string `json:"title" validate:"required,min=1,max=200"`
	Description           string `json:"description,omitempty" validate:"max=5000"`
	SourceFileName        string `json:"source_file_name" validate:"required,max=255"`
	SourceLanguage        string `json:"source_language" validate:"required,langcode"`
	TargetLanguage        string `json:"target_language" validate:"required,langcode,nefield=SourceLanguage"`
	SourceFileContent     string `json:"source_file_content,omitempty"`
	TranslatedFileName    string `json:"translated_file_name,omitempty" validate:"max=255"`
	TranslatedFileContent string `json:"translated_file_content,omitempty"`
	VideoURL              string `json:"video_url,omitempty" validate:"omitempty,url,max=2000"`
	AudioURL              string `json:"audio_url,omitempty" validate:"omitempty,url,max=2000"`
}

// UpdateVideoRequest represents a partial update; nil fields are left as is
type UpdateVideoRequest struct {
	Title                     *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description               *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	SourceFileName            *string `json:"source_file_name,omitempty" validate:"omitempty,max=255"`
	SourceLanguage            *string `json:"source_language,omitempty" validate:"omitempty,langcode"`
	TargetLanguage            *string `json:"target_language,omitempty" validate:"omitempty,langcode"`
	SourceFileContent         *string `json:"source_file_content,omitempty"`
	TranslatedFileName        *string `json:"translated_file_name,omitempty" validate:"omitempty,max=255"`
	TranslatedFileContent     *string `json:"translated_file_content,omitempty"`
	OriginalTranslatedContent *string `json:"original_translated_content,omitempty"`
	VideoURL                  *string `json:"video_url,omitempty" validate:"omitempty,url,max=2000"`
	AudioURL                  *string `json:"audio_url,omitempty" validate:"omitempty,url,max=2000"`
}

// UpdateVideoStatusRequest represents a video status change
type UpdateVideoStatusRequest struct {
	Status models.VideoStatus `json:"status" validate:"required,oneof=pending in_progress completed" swaggertype:"string" example:"in_progress"`
}

// VideoResponse represents the response for video operations
type VideoResponse struct {
	ID                        string             `json:"id"`
	ProjectID                 string             `json:"project_id"`
	Title                     string             `json:"title"`
	Description               string             `json:"description"`
	SourceFileName            string             `json:"source_file_name"`
	SourceLanguage            string             `json:"source_language"`
	TargetLanguage            string             `json:"target_language"`
	SourceFileContent         string             `json:"source_file_content,omitempty"`
	TranslatedFileName        string             `json:"translated_file_name,omitempty"`
	TranslatedFileContent     string             `json:"translated_file_content,omitempty"`
	OriginalTranslatedContent string             `json:"original_translated_content,omitempty"`
	VideoURL                  string             `json:"video_url,omitempty"`
	AudioURL                  string             `json:"audio_url,omitempty"`
	Status                    models.VideoStatus `json:"status" swaggertype:"string"`
	CreatedBy                 string             `json:"created_by"`
	CreatedAt                 string             `json:"created_at"`
	UpdatedAt                 string             `json:"updated_at"`
}

// VideoListResponse represents the videos of a project
type VideoListResponse struct {
	Videos []VideoResponse `json:"videos"`
	Total  int64           `json:"total"`
}

// Create adds a pending video to a project the caller owns
func (s *VideoService) Create(ctx context.Context, ownerID, projectID string, req *CreateVideoRequest) (*VideoResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.SourceLanguage = language.Normalize(req.SourceLanguage)
	req.TargetLanguage = language.Normalize(req.TargetLanguage)
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.checkProjectOwner(ctx, ownerID, projectID); err != nil {
		return nil, err
	}

	video := &models.Video{
		ProjectID:             projectID,
		Title:                 req.Title,
		Description:           strings.TrimSpace(req.Description),
		SourceFileName:        req.SourceFileName,
		SourceLanguage:        req.SourceLanguage,
		TargetLanguage:        req.TargetLanguage,
		SourceFileContent:     req.SourceFileContent,
		TranslatedFileName:    req.TranslatedFileName,
		TranslatedFileContent: req.TranslatedFileContent,
		VideoURL:              req.VideoURL,
		AudioURL:              req.AudioURL,
		Status:                models.VideoStatusPending,
		CreatedBy:             ownerID,
	}

	if err := s.repo.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": projectID,
		"video_id":   video.ID,
	}).Info("video created")
	return toVideoResponse(video), nil
}

// GetByID retrieves a video of a project the caller owns
func (s *VideoService) GetByID(ctx context.Context, ownerID, projectID, videoID string) (*VideoResponse, error) {
	if err := s.checkProjectOwner(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	video, err := s.get(ctx, projectID, videoID)
	if err != nil {
		return nil, err
	}
	return toVideoResponse(video), nil
}

// ListByProject retrieves the videos of a project, most recently updated first
func (s *VideoService) ListByProject(ctx context.Context, ownerID, projectID string) (*VideoListResponse, error) {
	if err := s.checkProjectOwner(ctx, ownerID, projectID); err != nil {
		return nil, err
	}

	videos, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	responses := make([]VideoResponse, len(videos))
	for i := range videos {
		responses[i] = *toVideoResponse(&videos[i])
	}
	return &VideoListResponse{Videos: responses, Total: int64(len(responses))}, nil
}

// Update applies the non-nil fields of req to a video
func (s *VideoService) Update(ctx context.Context, ownerID, projectID, videoID string, req *UpdateVideoRequest) (*VideoResponse, error) {
	req.Title = trimmed(req.Title)
	req.Description = trimmed(req.Description)
	if req.SourceLanguage != nil {
		normalized := language.Normalize(*req.SourceLanguage)
		req.SourceLanguage = &normalized
	}
	if req.TargetLanguage != nil {
		normalized := language.Normalize(*req.TargetLanguage)
		req.TargetLanguage = &normalized
	}
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.checkProjectOwner(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	video, err := s.get(ctx, projectID, videoID)
	if err != nil {
		return nil, err
	}

	applyString(&video.Title, req.Title)
	applyString(&video.Description, req.Description)
	applyString(&video.SourceFileName, req.SourceFileName)
	applyString(&video.SourceLanguage, req.SourceLanguage)
	applyString(&video.TargetLanguage, req.TargetLanguage)
	applyString(&video.SourceFileContent, req.SourceFileContent)
	applyString(&video.TranslatedFileName, req.TranslatedFileName)
	applyString(&video.TranslatedFileContent, req.TranslatedFileContent)
	applyString(&video.OriginalTranslatedContent, req.OriginalTranslatedContent)
	applyString(&video.VideoURL, req.VideoURL)
	applyString(&video.AudioURL, req.AudioURL)

	if video.SourceLanguage == video.TargetLanguage {
		return nil, apperrors.NewValidationError("target_language", "must differ from the source language")
	}

	if err := s.repo.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	return toVideoResponse(video), nil
}

// UpdateStatus changes the processing status of a video
func (s *VideoService) UpdateStatus(ctx context.Context, ownerID, projectID, videoID string, req *UpdateVideoStatusRequest) (*VideoResponse, error) {
	req.Status = models.VideoStatus(strings.ToLower(strings.TrimSpace(string(req.Status))))
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.checkProjectOwner(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	video, err := s.get(ctx, projectID, videoID)
	if err != nil {
		return nil, err
	}

	video.Status = req.Status
	if err := s.repo.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to update video status: %w", err)
	}
	return toVideoResponse(video), nil
}

// Delete removes a video
func (s *VideoService) Delete(ctx context.Context, ownerID, projectID, videoID string) error {
	if err := s.checkProjectOwner(ctx, ownerID, projectID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, projectID, videoID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return nil
}

func (s *VideoService) checkProjectOwner(ctx context.Context, ownerID, projectID string) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to get project: %w", err)
	}
	if !project.OwnedBy(ownerID) {
		return apperrors.ErrNotProjectOwner
	}
	return nil
}

func (s *VideoService) get(ctx context.Context, projectID, videoID string) (*models.Video, error) {
	video, err := s.repo.GetByID(ctx, projectID, videoID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return video, nil
}

func trimmed(src *string) *string {
	if src == nil {
		return nil
	}
	value := strings.TrimSpace(*src)
	return &value
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func toVideoResponse(video *models.Video) *VideoResponse {
	return &VideoResponse{
		ID:                        video.ID,
		ProjectID:                 video.ProjectID,
		Title:                     video.Title,
		Description:               video.Description,
		SourceFileName:            video.SourceFileName,
		SourceLanguage:            video.SourceLanguage,
		TargetLanguage:            video.TargetLanguage,
		SourceFileContent:         video.SourceFileContent,
		TranslatedFileName:        video.TranslatedFileName,
		TranslatedFileContent:     video.TranslatedFileContent,
		OriginalTranslatedContent: video.OriginalTranslatedContent,
		VideoURL:                  video.VideoURL,
		AudioURL:                  video.AudioURL,
		Status:                    video.Status,
		CreatedBy:                 video.CreatedBy,
		CreatedAt:                 video.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                 video.UpdatedAt.Format(time.RFC3339),
	}
}
