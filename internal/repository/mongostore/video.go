package mongostore

import (
	"context"
	"errors"
	"fmt"

	"translationflow/internal/database"
	"translationflow/internal/database/models"
	apperrors "translationflow/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VideoRepository stores videos in their own collection keyed by project
type VideoRepository struct {
	videos *mongo.Collection
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{videos: db.Collection(database.VideosCollection)}
}

// Create creates a new video
func (r *VideoRepository) Create(ctx context.Context, video *models.Video) error {
	video.EnsureID()
	video.Touch(now())
	if video.Status == "" {
		video.Status = models.VideoStatusPending
	}
	if _, err := r.videos.InsertOne(ctx, video); err != nil {
		return fmt.Errorf("insert video: %w", err)
	}
	return nil
}

// GetByID retrieves a video by ID within a project
func (r *VideoRepository) GetByID(ctx context.Context, projectID, videoID string) (*models.Video, error) {
	var video models.Video
	err := r.videos.FindOne(ctx, bson.M{"_id": videoID, "project_id": projectID}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}

// ListByProject retrieves all videos of a project, most recently updated first
func (r *VideoRepository) ListByProject(ctx context.Context, projectID string) ([]models.Video, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.videos.Find(ctx, bson.M{"project_id": projectID}, opts)
	if err != nil {
		return nil, err
	}
	videos := []models.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// Update updates a video
func (r *VideoRepository) Update(ctx context.Context, video *models.Video) error {
	updatedAt := now()
	set := bson.M{
		"title":                       video.Title,
		"description":                 video.Description,
		"source_file_name":            video.SourceFileName,
		"source_language":             video.SourceLanguage,
		"target_language":             video.TargetLanguage,
		"source_file_content":         video.SourceFileContent,
		"translated_file_name":        video.TranslatedFileName,
		"translated_file_content":     video.TranslatedFileContent,
		"original_translated_content": video.OriginalTranslatedContent,
		"video_url":                   video.VideoURL,
		"audio_url":                   video.AudioURL,
		"status":                      video.Status,
		"updated_at":                  updatedAt,
	}
	result, err := r.videos.UpdateOne(ctx,
		bson.M{"_id": video.ID, "project_id": video.ProjectID},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("update video: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrVideoNotFound
	}
	video.UpdatedAt = updatedAt
	return nil
}

// Delete deletes a video
func (r *VideoRepository) Delete(ctx context.Context, projectID, videoID string) error {
	result, err := r.videos.DeleteOne(ctx, bson.M{"_id": videoID, "project_id": projectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrVideoNotFound
	}
	return nil
}

// CountByProject returns the number of videos in a project
func (r *VideoRepository) CountByProject(ctx context.Context, projectID string) (int64, error) {
	return r.videos.CountDocuments(ctx, bson.M{"project_id": projectID})
}
