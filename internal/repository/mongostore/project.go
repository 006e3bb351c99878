// Package mongostore implements the repository interfaces on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"translationflow/internal/database"
	"translationflow/internal/database/models"
	apperrors "translationflow/internal/errors"
	"translationflow/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProjectRepository stores projects as documents
type ProjectRepository struct {
	projects *mongo.Collection
	videos   *mongo.Collection
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{
		projects: db.Collection(database.ProjectsCollection),
		videos:   db.Collection(database.VideosCollection),
	}
}

// Create inserts a new project at version 1
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	project.EnsureID()
	project.Touch(now())
	project.Version = 1
	if _, err := r.projects.InsertOne(ctx, project); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.projects.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// ListByOwner retrieves every project created by ownerID, most recently updated first
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.projects.Find(ctx, bson.M{"created_by": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Update replaces the mutable fields only if the stored version still equals
// expectedVersion.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project, expectedVersion int64) error {
	updatedAt := now()
	set := bson.M{
		"name":             project.Name,
		"description":      project.Description,
		"source_language":  project.SourceLanguage,
		"target_languages": project.TargetLanguages,
		"phases":           project.Phases,
		"current_phase":    project.CurrentPhase,
		"version":          expectedVersion + 1,
		"updated_at":       updatedAt,
	}

	result, err := r.projects.UpdateOne(ctx,
		bson.M{"_id": project.ID, "version": expectedVersion},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if result.MatchedCount == 1 {
		project.Version = expectedVersion + 1
		project.UpdatedAt = updatedAt
		return nil
	}

	var stored struct {
		Version int64 `bson:"version"`
	}
	err = r.projects.FindOne(ctx, bson.M{"_id": project.ID},
		options.FindOne().SetProjection(bson.M{"version": 1})).Decode(&stored)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to read project version: %w", err)
	}
	return apperrors.NewConflictError("project", expectedVersion, stored.Version)
}

// Delete removes the project's videos and then the project. Without a
// replica set there are no multi-document transactions, so a crash in
// between leaves a project with no videos rather than orphaned videos.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := r.videos.DeleteMany(ctx, bson.M{"project_id": id}); err != nil {
		return fmt.Errorf("failed to delete videos: %w", err)
	}
	result, err := r.projects.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// NewRepositories wires the MongoDB implementations
func NewRepositories(db *mongo.Database) *repository.Repositories {
	return &repository.Repositories{
		Projects: NewProjectRepository(db),
		Videos:   NewVideoRepository(db),
		Users:    NewUserRepository(db),
	}
}

// now is truncated to the millisecond precision BSON dates keep.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
