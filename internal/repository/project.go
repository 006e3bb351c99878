package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"translationflow/internal/database/models"
	apperrors "translationflow/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// projectColumns are the columns a versioned update writes. created_by and
// created_at never change after insert.
var projectColumns = []string{
	"name",
	"description",
	"source_language",
	"target_languages",
	"phases",
	"current_phase",
	"version",
	"updated_at",
}

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project at version 1
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	project.Version = 1
	return r.db.WithContext(ctx).Omit("Videos").Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// ListByOwner retrieves every project created by ownerID, most recently updated first
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	projects := []models.Project{}
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("updated_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update writes the project only if the stored version still equals
// expectedVersion. On success project.Version is the new version.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project, expectedVersion int64) error {
	if _, err := uuid.Parse(project.ID); err != nil {
		return apperrors.ErrProjectNotFound
	}

	db := r.db.WithContext(ctx)
	previousUpdatedAt := project.UpdatedAt
	project.Version = expectedVersion + 1
	project.UpdatedAt = time.Now()

	result := db.Model(project).
		Where("version = ?", expectedVersion).
		Select(projectColumns).
		Updates(project)
	if result.Error != nil {
		project.Version, project.UpdatedAt = expectedVersion, previousUpdatedAt
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	project.Version, project.UpdatedAt = expectedVersion, previousUpdatedAt
	var stored models.Project
	err := db.Select("id", "version").First(&stored, "id = ?", project.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to read project version: %w", err)
	}
	return apperrors.NewConflictError("project", expectedVersion, stored.Version)
}

// Delete removes a project together with its videos in one transaction
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrProjectNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Video{}).Error; err != nil {
			return fmt.Errorf("failed to delete videos: %w", err)
		}
		result := tx.Delete(&models.Project{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrProjectNotFound
		}
		return nil
	})
}
