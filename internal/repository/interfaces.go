package repository

import (
	"context"

	"translationflow/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations.
// Implementations return apperrors.ErrProjectNotFound for missing projects and
// a ConflictError when Update observes a different stored version.
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project, expectedVersion int64) error
	Delete(ctx context.Context, id string) error
}

// VideoRepositoryInterface defines the interface for video repository operations.
// Videos are always addressed through their parent project.
type VideoRepositoryInterface interface {
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, projectID, videoID string) (*models.Video, error)
	ListByProject(ctx context.Context, projectID string) ([]models.Video, error)
	Update(ctx context.Context, video *models.Video) error
	Delete(ctx context.Context, projectID, videoID string) error
	CountByProject(ctx context.Context, projectID string) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// Repositories bundles one backend's implementations
type Repositories struct {
	Projects ProjectRepositoryInterface
	Videos   VideoRepositoryInterface
	Users    UserRepositoryInterface
}
