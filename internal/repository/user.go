package repository

import (
	"context"
	"errors"

	"translationflow/internal/database/models"
	apperrors "translationflow/internal/errors"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user; a taken email yields ErrUserExists
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrUserExists
	}
	return err
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if !validIDs(id) {
		return nil, apperrors.ErrUserNotFound
	}
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update saves the mutable account fields; the email is never changed
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	if !validIDs(user.ID) {
		return apperrors.ErrUserNotFound
	}

	result := r.db.WithContext(ctx).Model(user).
		Select("display_name", "password_hash", "updated_at").
		Updates(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// NewPostgresRepositories wires the GORM implementations
func NewPostgresRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Projects: NewProjectRepository(db),
		Videos:   NewVideoRepository(db),
		Users:    NewUserRepository(db),
	}
}
