// Package backend opens the repository implementation selected by
// REPOSITORY_BACKEND.
package backend

import (
	"context"
	"fmt"

	"translationflow/internal/config"
	"translationflow/internal/database"
	apperrors "translationflow/internal/errors"
	"translationflow/internal/repository"
	"translationflow/internal/repository/mongostore"

	"github.com/sirupsen/logrus"
)

// Pinger reports whether the store is reachable
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// Backend bundles the repositories of one store with its lifecycle
type Backend struct {
	Name   string
	Repos  *repository.Repositories
	Health Pinger
	close  func() error
}

// Close releases the underlying connections
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open connects to the configured store and prepares its schema
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.RepositoryBackend {
	case config.BackendPostgres:
		return openPostgres(cfg)
	case config.BackendMongo:
		return openMongo(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownRepositoryBackend, cfg.RepositoryBackend)
	}
}

func openPostgres(cfg *config.Config) (*Backend, error) {
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logrus.WithField("backend", config.BackendPostgres).Info("Repository backend ready")

	return &Backend{
		Name:   config.BackendPostgres,
		Repos:  repository.NewPostgresRepositories(db),
		Health: database.NewPostgresPinger(db),
		close: func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config) (*Backend, error) {
	client, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.MongoDatabase)
	if err := database.EnsureMongoIndexes(ctx, db); err != nil {
		_ = database.CloseMongo(client)
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"backend":  config.BackendMongo,
		"database": cfg.MongoDatabase,
	}).Info("Repository backend ready")

	return &Backend{
		Name:   config.BackendMongo,
		Repos:  mongostore.NewRepositories(db),
		Health: database.NewMongoPinger(client),
		close:  func() error { return database.CloseMongo(client) },
	}, nil
}
