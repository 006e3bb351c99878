package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/gorm"
)

// PostgresPinger reports the health of a GORM connection pool
type PostgresPinger struct {
	db *gorm.DB
}

// NewPostgresPinger wraps db for health checks
func NewPostgresPinger(db *gorm.DB) *PostgresPinger {
	return &PostgresPinger{db: db}
}

func (p *PostgresPinger) Name() string { return "database" }

func (p *PostgresPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// MongoPinger reports the health of a MongoDB client
type MongoPinger struct {
	client *mongo.Client
}

// NewMongoPinger wraps client for health checks
func NewMongoPinger(client *mongo.Client) *MongoPinger {
	return &MongoPinger{client: client}
}

func (p *MongoPinger) Name() string { return "database" }

func (p *MongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
