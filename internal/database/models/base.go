package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys.
// IDs are kept as strings so the same model serves the SQL and document
// backends.
type BaseModel struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey" bson:"_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	base.EnsureID()
	return nil
}

// EnsureID assigns a fresh UUID when the model has none.
func (base *BaseModel) EnsureID() {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
}

// Touch stamps the timestamps the way the SQL backend does on insert.
func (base *BaseModel) Touch(now time.Time) {
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}
