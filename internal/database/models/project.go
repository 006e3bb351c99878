package models

import (
	"translationflow/internal/workflow"
)

// Project is a translation job moving through the four workflow phases
type Project struct {
	BaseModel       `bson:",inline"`
	Name            string          `json:"name" gorm:"not null;size:200" bson:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description" gorm:"type:text" bson:"description"`
	SourceLanguage  string          `json:"source_language" gorm:"not null;size:35" bson:"source_language" validate:"required"`
	TargetLanguages []string        `json:"target_languages" gorm:"type:jsonb;serializer:json;not null" bson:"target_languages" validate:"required,min=1"`
	Phases          workflow.Phases `json:"phases" gorm:"type:jsonb;serializer:json;not null" bson:"phases"`
	CurrentPhase    workflow.Phase  `json:"current_phase" gorm:"type:varchar(50);not null" bson:"current_phase"`
	CreatedBy       string          `json:"created_by" gorm:"not null;size:64;index" bson:"created_by"`
	Version         int64           `json:"version" gorm:"not null;default:1" bson:"version"`

	// Relationships
	Videos []Video `json:"videos,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" bson:"-"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// WorkflowState extracts the part of the project the workflow engine acts on.
func (p *Project) WorkflowState() workflow.State {
	return workflow.State{Phases: p.Phases, CurrentPhase: p.CurrentPhase}
}

// ApplyState copies an engine result back onto the project.
func (p *Project) ApplyState(s workflow.State) {
	p.Phases = s.Phases
	p.CurrentPhase = s.CurrentPhase
}

// Progress is the completion percentage of the project.
func (p *Project) Progress() int {
	return workflow.Progress(p.Phases)
}

// Status is the aggregate state derived from the phases.
func (p *Project) Status() workflow.ProjectStatus {
	return workflow.DeriveStatus(p.Phases)
}

// OwnedBy reports whether userID created the project.
func (p *Project) OwnedBy(userID string) bool {
	return p.CreatedBy == userID
}
