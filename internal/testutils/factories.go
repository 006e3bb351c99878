package testutils

import (
	"fmt"
	"time"

	"translationflow/internal/database/models"
	"translationflow/internal/workflow"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.NewString()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("translator-%s@test.com", id[:8]),
		DisplayName:  "Test Translator",
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z4BOPXgyM4zJ8wY0Gj8DX3y.",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a fresh project owned by ownerID with every phase not started
func (f *ProjectFactory) Create(ownerID string) *models.Project {
	project := &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "Documentary Season 1",
		Description:     "Subtitles and dubbing for the first season",
		SourceLanguage:  "en",
		TargetLanguages: []string{"es", "fr"},
		CreatedBy:       ownerID,
		Version:         1,
	}
	project.ApplyState(workflow.NewState())
	return project
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(ownerID, name string) *models.Project {
	project := f.Create(ownerID)
	project.Name = name
	return project
}

// WithPhases sets the phase map and current phase of the project
func (f *ProjectFactory) WithPhases(ownerID string, phases workflow.Phases, current workflow.Phase) *models.Project {
	project := f.Create(ownerID)
	project.Phases = phases
	project.CurrentPhase = current
	return project
}

// VideoFactory provides methods to create test Video data
type VideoFactory struct{}

// NewVideoFactory creates a new VideoFactory
func NewVideoFactory() *VideoFactory {
	return &VideoFactory{}
}

// Create creates a pending video inside projectID
func (f *VideoFactory) Create(projectID, ownerID string) *models.Video {
	return &models.Video{
		BaseModel: models.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:         projectID,
		Title:             "Episode 1",
		Description:       "Pilot episode",
		SourceFileName:    "episode-1.srt",
		SourceLanguage:    "en",
		TargetLanguage:    "es",
		SourceFileContent: "1\n00:00:01,000 --> 00:00:03,000\nHello there\n",
		Status:            models.VideoStatusPending,
		CreatedBy:         ownerID,
	}
}

// WithStatus sets a custom status for the video
func (f *VideoFactory) WithStatus(projectID, ownerID string, status models.VideoStatus) *models.Video {
	video := f.Create(projectID, ownerID)
	video.Status = status
	return video
}
