package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(ctx context.Context, ownerID string, req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(ctx context.Context, ownerID, id string) (*ProjectResponse, error)
	ListByOwner(ctx context.Context, ownerID string) (*ProjectListResponse, error)
	Update(ctx context.Context, ownerID, id string, req *UpdateProjectRequest) (*ProjectResponse, error)
	GetPhase(ctx context.Context, ownerID, id, phaseKey string) (*PhaseResponse, error)
	UpdatePhaseStatus(ctx context.Context, ownerID, id, phaseKey string, req *UpdatePhaseRequest) (*ProjectResponse, error)
	Delete(ctx context.Context, ownerID, id string) error
	Stats(ctx context.Context, ownerID string) (*StatsResponse, error)
}

// VideoServiceInterface defines the interface for video service
type VideoServiceInterface interface {
	Create(ctx context.Context, ownerID, projectID string, req *CreateVideoRequest) (*VideoResponse, error)
	GetByID(ctx context.Context, ownerID, projectID, videoID string) (*VideoResponse, error)
	ListByProject(ctx context.Context, ownerID, projectID string) (*VideoListResponse, error)
	Update(ctx context.Context, ownerID, projectID, videoID string, req *UpdateVideoRequest) (*VideoResponse, error)
	UpdateStatus(ctx context.Context, ownerID, projectID, videoID string, req *UpdateVideoStatusRequest) (*VideoResponse, error)
	Delete(ctx context.Context, ownerID, projectID, videoID string) error
}

var (
	_ ProjectServiceInterface = (*ProjectService)(nil)
	_ VideoServiceInterface   = (*VideoService)(nil)
)
