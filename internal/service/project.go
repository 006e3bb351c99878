package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"translationflow/internal/database/models"
	apperrors "translationflow/internal/errors"
	"translationflow/internal/language"
	"translationflow/internal/logger"
	"translationflow/internal/repository"
	"translationflow/internal/workflow"

	"github.com/go-playground/validator/v10"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=200"`
	Description     string   `json:"description" validate:"required,max=5000"`
	SourceLanguage  string   `json:"source_language" validate:"required,langcode"`
	TargetLanguages []string `json:"target_languages" validate:"required,min=1,unique,notcontainsfield=SourceLanguage,dive,langcode"`
}

// UpdateProjectRequest represents a partial edit of a project's descriptive
// fields. Omitted fields keep their stored value and phase state is never
// touched by an edit.
type UpdateProjectRequest struct {
	Name            *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	SourceLanguage  *string   `json:"source_language,omitempty" validate:"omitempty,langcode"`
	TargetLanguages *[]string `json:"target_languages,omitempty" validate:"omitempty,min=1,unique,dive,langcode"`
	// Version, when set, must match the stored version
	Version *int64 `json:"version,omitempty"`
}

// UpdatePhaseRequest represents a requested status change of one phase
type UpdatePhaseRequest struct {
	Status string `json:"status" validate:"required,oneof=not_started in_progress completed"`
	// Version, when set, must match the stored version
	Version *int64 `json:"version,omitempty"`
	// Force skips the forward-only and startability checks
	Force bool `json:"force,omitempty"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description"`
	SourceLanguage  string                 `json:"source_language"`
	TargetLanguages []string               `json:"target_languages"`
	Phases          workflow.Phases        `json:"phases" swaggertype:"object,string"`
	CurrentPhase    workflow.Phase         `json:"current_phase" swaggertype:"string" example:"subtitle_translation"`
	Progress        int                    `json:"progress" example:"50"`
	Status          workflow.ProjectStatus `json:"status" example:"active"`
	Version         int64                  `json:"version"`
	CreatedBy       string                 `json:"created_by"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

// ProjectListResponse represents the list of a user's projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
}

// PhaseResponse describes one phase of one project
type PhaseResponse struct {
	ProjectID   string               `json:"project_id"`
	Phase       workflow.Phase       `json:"phase" swaggertype:"string" example:"audio_production"`
	Order       int                  `json:"order"`
	Label       string               `json:"label"`
	Description string               `json:"description"`
	Status      workflow.PhaseStatus `json:"status" swaggertype:"string" example:"not_started"`
	StatusLabel string               `json:"status_label"`
	Startable   bool                 `json:"startable"`
	IsCurrent   bool                 `json:"is_current"`
	Next        *workflow.Phase      `json:"next,omitempty" swaggertype:"string"`
	Previous    *workflow.Phase      `json:"previous,omitempty" swaggertype:"string"`
	Progress    int                  `json:"progress"`
	Version     int64                `json:"version"`
}

// Create creates a new project owned by ownerID with every phase not started
func (s *ProjectService) Create(ctx context.Context, ownerID string, req *CreateProjectRequest) (*ProjectResponse, error) {
	normalizeProjectInput(&req.Name, &req.Description, &req.SourceLanguage, &req.TargetLanguages)
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:            req.Name,
		Description:     req.Description,
		SourceLanguage:  req.SourceLanguage,
		TargetLanguages: req.TargetLanguages,
		CreatedBy:       ownerID,
	}
	project.ApplyState(workflow.NewState())

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	logger.WithContext(ctx).WithField("project_id", project.ID).Info("project created")
	return toProjectResponse(project), nil
}

// GetByID retrieves a project the caller owns
func (s *ProjectService) GetByID(ctx context.Context, ownerID, id string) (*ProjectResponse, error) {
	project, err := s.loadOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// ListByOwner retrieves the caller's projects, most recently updated first
func (s *ProjectService) ListByOwner(ctx context.Context, ownerID string) (*ProjectListResponse, error) {
	projects, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *toProjectResponse(&projects[i])
	}

	return &ProjectListResponse{
		Projects: responses,
		Total:    int64(len(responses)),
	}, nil
}

// Update applies the fields present in req to the descriptive fields of a project
func (s *ProjectService) Update(ctx context.Context, ownerID, id string, req *UpdateProjectRequest) (*ProjectResponse, error) {
	normalizeProjectPatch(req)
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	project, err := s.loadOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	expected := project.Version
	if req.Version != nil {
		expected = *req.Version
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.SourceLanguage != nil {
		project.SourceLanguage = *req.SourceLanguage
	}
	if req.TargetLanguages != nil {
		project.TargetLanguages = *req.TargetLanguages
	}
	// either side of the pair may still be the stored value
	if slices.Contains(project.TargetLanguages, project.SourceLanguage) {
		return nil, apperrors.NewValidationError("target_languages", "must not include the source language")
	}

	if err := s.repo.Update(ctx, project, expected); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return toProjectResponse(project), nil
}

// GetPhase describes one phase of a project together with its startability
func (s *ProjectService) GetPhase(ctx context.Context, ownerID, id, phaseKey string) (*PhaseResponse, error) {
	phase, err := workflow.ParsePhase(phaseKey)
	if err != nil {
		return nil, err
	}

	project, err := s.loadOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	return toPhaseResponse(project, phase), nil
}

// UpdatePhaseStatus moves one phase to a new status. Unless req.Force is set,
// the change must be forward-only and the phase must be startable. The write
// is conditional on the project version.
func (s *ProjectService) UpdatePhaseStatus(ctx context.Context, ownerID, id, phaseKey string, req *UpdatePhaseRequest) (*ProjectResponse, error) {
	phase, err := workflow.ParsePhase(phaseKey)
	if err != nil {
		return nil, err
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	status, err := workflow.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	project, err := s.loadOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	expected := project.Version
	if req.Version != nil {
		expected = *req.Version
	}

	state := project.WorkflowState()
	if !req.Force {
		if err := workflow.CheckTransition(state, phase, status); err != nil {
			return nil, err
		}
	}

	from := state.Phases.Get(phase)
	project.ApplyState(workflow.Transition(state, phase, status))

	if err := s.repo.Update(ctx, project, expected); err != nil {
		return nil, fmt.Errorf("failed to update phase: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": project.ID,
		"phase":      phase.String(),
		"from":       from.String(),
		"to":         status.String(),
		"forced":     req.Force,
	}).Info("phase status changed")

	return toProjectResponse(project), nil
}

// Delete removes a project and its videos
func (s *ProjectService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.loadOwned(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	logger.WithContext(ctx).WithField("project_id", id).Info("project deleted")
	return nil
}

// loadOwned fetches a project and checks that ownerID created it
func (s *ProjectService) loadOwned(ctx context.Context, ownerID, id string) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if !project.OwnedBy(ownerID) {
		return nil, apperrors.ErrNotProjectOwner
	}
	return project, nil
}

func normalizeProjectInput(name, description, source *string, targets *[]string) {
	*name = strings.TrimSpace(*name)
	*description = strings.TrimSpace(*description)
	*source = language.Normalize(*source)
	if len(*targets) > 0 {
		normalized := make([]string, len(*targets))
		for i, t := range *targets {
			normalized[i] = language.Normalize(t)
		}
		*targets = normalized
	}
}

// normalizeProjectPatch trims and canonicalises only the fields present in req
func normalizeProjectPatch(req *UpdateProjectRequest) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		req.Description = &description
	}
	if req.SourceLanguage != nil {
		source := language.Normalize(*req.SourceLanguage)
		req.SourceLanguage = &source
	}
	if req.TargetLanguages != nil {
		targets := make([]string, len(*req.TargetLanguages))
		for i, t := range *req.TargetLanguages {
			targets[i] = language.Normalize(t)
		}
		req.TargetLanguages = &targets
	}
}

func toProjectResponse(project *models.Project) *ProjectResponse {
	targets := project.TargetLanguages
	if targets == nil {
		targets = []string{}
	}
	return &ProjectResponse{
		ID:              project.ID,
		Name:            project.Name,
		Description:     project.Description,
		SourceLanguage:  project.SourceLanguage,
		TargetLanguages: targets,
		Phases:          project.Phases,
		CurrentPhase:    project.CurrentPhase,
		Progress:        project.Progress(),
		Status:          project.Status(),
		Version:         project.Version,
		CreatedBy:       project.CreatedBy,
		CreatedAt:       project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       project.UpdatedAt.Format(time.RFC3339),
	}
}

func toPhaseResponse(project *models.Project, phase workflow.Phase) *PhaseResponse {
	state := project.WorkflowState()
	status := state.Phases.Get(phase)
	resp := &PhaseResponse{
		ProjectID:   project.ID,
		Phase:       phase,
		Order:       phase.Index() + 1,
		Label:       phase.Label(),
		Description: phase.Description(),
		Status:      status,
		StatusLabel: status.Label(),
		Startable:   workflow.IsStartable(state, phase),
		IsCurrent:   state.CurrentPhase == phase,
		Progress:    workflow.Progress(state.Phases),
		Version:     project.Version,
	}
	if next, ok := phase.Next(); ok {
		resp.Next = &next
	}
	if prev, ok := phase.Previous(); ok {
		resp.Previous = &prev
	}
	return resp
}
