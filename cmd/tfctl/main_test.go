package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"translationflow/internal/config"
	apperrors "translationflow/internal/errors"
	"translationflow/internal/mocks"
	"translationflow/internal/service"
	"translationflow/internal/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const projectID = "7b0c2f0e-8e9a-4b55-9a57-0f3c6f3b1d10"

func runCLI(t *testing.T, svc service.ProjectServiceInterface, args ...string) (string, error) {
	t.Helper()

	ctx := newCommandContext()
	ctx.loadConfig = func() (*config.Config, error) {
		return &config.Config{RepositoryBackend: config.BackendPostgres}, nil
	}
	ctx.open = func(context.Context, *config.Config) (service.ProjectServiceInterface, io.Closer, error) {
		return svc, io.NopCloser(nil), nil
	}

	cmd := newRootCommand(ctx)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func sampleProject() service.ProjectResponse {
	var phases workflow.Phases
	phases.Set(workflow.SubtitleTranslation, workflow.Completed)
	phases.Set(workflow.TranslationProofreading, workflow.Completed)
	phases.Set(workflow.AudioProduction, workflow.InProgress)
	return service.ProjectResponse{
		ID:              projectID,
		Name:            "Ocean Documentary",
		SourceLanguage:  "en",
		TargetLanguages: []string{"es", "pt-BR"},
		Phases:          phases,
		CurrentPhase:    workflow.AudioProduction,
		Progress:        50,
		Status:          workflow.ProjectActive,
		Version:         4,
		CreatedBy:       "owner-1",
		UpdatedAt:       "2026-10-01T10:00:00Z",
	}
}

func TestProjectsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProjectServiceInterface(ctrl)
	svc.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return(&service.ProjectListResponse{
		Projects: []service.ProjectResponse{sampleProject()},
		Total:    1,
	}, nil)

	out, err := runCLI(t, svc, "projects", "list", "--owner", "owner-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Ocean Documentary")
	assert.Contains(t, out, "en -> es, pt-BR")
	assert.Contains(t, out, "Audio Production")
	assert.Contains(t, out, "50%")
}

func TestProjectsListEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProjectServiceInterface(ctrl)
	svc.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return(&service.ProjectListResponse{
		Projects: []service.ProjectResponse{},
	}, nil)

	out, err := runCLI(t, svc, "projects", "list", "--owner", "owner-1")

	require.NoError(t, err)
	assert.Contains(t, out, "No projects found")
}

func TestProjectsListJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProjectServiceInterface(ctrl)
	svc.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return(&service.ProjectListResponse{
		Projects: []service.ProjectResponse{sampleProject()},
		Total:    1,
	}, nil)

	out, err := runCLI(t, svc, "--json", "projects", "list", "--owner", "owner-1")

	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Ocean Documentary"`)
	assert.Contains(t, out, `"current_phase": "audio_production"`)
	assert.Contains(t, out, `"total": 1`)
}

func TestProjectsRequireOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProjectServiceInterface(ctrl)

	_, err := runCLI(t, svc, "projects", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner")
}

func TestProjectsShow(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProjectServiceInterface(ctrl)
	project := sampleProject()
	svc.EXPECT().GetByID(gomock.Any(), "owner-1", projectID).Return(&project, nil)

	out, err := runCLI(t, svc, "projects", "show", projectID, "--owner", "owner-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Project:   Ocean Documentary")
	assert.Contains(t, out, "Version:   4")
	assert.Contains(t, out, "Subtitle Translation")
	assert.Contains(t, out, "Not Started")
	assert.Contains(t, out, "*")
}

func TestProjectsShowNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProjectServiceInterface(ctrl)
	svc.EXPECT().GetByID(gomock.Any(), "owner-1", projectID).Return(nil, apperrors.ErrProjectNotFound)

	_, err := runCLI(t, svc, "projects", "show", projectID, "--owner", "owner-1")

	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}

func TestProjectsPhase(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProjectServiceInterface(ctrl)
	project := sampleProject()
	project.Version = 5
	svc.EXPECT().
		UpdatePhaseStatus(gomock.Any(), "owner-1", projectID, "audio_production", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, req *service.UpdatePhaseRequest) (*service.ProjectResponse, error) {
			assert.Equal(t, "completed", req.Status)
			assert.True(t, req.Force)
			require.NotNil(t, req.Version)
			assert.Equal(t, int64(4), *req.Version)
			return &project, nil
		})

	out, err := runCLI(t, svc, "projects", "phase", projectID, "audio_production", "completed",
		"--owner", "owner-1", "--force", "--version", "4")

	require.NoError(t, err)
	assert.Contains(t, out, "audio_production is now completed")
	assert.Contains(t, out, "version 5")
}

func TestProjectsPhaseWithoutVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProjectServiceInterface(ctrl)
	svc.EXPECT().
		UpdatePhaseStatus(gomock.Any(), "owner-1", projectID, "audio_review", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, req *service.UpdatePhaseRequest) (*service.ProjectResponse, error) {
			assert.Nil(t, req.Version)
			assert.False(t, req.Force)
			return nil, apperrors.ErrPhaseNotStartable
		})

	_, err := runCLI(t, svc, "projects", "phase", projectID, "audio_review", "in_progress", "--owner", "owner-1")

	assert.ErrorIs(t, err, apperrors.ErrPhaseNotStartable)
}

func TestProjectsPhaseArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProjectServiceInterface(ctrl)

	_, err := runCLI(t, svc, "projects", "phase", projectID, "audio_review", "--owner", "owner-1")

	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProjectServiceInterface(ctrl)
	svc.EXPECT().Stats(gomock.Any(), "owner-1").Return(&service.StatsResponse{
		ActiveProjects:        3,
		PendingTranslations:   1,
		CompletedTranslations: 1,
		TotalLanguages:        5,
		AverageProgress:       33,
		ByStatus: map[workflow.ProjectStatus]int{
			workflow.ProjectNotStarted: 1,
			workflow.ProjectActive:     2,
		},
	}, nil)

	out, err := runCLI(t, svc, "stats", "--owner", "owner-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Average progress")
	assert.Contains(t, out, "33%")
	assert.Contains(t, out, "Status completed")
}

func TestOpenFailure(t *testing.T) {
	ctx := newCommandContext()
	ctx.loadConfig = func() (*config.Config, error) { return &config.Config{}, nil }
	ctx.open = func(context.Context, *config.Config) (service.ProjectServiceInterface, io.Closer, error) {
		return nil, nil, errors.New("connection refused")
	}

	cmd := newRootCommand(ctx)
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"stats", "--owner", "owner-1"})

	err := cmd.Execute()
	assert.EqualError(t, err, "connection refused")
}

func TestConfigFailure(t *testing.T) {
	ctx := newCommandContext()
	ctx.loadConfig = func() (*config.Config, error) { return nil, errors.New("bad yaml") }

	cmd := newRootCommand(ctx)
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"stats", "--owner", "owner-1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad yaml")
}
