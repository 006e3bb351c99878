package service

import (
	"context"
	"fmt"

	"translationflow/internal/database/models"
	"translationflow/internal/workflow"
)

// StatsResponse summarizes a user's projects for the dashboard
type StatsResponse struct {
	// ActiveProjects counts every project the user owns
	ActiveProjects int `json:"active_projects"`
	// PendingTranslations counts projects with subtitle translation or
	// proofreading in progress
	PendingTranslations int `json:"pending_translations"`
	// CompletedTranslations counts projects whose two translation phases
	// are both completed
	CompletedTranslations int `json:"completed_translations"`
	// TotalLanguages counts distinct source and target languages
	TotalLanguages  int                            `json:"total_languages"`
	AverageProgress int                            `json:"average_progress"`
	ByStatus        map[workflow.ProjectStatus]int `json:"by_status"`
}

// Stats aggregates the caller's projects
func (s *ProjectService) Stats(ctx context.Context, ownerID string) (*StatsResponse, error) {
	projects, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return ComputeStats(projects), nil
}

// ComputeStats aggregates a set of projects
func ComputeStats(projects []models.Project) *StatsResponse {
	stats := &StatsResponse{
		ActiveProjects: len(projects),
		ByStatus: map[workflow.ProjectStatus]int{
			workflow.ProjectNotStarted: 0,
			workflow.ProjectActive:     0,
			workflow.ProjectCompleted:  0,
		},
	}

	languages := make(map[string]struct{})
	progressSum := 0
	for i := range projects {
		p := &projects[i]
		subtitles := p.Phases.Get(workflow.SubtitleTranslation)
		proofreading := p.Phases.Get(workflow.TranslationProofreading)

		if subtitles == workflow.InProgress || proofreading == workflow.InProgress {
			stats.PendingTranslations++
		}
		if subtitles == workflow.Completed && proofreading == workflow.Completed {
			stats.CompletedTranslations++
		}

		for _, lang := range p.TargetLanguages {
			languages[lang] = struct{}{}
		}
		languages[p.SourceLanguage] = struct{}{}

		progressSum += p.Progress()
		stats.ByStatus[p.Status()]++
	}

	stats.TotalLanguages = len(languages)
	if len(projects) > 0 {
		stats.AverageProgress = progressSum / len(projects)
	}
	return stats
}
