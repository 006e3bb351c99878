package workflow

import (
	"fmt"
	"math"

	apperrors "translationflow/internal/errors"
)

// State is the workflow-relevant part of a project.
type State struct {
	Phases       Phases
	CurrentPhase Phase
}

// NewState is the state of a freshly created project: every phase not
// started, positioned at the first phase.
func NewState() State {
	return State{CurrentPhase: First()}
}

// Progress is the share of completed phases as a percentage, rounded to the
// nearest integer. In-progress phases carry no weight.
func Progress(ps Phases) int {
	completed := ps.Count(Completed)
	return int(math.Round(float64(completed) / PhaseCount * 100))
}

// IsStartable reports whether p may begin: the first phase always may, any
// other phase only once its predecessor is completed.
func IsStartable(s State, p Phase) bool {
	prev, ok := p.Previous()
	if !ok {
		return true
	}
	return s.Phases.Get(prev) == Completed
}

// Transition sets the status of p. Moving a phase to InProgress also makes
// it the current phase. Neighbouring phases are never touched.
func Transition(s State, p Phase, status PhaseStatus) State {
	s.Phases.Set(p, status)
	if status == InProgress {
		s.CurrentPhase = p
	}
	return s
}

// CheckTransition applies the forward-only policy to a requested change.
// Same-status requests pass. Moving to an earlier status returns
// ErrBackwardTransition; leaving NotStarted while the previous phase is
// unfinished returns ErrPhaseNotStartable.
func CheckTransition(s State, p Phase, status PhaseStatus) error {
	status.mustIndex()
	from := s.Phases.Get(p)
	switch {
	case from == status:
		return nil
	case status < from:
		return fmt.Errorf("%w: %s is %s, requested %s", apperrors.ErrBackwardTransition, p, from, status)
	case from == NotStarted && !IsStartable(s, p):
		prev, _ := p.Previous()
		return fmt.Errorf("%w: %s requires %s to be completed", apperrors.ErrPhaseNotStartable, p, prev)
	}
	return nil
}

// ProjectStatus is the aggregate state of a whole project, derived from its
// phases.
type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not_started"
	ProjectActive     ProjectStatus = "active"
	ProjectCompleted  ProjectStatus = "completed"
)

// DeriveStatus folds the phase map into a single project status.
func DeriveStatus(ps Phases) ProjectStatus {
	switch {
	case ps.Count(Completed) == PhaseCount:
		return ProjectCompleted
	case ps.Count(NotStarted) == PhaseCount:
		return ProjectNotStarted
	default:
		return ProjectActive
	}
}
