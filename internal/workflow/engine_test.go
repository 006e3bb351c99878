package workflow

import (
	"errors"
	"testing"

	apperrors "translationflow/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateOf(statuses ...PhaseStatus) State {
	s := NewState()
	for i, st := range statuses {
		s.Phases[i] = st
	}
	return s
}

func TestNewState(t *testing.T) {
	s := NewState()

	assert.Equal(t, SubtitleTranslation, s.CurrentPhase)
	for _, p := range Sequence() {
		assert.Equal(t, NotStarted, s.Phases.Get(p), p.String())
	}
	assert.Equal(t, 0, Progress(s.Phases))
	assert.Equal(t, ProjectNotStarted, DeriveStatus(s.Phases))
}

func TestProgress(t *testing.T) {
	testCases := []struct {
		name     string
		phases   Phases
		expected int
	}{
		{"none completed", Phases{NotStarted, NotStarted, NotStarted, NotStarted}, 0},
		{"in progress carries no weight", Phases{InProgress, InProgress, InProgress, InProgress}, 0},
		{"one completed", Phases{Completed, InProgress, NotStarted, NotStarted}, 25},
		{"two completed", Phases{Completed, Completed, NotStarted, NotStarted}, 50},
		{"three completed", Phases{Completed, Completed, Completed, InProgress}, 75},
		{"all completed", Phases{Completed, Completed, Completed, Completed}, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Progress(tc.phases))
		})
	}
}

func TestProgressIsMonotonic(t *testing.T) {
	s := NewState()
	last := Progress(s.Phases)
	for _, p := range Sequence() {
		for _, st := range []PhaseStatus{InProgress, Completed} {
			s = Transition(s, p, st)
			current := Progress(s.Phases)
			assert.GreaterOrEqual(t, current, last, "%s -> %s", p, st)
			assert.GreaterOrEqual(t, current, 0)
			assert.LessOrEqual(t, current, 100)
			last = current
		}
	}
	assert.Equal(t, 100, last)
}

func TestIsStartable(t *testing.T) {
	t.Run("first phase is always startable", func(t *testing.T) {
		assert.True(t, IsStartable(NewState(), SubtitleTranslation))
		assert.True(t, IsStartable(stateOf(Completed, Completed, Completed, Completed), SubtitleTranslation))
	})

	t.Run("later phases need a completed predecessor", func(t *testing.T) {
		for _, prev := range Statuses() {
			s := stateOf(prev, NotStarted, NotStarted, NotStarted)
			assert.Equal(t, prev == Completed, IsStartable(s, TranslationProofreading), prev.String())
		}
	})

	t.Run("only the immediate predecessor matters", func(t *testing.T) {
		s := stateOf(NotStarted, NotStarted, Completed, NotStarted)
		assert.True(t, IsStartable(s, AudioReview))
		assert.False(t, IsStartable(s, AudioProduction))
	})
}

func TestTransition(t *testing.T) {
	t.Run("starting a phase moves the current phase", func(t *testing.T) {
		s := stateOf(Completed, Completed, NotStarted, NotStarted)
		require.Equal(t, 50, Progress(s.Phases))

		next := Transition(s, AudioProduction, InProgress)

		assert.Equal(t, AudioProduction, next.CurrentPhase)
		assert.Equal(t, Phases{Completed, Completed, InProgress, NotStarted}, next.Phases)
	})

	t.Run("in progress always wins regardless of prior current phase", func(t *testing.T) {
		s := stateOf(Completed, Completed, Completed, InProgress)
		s.CurrentPhase = AudioReview

		next := Transition(s, SubtitleTranslation, InProgress)

		assert.Equal(t, SubtitleTranslation, next.CurrentPhase)
	})

	t.Run("completing does not cascade", func(t *testing.T) {
		s := Transition(NewState(), SubtitleTranslation, InProgress)
		next := Transition(s, SubtitleTranslation, Completed)

		assert.Equal(t, Phases{Completed, NotStarted, NotStarted, NotStarted}, next.Phases)
		assert.Equal(t, SubtitleTranslation, next.CurrentPhase)
	})

	t.Run("input state is not mutated", func(t *testing.T) {
		s := NewState()
		_ = Transition(s, SubtitleTranslation, Completed)
		assert.Equal(t, NotStarted, s.Phases.Get(SubtitleTranslation))
	})

	t.Run("backward moves are applied as requested", func(t *testing.T) {
		s := stateOf(Completed, NotStarted, NotStarted, NotStarted)
		next := Transition(s, SubtitleTranslation, NotStarted)
		assert.Equal(t, NotStarted, next.Phases.Get(SubtitleTranslation))
	})
}

func TestCheckTransition(t *testing.T) {
	testCases := []struct {
		name    string
		state   State
		phase   Phase
		status  PhaseStatus
		wantErr error
	}{
		{"start first phase", NewState(), SubtitleTranslation, InProgress, nil},
		{"complete running phase", stateOf(InProgress, NotStarted, NotStarted, NotStarted), SubtitleTranslation, Completed, nil},
		{"same status is a no-op", stateOf(Completed, NotStarted, NotStarted, NotStarted), SubtitleTranslation, Completed, nil},
		{"start after completed predecessor", stateOf(Completed, NotStarted, NotStarted, NotStarted), TranslationProofreading, InProgress, nil},
		{"start before predecessor completes", stateOf(InProgress, NotStarted, NotStarted, NotStarted), TranslationProofreading, InProgress, apperrors.ErrPhaseNotStartable},
		{"skip to completed out of order", NewState(), AudioReview, Completed, apperrors.ErrPhaseNotStartable},
		{"reopen completed phase", stateOf(Completed, NotStarted, NotStarted, NotStarted), SubtitleTranslation, InProgress, apperrors.ErrBackwardTransition},
		{"reset running phase", stateOf(InProgress, NotStarted, NotStarted, NotStarted), SubtitleTranslation, NotStarted, apperrors.ErrBackwardTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckTransition(tc.state, tc.phase, tc.status)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, ProjectNotStarted, DeriveStatus(Phases{}))
	assert.Equal(t, ProjectActive, DeriveStatus(Phases{InProgress}))
	assert.Equal(t, ProjectActive, DeriveStatus(Phases{Completed, Completed, Completed, NotStarted}))
	assert.Equal(t, ProjectCompleted, DeriveStatus(Phases{Completed, Completed, Completed, Completed}))
}

func TestInvalidPhasePanics(t *testing.T) {
	var zero Phase

	assert.Panics(t, func() { NewState().Phases.Get(zero) })
	assert.Panics(t, func() { Transition(NewState(), Phase(9), InProgress) })
	assert.Panics(t, func() { IsStartable(NewState(), zero) })
	assert.Panics(t, func() { Transition(NewState(), AudioReview, PhaseStatus(7)) })
}
