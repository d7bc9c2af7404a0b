package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/storyhour/storysign/internal/domain"
	"github.com/storyhour/storysign/internal/repository"
)

// RunService manages the sign's session history.
type RunService interface {
	// Record stores a completed session, assigning an ID if missing.
	Record(ctx context.Context, run *domain.Run) error
	// ListRecent returns the newest runs, most recent first.
	ListRecent(ctx context.Context, limit int) ([]*domain.Run, error)
	// Counts returns how many sessions of each kind are logged.
	Counts(ctx context.Context) (map[domain.RunKind]int, error)
	// Clear deletes the entire history, returning the number removed.
	Clear(ctx context.Context) (int64, error)
}

type runService struct {
	runs repository.RunRepo
}

// NewRunService creates a RunService backed by the given repository.
func NewRunService(runs repository.RunRepo) RunService {
	return &runService{runs: runs}
}

func (s *runService) Record(ctx context.Context, run *domain.Run) error {
	if run.Kind != domain.RunStory && run.Kind != domain.RunPreview {
		return fmt.Errorf("unknown run kind %q", run.Kind)
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.PeakCue == "" {
		run.PeakCue = domain.CueNone
	}
	if !domain.ValidCues[string(run.PeakCue)] {
		return fmt.Errorf("unknown peak cue %q", run.PeakCue)
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	if err := s.runs.Create(ctx, run); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

func (s *runService) ListRecent(ctx context.Context, limit int) ([]*domain.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.runs.ListRecent(ctx, limit)
}

func (s *runService) Counts(ctx context.Context) (map[domain.RunKind]int, error) {
	return s.runs.CountByKind(ctx)
}

func (s *runService) Clear(ctx context.Context) (int64, error) {
	return s.runs.DeleteAll(ctx)
}
