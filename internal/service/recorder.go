package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/storyhour/storysign/internal/domain"
	"github.com/storyhour/storysign/internal/sign"
)

var _ sign.RunRecorder = (*Recorder)(nil)

// Recorder adapts RunService to the controller's RunRecorder interface.
// Writes are best-effort: the control loop must keep driving the sign
// even if the log is unavailable, so failures are counted and otherwise
// swallowed. The counter is atomic because the control loop increments
// it while other goroutines may read it.
type Recorder struct {
	runs    RunService
	dropped atomic.Int64
}

// NewRecorder creates a Recorder writing through the given service.
func NewRecorder(runs RunService) *Recorder {
	return &Recorder{runs: runs}
}

func (r *Recorder) RecordStory(started, ended time.Time, seconds int, peak domain.Cue) {
	r.record(&domain.Run{
		Kind:      domain.RunStory,
		StartedAt: started,
		EndedAt:   ended,
		Seconds:   seconds,
		PeakCue:   peak,
	})
}

func (r *Recorder) RecordPreview(started, ended time.Time) {
	r.record(&domain.Run{
		Kind:      domain.RunPreview,
		StartedAt: started,
		EndedAt:   ended,
		PeakCue:   domain.CueNone,
	})
}

func (r *Recorder) record(run *domain.Run) {
	if err := r.runs.Record(context.Background(), run); err != nil {
		r.dropped.Add(1)
	}
}

// Dropped reports how many sessions failed to persist.
func (r *Recorder) Dropped() int64 { return r.dropped.Load() }
