// Package formatter renders sign state and run history as plain text.
// Styling stays in the TUI views; these helpers are shared by views and
// non-interactive commands.
package formatter

import (
	"fmt"
	"time"

	"github.com/storyhour/storysign/internal/domain"
)

// Clock renders elapsed story time as MM:SS.
func Clock(minutes, seconds int) string {
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// PackedClock renders the numeric display's packed value (minutes*100 +
// seconds, two decimal places) the way the seven-segment readout shows
// it.
func PackedClock(value int) string {
	return fmt.Sprintf("%02d.%02d", value/100, value%100)
}

// Elapsed renders a run length as MM:SS.
func Elapsed(seconds int) string {
	return Clock(seconds/60, seconds%60)
}

// RunRow renders one history line for the runs listing.
func RunRow(run *domain.Run) string {
	when := run.StartedAt.Local().Format("2006-01-02 15:04")
	if run.Kind == domain.RunPreview {
		return fmt.Sprintf("%s  preview  %8s  %s", when, "-", "rehearsal walk")
	}
	return fmt.Sprintf("%s  story    %8s  reached: %s", when, Elapsed(run.Seconds), run.PeakCue.Label())
}

// RunSummary renders the history footer with per-kind counts.
func RunSummary(counts map[domain.RunKind]int) string {
	return fmt.Sprintf("%d story runs, %d rehearsals logged",
		counts[domain.RunStory], counts[domain.RunPreview])
}

// TimelineEvent renders one cue transition for the demo timeline.
func TimelineEvent(at time.Duration, cue domain.Cue) string {
	total := int(at / time.Second)
	marker := "●"
	if cue == domain.CueNone {
		marker = "○"
	}
	return fmt.Sprintf("t=%s  %s %s", Clock(total/60, total%60), marker, cue.Label())
}
