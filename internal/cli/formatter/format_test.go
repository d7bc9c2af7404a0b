package formatter

import (
	"testing"
	"time"

	"github.com/storyhour/storysign/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClockFormats(t *testing.T) {
	assert.Equal(t, "00:00", Clock(0, 0))
	assert.Equal(t, "06:05", Clock(6, 5))
	assert.Equal(t, "11:59", Clock(11, 59))
}

func TestPackedClockMatchesDisplay(t *testing.T) {
	assert.Equal(t, "00.00", PackedClock(0))
	assert.Equal(t, "06.20", PackedClock(620))
	assert.Equal(t, "10.59", PackedClock(1059))
}

func TestElapsedRollsMinutes(t *testing.T) {
	assert.Equal(t, "10:30", Elapsed(630))
}

func TestRunRowVariants(t *testing.T) {
	started := time.Date(2025, 3, 1, 19, 30, 0, 0, time.UTC)

	story := &domain.Run{Kind: domain.RunStory, StartedAt: started, Seconds: 612, PeakCue: domain.CueTimeUp}
	assert.Contains(t, RunRow(story), "story")
	assert.Contains(t, RunRow(story), "10:12")
	assert.Contains(t, RunRow(story), "time's up")

	preview := &domain.Run{Kind: domain.RunPreview, StartedAt: started}
	assert.Contains(t, RunRow(preview), "rehearsal walk")
}

func TestTimelineEvent(t *testing.T) {
	assert.Equal(t, "t=06:00  ● 4 minutes", TimelineEvent(6*time.Minute, domain.CueFourMinutes))
	assert.Equal(t, "t=06:20  ○ clear", TimelineEvent(6*time.Minute+20*time.Second, domain.CueNone))
}
