package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/storyhour/storysign/internal/domain"
	"github.com/storyhour/storysign/internal/repository"
	"github.com/storyhour/storysign/internal/service"
	"github.com/storyhour/storysign/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &App{
		Runs:          service.NewRunService(repository.NewSQLiteRunRepo(database)),
		IsInteractive: func() bool { return false },
	}
}

func execute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func seedRuns(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()
	started := time.Date(2025, 3, 1, 19, 30, 0, 0, time.UTC)
	require.NoError(t, app.Runs.Record(ctx, &domain.Run{
		Kind:      domain.RunStory,
		StartedAt: started,
		EndedAt:   started.Add(10*time.Minute + 12*time.Second),
		Seconds:   612,
		PeakCue:   domain.CueTimeUpSlow,
	}))
	require.NoError(t, app.Runs.Record(ctx, &domain.Run{
		Kind:      domain.RunPreview,
		StartedAt: started.Add(time.Hour),
		EndedAt:   started.Add(time.Hour).Add(21 * time.Second),
	}))
}

func TestRunsCmd_EmptyHistory(t *testing.T) {
	app := newTestApp(t)

	out := execute(t, app, "runs")
	assert.Contains(t, out, "No sessions logged yet.")
}

func TestRunsCmd_ListsSessions(t *testing.T) {
	app := newTestApp(t)
	seedRuns(t, app)

	out := execute(t, app, "runs")
	assert.Contains(t, out, "story")
	assert.Contains(t, out, "10:12")
	assert.Contains(t, out, "time's up (slow blink)")
	assert.Contains(t, out, "rehearsal walk")
	assert.Contains(t, out, "1 story runs, 1 rehearsals logged")
}

func TestRunsCmd_LimitFlag(t *testing.T) {
	app := newTestApp(t)
	seedRuns(t, app)

	out := execute(t, app, "runs", "--limit", "1")
	assert.Contains(t, out, "rehearsal walk", "newest session shown")
	assert.NotContains(t, out, "10:12", "older session cut by the limit")
}

func TestRunsClearCmd_WithYesFlag(t *testing.T) {
	app := newTestApp(t)
	seedRuns(t, app)

	out := execute(t, app, "runs", "clear", "--yes")
	assert.Contains(t, out, "Deleted 2 sessions.")

	out = execute(t, app, "runs")
	assert.Contains(t, out, "No sessions logged yet.")
}

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	app := newTestApp(t)

	out := execute(t, app)
	assert.Contains(t, out, "storysign", "bare invocation without a terminal prints help")
	assert.Contains(t, out, "Available Commands")
}
