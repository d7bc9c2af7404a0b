package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/storyhour/storysign/internal/domain"
)

// SQLiteRunRepo implements RunRepo using a SQLite database.
type SQLiteRunRepo struct {
	db *sql.DB
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(db *sql.DB) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: db}
}

func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.Run) error {
	query := `INSERT INTO runs (id, kind, started_at, ended_at, seconds, peak_cue, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		string(run.Kind),
		run.StartedAt.Format(time.RFC3339),
		run.EndedAt.Format(time.RFC3339),
		run.Seconds,
		string(run.PeakCue),
		run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	query := `SELECT id, kind, started_at, ended_at, seconds, peak_cue, created_at
		FROM runs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanRun(row)
}

func (r *SQLiteRunRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Run, error) {
	query := `SELECT id, kind, started_at, ended_at, seconds, peak_cue, created_at
		FROM runs ORDER BY started_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent runs: %w", err)
	}
	defer rows.Close()
	return r.scanRuns(rows)
}

func (r *SQLiteRunRepo) CountByKind(ctx context.Context) (map[domain.RunKind]int, error) {
	query := `SELECT kind, COUNT(*) FROM runs GROUP BY kind`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting runs: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.RunKind]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scanning run count: %w", err)
		}
		counts[domain.RunKind(kind)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteRunRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM runs`)
	if err != nil {
		return 0, fmt.Errorf("deleting runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted runs: %w", err)
	}
	return n, nil
}

// scanRun scans a single run from a *sql.Row.
func (r *SQLiteRunRepo) scanRun(row *sql.Row) (*domain.Run, error) {
	var run domain.Run
	var kind, peakCue, startedAtStr, endedAtStr, createdAtStr string

	err := row.Scan(&run.ID, &kind, &startedAtStr, &endedAtStr, &run.Seconds, &peakCue, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	return r.populateRun(&run, kind, peakCue, startedAtStr, endedAtStr, createdAtStr)
}

// scanRuns scans multiple runs from *sql.Rows.
func (r *SQLiteRunRepo) scanRuns(rows *sql.Rows) ([]*domain.Run, error) {
	var runs []*domain.Run
	for rows.Next() {
		var run domain.Run
		var kind, peakCue, startedAtStr, endedAtStr, createdAtStr string

		err := rows.Scan(&run.ID, &kind, &startedAtStr, &endedAtStr, &run.Seconds, &peakCue, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}

		populated, parseErr := r.populateRun(&run, kind, peakCue, startedAtStr, endedAtStr, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		runs = append(runs, populated)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// populateRun fills in parsed fields on a Run after scanning raw strings.
func (r *SQLiteRunRepo) populateRun(run *domain.Run, kind, peakCue, startedAtStr, endedAtStr, createdAtStr string) (*domain.Run, error) {
	run.Kind = domain.RunKind(kind)
	run.PeakCue = domain.Cue(peakCue)

	var parseErr error
	run.StartedAt, parseErr = time.Parse(time.RFC3339, startedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing started_at: %w", parseErr)
	}
	run.EndedAt, parseErr = time.Parse(time.RFC3339, endedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing ended_at: %w", parseErr)
	}
	run.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	return run, nil
}
