// Package store keeps a SQLite-backed history of computed runs, so
// scans and maps can be re-exported or re-plotted without recomputing.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/san-kum/magsim/internal/magmath"
)

type Store struct {
	conn *sqlx.DB
}

// Run is the stored metadata of one field evaluation.
type Run struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	Scenario  string    `db:"scenario"`
	Field     string    `db:"field"`
	Points    int       `db:"points"`
	ElapsedMS int64     `db:"elapsed_ms"`
}

type sampleRow struct {
	RunID string  `db:"run_id"`
	Idx   int     `db:"idx"`
	X     float64 `db:"x"`
	Y     float64 `db:"y"`
	Z     float64 `db:"z"`
	FX    float64 `db:"fx"`
	FY    float64 `db:"fy"`
	FZ    float64 `db:"fz"`
}

// Open opens or creates the run database at path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		scenario TEXT NOT NULL,
		field TEXT NOT NULL,
		points INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS samples (
		run_id TEXT NOT NULL REFERENCES runs(id),
		idx INTEGER NOT NULL,
		x REAL NOT NULL,
		y REAL NOT NULL,
		z REAL NOT NULL,
		fx REAL NOT NULL,
		fy REAL NOT NULL,
		fz REAL NOT NULL,
		PRIMARY KEY (run_id, idx)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// SaveRun stores one evaluation and returns its generated id.
func (s *Store) SaveRun(scenario, fieldName string, elapsed time.Duration, observers, values []magmath.Vec3) (string, error) {
	if len(observers) != len(values) {
		return "", fmt.Errorf("observers/values length mismatch: %d vs %d", len(observers), len(values))
	}

	id := uuid.NewString()

	tx, err := s.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (id, created_at, scenario, field, points, elapsed_ms) VALUES (?, ?, ?, ?, ?, ?)",
		id, time.Now().UTC(), scenario, fieldName, len(values), elapsed.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Preparex(
		"INSERT INTO samples (run_id, idx, x, y, z, fx, fy, fz) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, obs := range observers {
		v := values[i]
		if _, err := stmt.Exec(id, i, obs.X, obs.Y, obs.Z, v.X, v.Y, v.Z); err != nil {
			return "", fmt.Errorf("insert sample %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []Run
	err := s.conn.Select(&runs,
		"SELECT id, created_at, scenario, field, points, elapsed_ms FROM runs ORDER BY created_at DESC LIMIT ?",
		limit,
	)
	return runs, err
}

// LoadRun returns a run's metadata plus its observer and field batches
// in the original order.
func (s *Store) LoadRun(id string) (*Run, []magmath.Vec3, []magmath.Vec3, error) {
	var run Run
	if err := s.conn.Get(&run,
		"SELECT id, created_at, scenario, field, points, elapsed_ms FROM runs WHERE id = ?", id,
	); err != nil {
		return nil, nil, nil, fmt.Errorf("load run %s: %w", id, err)
	}

	var rows []sampleRow
	if err := s.conn.Select(&rows,
		"SELECT run_id, idx, x, y, z, fx, fy, fz FROM samples WHERE run_id = ? ORDER BY idx", id,
	); err != nil {
		return nil, nil, nil, fmt.Errorf("load samples for %s: %w", id, err)
	}

	observers := make([]magmath.Vec3, len(rows))
	values := make([]magmath.Vec3, len(rows))
	for i, r := range rows {
		observers[i] = magmath.Vec3{X: r.X, Y: r.Y, Z: r.Z}
		values[i] = magmath.Vec3{X: r.FX, Y: r.FY, Z: r.FZ}
	}
	return &run, observers, values, nil
}

// DeleteRun removes a run and its samples.
func (s *Store) DeleteRun(id string) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM samples WHERE run_id = ?", id); err != nil {
		return err
	}
	res, err := tx.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no run with id %s", id)
	}
	return tx.Commit()
}
