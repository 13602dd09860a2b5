package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrRunNotFound is returned by ReadRun for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// ListRuns returns recorded runs newest first, without their checks.
// An empty suite lists every suite; limit <= 0 means no limit.
func (s *Store) ListRuns(ctx context.Context, suite string, limit int) ([]Run, error) {
	query := `
		SELECT seq, id, engine, suite, suite_digest, passed, total, created_at
		FROM runs
		WHERE (? = '' OR suite = ?)
		ORDER BY seq DESC
	`
	args := []any{suite, suite}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.Seq, &r.ID, &r.Engine, &r.Suite, &r.SuiteDigest, &r.Passed, &r.Total, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadRun returns one run with its checks in seq order.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var r Run
	err := s.db.QueryRowContext(ctx, `
		SELECT seq, id, engine, suite, suite_digest, passed, total, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&r.Seq, &r.ID, &r.Engine, &r.Suite, &r.SuiteDigest, &r.Passed, &r.Total, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("query run: %w", err)
	}

	checks, err := s.readChecks(ctx, id)
	if err != nil {
		return Run{}, err
	}
	r.Checks = checks
	return r, nil
}

func (s *Store) readChecks(ctx context.Context, runID string) ([]Check, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, koan, subject, pattern, expect, actual, passed, source, error
		FROM checks
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query checks: %w", err)
	}
	defer rows.Close()

	checks := []Check{}
	for rows.Next() {
		var c Check
		if err := rows.Scan(&c.Seq, &c.Koan, &c.Subject, &c.Pattern, &c.Expect, &c.Actual, &c.Passed, &c.Source, &c.Error); err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checks: %w", err)
	}
	return checks, nil
}

// DeleteRun removes a run and, through the foreign key, its checks.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}
