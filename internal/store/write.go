package store

import (
	"context"
	"fmt"
)

// WriteRun inserts a run and its checks in one transaction.
// Writing a run ID that already exists is a no-op.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		return fmt.Errorf("write run: id is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, engine, suite, suite_digest, passed, total)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Engine,
		run.Suite,
		run.SuiteDigest,
		run.Passed,
		run.Total,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	if inserted == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO checks
		(run_id, seq, koan, subject, pattern, expect, actual, passed, source, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write run: prepare checks: %w", err)
	}
	defer stmt.Close()

	for _, c := range run.Checks {
		if _, err := stmt.ExecContext(ctx,
			run.ID,
			c.Seq,
			c.Koan,
			c.Subject,
			c.Pattern,
			c.Expect,
			c.Actual,
			c.Passed,
			c.Source,
			c.Error,
		); err != nil {
			return fmt.Errorf("write run: check %d: %w", c.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: commit: %w", err)
	}
	return nil
}
