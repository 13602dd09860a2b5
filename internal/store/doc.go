// Package store provides the optional SQLite run ledger.
//
// Nothing is persisted unless the CLI is given --record. When it is, every
// suite run becomes one row in runs and one row per check in checks, so a
// learner can see how a koan went from failing to passing.
//
// # Ordering
//
// Runs and checks are ordered by their seq column, never by created_at.
// created_at is informational only.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - 5-second busy timeout
//   - foreign keys enforced (deleting a run deletes its checks)
package store
