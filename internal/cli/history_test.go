package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/koans/internal/store"
	"github.com/roach88/koans/internal/testutil"
)

// recordLedger runs the passing and failing suites once each and returns
// the ledger path. Run IDs are run-1 (passing) and run-2 (failing).
func recordLedger(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	db := filepath.Join(dir, "ledger.db")

	ids := testutil.NewSequentialIDs("run")
	for _, suite := range []struct{ name, content string }{
		{"passing.yaml", passingSuite},
		{"failing.yaml", failingSuite},
	} {
		path := writeSuiteFile(t, dir, suite.name, suite.content)
		opts := &RunOptions{
			RootOptions: &RootOptions{Format: "text", Engine: "go"},
			IDs:         ids,
		}
		_, _, _ = execute(newRunCommand(opts), path, "--record", db)
	}
	return db
}

func TestHistoryListsRunsNewestFirst(t *testing.T) {
	db := recordLedger(t)

	stdout, _, err := execute(NewHistoryCommand(&RootOptions{Format: "json"}), "--db", db)
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   []store.Run `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "run-2", resp.Data[0].ID)
	assert.Equal(t, "failing", resp.Data[0].Suite)
	assert.Equal(t, "run-1", resp.Data[1].ID)
	assert.Empty(t, resp.Data[0].Checks)
}

func TestHistoryText(t *testing.T) {
	db := recordLedger(t)

	stdout, _, err := execute(NewHistoryCommand(&RootOptions{Format: "text"}), "--db", db, "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "RUN")
	assert.Contains(t, stdout, "run-2")
	assert.Contains(t, stdout, "1/2")
	assert.NotContains(t, stdout, "run-1")
}

func TestHistorySuiteFilter(t *testing.T) {
	db := recordLedger(t)

	stdout, _, err := execute(NewHistoryCommand(&RootOptions{Format: "text"}), "--db", db, "--suite", "passing")
	require.NoError(t, err)
	assert.Contains(t, stdout, "run-1")
	assert.NotContains(t, stdout, "run-2")
}

func TestHistoryShowRun(t *testing.T) {
	db := recordLedger(t)

	stdout, _, err := execute(NewHistoryCommand(&RootOptions{Format: "text", Verbose: true}), "--db", db, "--run", "run-2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "failing (go) 1 of 2 passing\n")
	assert.Contains(t, stdout, `  ✗ whitespace: "xy" =~ /^x\s*y$/ expect no_match, got match`)
	assert.Contains(t, stdout, `      expected "xy" not to match /^x\s*y$/, got match`)
	assert.Contains(t, stdout, `  ✓ optional: "son" =~ /^so?o?n$/ expect match, got match`)
}

func TestHistoryShowRunNotFound(t *testing.T) {
	db := recordLedger(t)

	stdout, _, err := execute(NewHistoryCommand(&RootOptions{Format: "json"}), "--db", db, "--run", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, store.ErrRunNotFound)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
}

func TestHistoryEmptyLedger(t *testing.T) {
	db := filepath.Join(t.TempDir(), "empty.db")
	st, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	stdout, _, err := execute(NewHistoryCommand(&RootOptions{Format: "text"}), "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "No runs recorded\n", stdout)
}

func TestHistoryMissingLedger(t *testing.T) {
	db := filepath.Join(t.TempDir(), "missing.db")

	_, _, err := execute(NewHistoryCommand(&RootOptions{Format: "text"}), "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "run ledger not found")
	assert.NoFileExists(t, db)
}

func TestHistoryRequiresDB(t *testing.T) {
	_, _, err := execute(NewHistoryCommand(&RootOptions{Format: "text"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "db" not set`)
}

func TestHistoryNegativeLimit(t *testing.T) {
	db := recordLedger(t)

	_, _, err := execute(NewHistoryCommand(&RootOptions{Format: "text"}), "--db", db, "--limit=-1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid limit -1")
}

func TestHistoryDeleteRun(t *testing.T) {
	db := recordLedger(t)

	stdout, _, err := execute(NewHistoryCommand(&RootOptions{Format: "text"}), "--db", db, "--run", "run-1", "--delete")
	require.NoError(t, err)
	assert.Equal(t, "Deleted run run-1\n", stdout)

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()

	runs, err := st.ListRuns(t.Context(), "", 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-2", runs[0].ID)

	_, err = st.ReadRun(t.Context(), "run-1")
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestHistoryDeleteUnknownRun(t *testing.T) {
	db := recordLedger(t)

	stdout, _, err := execute(NewHistoryCommand(&RootOptions{Format: "json"}), "--db", db, "--run", "nope", "--delete")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, store.ErrRunNotFound)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
}

func TestHistoryDeleteRequiresRun(t *testing.T) {
	db := recordLedger(t)

	_, _, err := execute(NewHistoryCommand(&RootOptions{Format: "text"}), "--db", db, "--delete")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "--delete requires --run")
}
