package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.expect/pkg/logging"
)

func makeFailures() []logging.FailureLog {
	return []logging.FailureLog{
		{Timestamp: "t1", Kind: "AssertionError", Wrapper: "number", Message: "Expected <3> to be zero"},
		{Timestamp: "t2", Kind: "AssertionError", Wrapper: "string", Message: "a | b"},
		{Timestamp: "t3", Kind: "AssertionError", Wrapper: "number", Message: "Expected <1> to be negative"},
		{Timestamp: "t4", Kind: "UnsupportedOperationError", Message: "The Not() modifier is not allowed on AsType(..)"},
	}
}

func TestBuildSummary(t *testing.T) {
	summary := BuildSummary(makeFailures())

	_, err := uuid.Parse(summary.ID)
	assert.NoError(t, err)
	assert.NotZero(t, summary.GeneratedAt)
	assert.Equal(t, 4, summary.TotalFailures)
	assert.Equal(t, []Count{
		{Key: "AssertionError", Count: 3},
		{Key: "UnsupportedOperationError", Count: 1},
	}, summary.ByKind)
	assert.Equal(t, []Count{
		{Key: "number", Count: 2},
		{Key: "string", Count: 1},
		{Key: "unknown", Count: 1},
	}, summary.ByWrapper)
	assert.Len(t, summary.Failures, 4)
}

func TestBuildSummary_Empty(t *testing.T) {
	summary := BuildSummary(nil)

	assert.Equal(t, 0, summary.TotalFailures)
	assert.Empty(t, summary.ByKind)
	assert.Contains(t, Markdown(summary), "No failures recorded.")
}

func TestBuildSummary_UniqueIDs(t *testing.T) {
	assert.NotEqual(t, BuildSummary(nil).ID, BuildSummary(nil).ID)
}

func TestMarkdown(t *testing.T) {
	md := Markdown(BuildSummary(makeFailures()))

	assert.Contains(t, md, "# Assertion Failures")
	assert.Contains(t, md, "**Total failures:** 4")
	assert.Contains(t, md, "| AssertionError | 3 |")
	assert.Contains(t, md, "| number | 2 |")
	assert.Contains(t, md, `| t2 | string | a \| b |`)
}

func TestSaveSummary(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	summary := BuildSummary(makeFailures())

	jsonPath, err := SaveSummary(summary, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var decoded Summary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, summary.ID, decoded.ID)
	assert.Equal(t, summary.ByWrapper, decoded.ByWrapper)

	matches, err := filepath.Glob(filepath.Join(dir, "failure_summary_*.md"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	target, err := os.Readlink(filepath.Join(dir, "latest_summary.json"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(jsonPath), target)
}
