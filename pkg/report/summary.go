package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"digital.vasic.expect/pkg/logging"
)

// Summary aggregates the failures of one run.
type Summary struct {
	ID            string               `json:"id"`
	GeneratedAt   time.Time            `json:"generated_at"`
	TotalFailures int                  `json:"total_failures"`
	ByKind        []Count              `json:"by_kind"`
	ByWrapper     []Count              `json:"by_wrapper"`
	Failures      []logging.FailureLog `json:"failures"`
}

// Count is the number of failures sharing a key.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// BuildSummary aggregates failures. Counts are ordered by descending
// count, then key.
func BuildSummary(failures []logging.FailureLog) *Summary {
	kinds := make(map[string]int)
	wrappers := make(map[string]int)
	for _, f := range failures {
		kinds[f.Kind]++
		wrapper := f.Wrapper
		if wrapper == "" {
			wrapper = "unknown"
		}
		wrappers[wrapper]++
	}

	return &Summary{
		ID:            uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		TotalFailures: len(failures),
		ByKind:        sortCounts(kinds),
		ByWrapper:     sortCounts(wrappers),
		Failures:      append([]logging.FailureLog(nil), failures...),
	}
}

func sortCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, n := range m {
		out = append(out, Count{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// SaveSummary writes the summary as JSON and Markdown into outputDir
// and points latest_summary.json and latest_summary.md at them.
// It returns the path of the JSON file.
func SaveSummary(summary *Summary, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	ts := summary.GeneratedAt.Format("20060102_150405")

	jsonPath := filepath.Join(
		outputDir, fmt.Sprintf("failure_summary_%s.json", ts),
	)
	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON summary: %w", err)
	}

	mdPath := filepath.Join(
		outputDir, fmt.Sprintf("failure_summary_%s.md", ts),
	)
	if err := os.WriteFile(
		mdPath, []byte(Markdown(summary)), 0644,
	); err != nil {
		return "", fmt.Errorf(
			"failed to write Markdown summary: %w", err,
		)
	}

	latestJSON := filepath.Join(outputDir, "latest_summary.json")
	latestMD := filepath.Join(outputDir, "latest_summary.md")

	_ = os.Remove(latestJSON)
	_ = os.Remove(latestMD)
	_ = os.Symlink(filepath.Base(jsonPath), latestJSON)
	_ = os.Symlink(filepath.Base(mdPath), latestMD)

	return jsonPath, nil
}

// Markdown renders the summary as a Markdown document.
func Markdown(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Assertion Failures\n\n")
	fmt.Fprintf(&sb, "**Summary ID:** %s\n\n", summary.ID)
	fmt.Fprintf(
		&sb, "**Generated:** %s\n\n",
		summary.GeneratedAt.Format(time.RFC3339),
	)
	fmt.Fprintf(&sb, "**Total failures:** %d\n\n", summary.TotalFailures)

	if summary.TotalFailures == 0 {
		sb.WriteString("No failures recorded.\n")
		return sb.String()
	}

	writeCounts(&sb, "By kind", "Kind", summary.ByKind)
	writeCounts(&sb, "By wrapper", "Wrapper", summary.ByWrapper)

	sb.WriteString("## Failures\n\n")
	sb.WriteString("| Time | Wrapper | Message |\n")
	sb.WriteString("|------|---------|---------|\n")
	for _, f := range summary.Failures {
		fmt.Fprintf(
			&sb, "| %s | %s | %s |\n",
			f.Timestamp, f.Wrapper, escapeCell(f.Message),
		)
	}

	return sb.String()
}

func writeCounts(sb *strings.Builder, title, column string, counts []Count) {
	fmt.Fprintf(sb, "## %s\n\n", title)
	fmt.Fprintf(sb, "| %s | Failures |\n", column)
	sb.WriteString("|------|----------|\n")
	for _, c := range counts {
		fmt.Fprintf(sb, "| %s | %d |\n", c.Key, c.Count)
	}
	sb.WriteString("\n")
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
