// Package report turns the failure log written by the JSON logger
// into run summaries.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"digital.vasic.expect/pkg/logging"
)

// maxLine bounds a single failure record. Captured values are
// prettified, so records are normally far smaller.
const maxLine = 1 << 20

// ReadFailures parses a failure log: one JSON encoded
// logging.FailureLog per line. Blank lines are skipped.
func ReadFailures(r io.Reader) ([]logging.FailureLog, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	var out []logging.FailureLog
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var f logging.FailureLog
		if err := json.Unmarshal([]byte(text), &f); err != nil {
			return nil, fmt.Errorf(
				"failed to parse failure on line %d: %w", line, err,
			)
		}
		out = append(out, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read failure log: %w", err)
	}
	return out, nil
}

// ReadFailureFile reads the failure log at path. A missing file is
// an empty log.
func ReadFailureFile(path string) ([]logging.FailureLog, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open failure log: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadFailures(file)
}
