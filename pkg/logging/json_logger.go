package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// jsonMarshal is a variable for dependency injection in tests.
var jsonMarshal = json.Marshal

// LogEntry represents a single JSON log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// LoggerConfig configures the JSONLogger.
type LoggerConfig struct {
	OutputPath string
	FailureLog string
	Level      LogLevel
	Verbose    bool
	Fields     map[string]any
}

// JSONLogger implements Logger with JSON Lines output. Failure
// records go to a dedicated file when one is configured.
type JSONLogger struct {
	mu         *sync.Mutex
	output     io.Writer
	failureLog io.Writer
	level      LogLevel
	fields     map[string]any
	verbose    bool
	closed     *bool
}

// NewJSONLogger creates a new JSON logger. If OutputPath is
// empty, logs are written to stdout.
func NewJSONLogger(config LoggerConfig) (*JSONLogger, error) {
	logger := &JSONLogger{
		mu:      &sync.Mutex{},
		level:   config.Level,
		verbose: config.Verbose,
		fields:  config.Fields,
		closed:  new(bool),
		output:  os.Stdout,
	}

	if logger.fields == nil {
		logger.fields = make(map[string]any)
	}

	if config.OutputPath != "" {
		file, err := openAppend(config.OutputPath)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to open log file: %w", err,
			)
		}
		logger.output = file
	}

	if config.FailureLog != "" {
		file, err := openAppend(config.FailureLog)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to open failure log: %w", err,
			)
		}
		logger.failureLog = file
	}

	return logger, nil
}

func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(
		path,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0644,
	)
}

func (l *JSONLogger) log(
	level LogLevel, msg string, fields ...Field,
) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if *l.closed {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
		Fields:    make(map[string]any),
	}

	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		return
	}

	fmt.Fprintln(l.output, string(data))
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	if l.verbose {
		l.log(LevelDebug, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields. The result shares writers and the lock with l.
func (l *JSONLogger) WithFields(fields ...Field) Logger {
	newFields := make(map[string]any)
	for k, v := range l.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}

	return &JSONLogger{
		mu:         l.mu,
		output:     l.output,
		failureLog: l.failureLog,
		level:      l.level,
		verbose:    l.verbose,
		fields:     newFields,
		closed:     l.closed,
	}
}

// LogFailure writes a failure record to the dedicated failure
// log. Without one, the failure goes to the main output at
// error level.
func (l *JSONLogger) LogFailure(failure FailureLog) {
	if failure.Timestamp == "" {
		failure.Timestamp = time.Now().Format(time.RFC3339Nano)
	}

	if l.failureLog == nil {
		l.Error(failure.Message,
			Field{Key: "kind", Value: failure.Kind},
			Field{Key: "wrapper", Value: failure.Wrapper},
			Field{Key: "actual", Value: failure.Actual},
			Field{Key: "expected", Value: failure.Expected},
		)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if *l.closed {
		return
	}

	data, err := jsonMarshal(failure)
	if err != nil {
		return
	}

	fmt.Fprintln(l.failureLog, string(data))
}

// Close flushes and closes all underlying writers.
func (l *JSONLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if *l.closed {
		return nil
	}
	*l.closed = true

	var errs []error

	if closer, ok := l.output.(io.Closer); ok &&
		l.output != os.Stdout {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if closer, ok := l.failureLog.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// SetupLogging creates a JSON logger writing expect.log and
// failures.log in the given logs directory.
func SetupLogging(
	logsDir string,
	verbose bool,
) (*JSONLogger, error) {
	config := LoggerConfig{
		OutputPath: filepath.Join(logsDir, "expect.log"),
		FailureLog: filepath.Join(logsDir, "failures.log"),
		Level:      LevelInfo,
		Verbose:    verbose,
	}

	if verbose {
		config.Level = LevelDebug
	}

	return NewJSONLogger(config)
}
