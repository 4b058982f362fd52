// Package metrics appends operation timings to a CSV file for offline
// analysis. The channel is best-effort: a write failure logs once and then
// disables the logger for the rest of the process lifetime.
package metrics

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"
)

var header = []string{"timestamp", "operation", "duration_ms", "item_count", "tokens"}

// CSVLogger writes one row per recorded operation. The zero value is not
// usable; a nil *CSVLogger is, and records nothing.
type CSVLogger struct {
	path string

	mu       sync.Mutex
	file     *os.File
	w        *csv.Writer
	disabled bool
}

// NewCSVLogger returns a logger appending to path, or nil when path is
// empty. The file is created on first write, not here.
func NewCSVLogger(path string) *CSVLogger {
	if path == "" {
		return nil
	}
	return &CSVLogger{path: path}
}

// Record appends one row. Safe for concurrent use and on a nil receiver.
func (l *CSVLogger) Record(operation string, duration time.Duration, itemCount, tokens int) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.disabled {
		return
	}

	if l.file == nil {
		if err := l.open(); err != nil {
			l.disable(err)
			return
		}
	}

	row := []string{
		time.Now().UTC().Format(time.RFC3339),
		operation,
		strconv.FormatInt(duration.Milliseconds(), 10),
		strconv.Itoa(itemCount),
		strconv.Itoa(tokens),
	}
	if err := l.w.Write(row); err != nil {
		l.disable(err)
		return
	}
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		l.disable(err)
	}
}

func (l *CSVLogger) disable(err error) {
	slog.Warn("Disabling metrics log",
		"path", l.path,
		"error", err)
	l.disabled = true
}

func (l *CSVLogger) open() error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open metrics file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to stat metrics file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err == nil {
			w.Flush()
		}
		if err := w.Error(); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to write metrics header: %w", err)
		}
	}

	l.file = f
	l.w = w
	return nil
}

// Close flushes and closes the file. Safe on a nil receiver.
func (l *CSVLogger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}

	l.w.Flush()
	err := l.file.Close()
	l.file = nil
	l.w = nil
	return err
}
