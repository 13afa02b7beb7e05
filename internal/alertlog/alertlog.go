// Package alertlog appends monitor events as newline-delimited JSON so a
// session's alerts can be tailed or post-processed.
package alertlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Record is one logged event. Event is "start", "shutdown", "alert" or
// "fetch_error".
type Record struct {
	TsMs  int64  `json:"ts_ms"`
	Event string `json:"event"`

	Item string `json:"item,omitempty"`
	Side string `json:"side,omitempty"`

	Platinum int      `json:"platinum,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Message  string   `json:"message,omitempty"`

	Err string `json:"err,omitempty"`
}

// Log appends records to a file. Safe for concurrent use; a nil *Log
// discards everything.
type Log struct {
	mu   sync.Mutex
	path string
	file *os.File
	w    *bufio.Writer
}

// Open returns a log appending to path, or nil when path is blank.
func Open(path string) *Log {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	return &Log{path: path}
}

// Append writes one record, stamping TsMs if unset, and flushes so tailers
// see it immediately.
func (l *Log) Append(rec Record) error {
	if l == nil {
		return nil
	}
	if rec.Event == "" {
		return fmt.Errorf("alertlog: event required")
	}
	if rec.TsMs == 0 {
		rec.TsMs = time.Now().UnixMilli()
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ensureOpenLocked(); err != nil {
		return err
	}

	if _, err := l.w.Write(b); err != nil {
		return err
	}
	if err := l.w.WriteByte('\n'); err != nil {
		return err
	}
	return l.w.Flush()
}

func (l *Log) ensureOpenLocked() error {
	if l.file != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	l.file = f
	l.w = bufio.NewWriterSize(f, 64*1024)
	return nil
}

// Close flushes and closes the underlying file.
func (l *Log) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error
	if l.w != nil {
		if err := l.w.Flush(); err != nil {
			firstErr = err
		}
	}
	if l.file != nil {
		if err := l.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.w = nil
	l.file = nil
	return firstErr
}
