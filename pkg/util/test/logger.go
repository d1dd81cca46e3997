package test

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-kit/log"
)

var _ log.Logger = (*TestingLogger)(nil)

// TestingLogger forwards log lines to a testing.TB and keeps them so tests can
// assert on what was logged.
type TestingLogger struct {
	t    testing.TB
	mtx  sync.Mutex
	done atomic.Bool

	lines []string
}

func NewTestingLogger(t testing.TB) *TestingLogger {
	logger := &TestingLogger{t: t}
	t.Cleanup(func() {
		logger.done.Store(true)
	})
	return logger
}

func (l *TestingLogger) Log(keyvals ...interface{}) error {
	if l.done.Load() {
		return nil
	}

	pairs := make([]string, 0, len(keyvals)/2+1)
	for i := 0; i < len(keyvals); i += 2 {
		var v interface{} = "(MISSING)"
		if i+1 < len(keyvals) {
			v = keyvals[i+1]
		}
		pairs = append(pairs, fmt.Sprintf("%v=%v", keyvals[i], v))
	}
	line := strings.Join(pairs, " ")

	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.lines = append(l.lines, line)
	l.t.Log(line)

	return nil
}

// Lines returns every line logged so far.
func (l *TestingLogger) Lines() []string {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return append([]string(nil), l.lines...)
}

// Contains reports whether any logged line contains substr.
func (l *TestingLogger) Contains(substr string) bool {
	for _, line := range l.Lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
