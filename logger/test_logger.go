package logger

import (
	"context"
	"fmt"
	"testing"
)

// TestLogger routes log lines to the running test, so they only show up for
// failing tests or with -v.
type TestLogger struct {
	t testing.TB
}

var _ Logger = (*TestLogger)(nil)

func NewTestLogger(t testing.TB) *TestLogger {
	return &TestLogger{t: t}
}

func (l *TestLogger) logf(level, format string, args ...interface{}) {
	l.t.Helper()
	l.t.Logf("[%s] %s", level, fmt.Sprintf(format, args...))
}

func (l *TestLogger) Debug(format string, args ...interface{}) {
	l.t.Helper()
	l.logf("DEBU", format, args...)
}

func (l *TestLogger) Info(format string, args ...interface{}) {
	l.t.Helper()
	l.logf("INFO", format, args...)
}

func (l *TestLogger) Warning(format string, args ...interface{}) {
	l.t.Helper()
	l.logf("WARN", format, args...)
}

func (l *TestLogger) Error(format string, args ...interface{}) {
	l.t.Helper()
	l.logf("ERRO", format, args...)
}

func (l *TestLogger) CDebugf(ctx context.Context, format string, args ...interface{}) {
	l.t.Helper()
	l.logf("DEBU", format, args...)
}

func (l *TestLogger) CInfof(ctx context.Context, format string, args ...interface{}) {
	l.t.Helper()
	l.logf("INFO", format, args...)
}

func (l *TestLogger) CWarningf(ctx context.Context, format string, args ...interface{}) {
	l.t.Helper()
	l.logf("WARN", format, args...)
}

func (l *TestLogger) CErrorf(ctx context.Context, format string, args ...interface{}) {
	l.t.Helper()
	l.logf("ERRO", format, args...)
}

func (l *TestLogger) CloneWithAddedDepth(depth int) Logger { return l }
