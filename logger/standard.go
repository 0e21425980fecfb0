package logger

import (
	"context"
	"io"
	"os"

	logging "github.com/keybase/go-logging"
)

const defaultFormat = "%{color}%{time:15:04:05.000} ▶ [%{level:.4s} %{module} %{shortfile}]%{color:reset} %{message}"

// Standard is a Logger backed by go-logging.
type Standard struct {
	internal *logging.Logger
	module   string
}

var _ Logger = (*Standard)(nil)

// NewStandard returns a logger for module writing to stderr.
func NewStandard(module string, debug bool) *Standard {
	return NewStandardWithWriter(os.Stderr, module, debug)
}

// NewStandardWithWriter is like NewStandard but writes to w.
func NewStandardWithWriter(w io.Writer, module string, debug bool) *Standard {
	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(w, "", 0),
		logging.MustStringFormatter(defaultFormat))
	logging.SetBackend(backend)
	level := logging.INFO
	if debug {
		level = logging.DEBUG
	}
	logging.SetLevel(level, module)

	log := logging.MustGetLogger(module)
	log.ExtraCalldepth = 1
	return &Standard{internal: log, module: module}
}

func (l *Standard) Debug(format string, args ...interface{}) {
	l.internal.Debugf(format, args...)
}

func (l *Standard) Info(format string, args ...interface{}) {
	l.internal.Infof(format, args...)
}

func (l *Standard) Warning(format string, args ...interface{}) {
	l.internal.Warningf(format, args...)
}

func (l *Standard) Error(format string, args ...interface{}) {
	l.internal.Errorf(format, args...)
}

func (l *Standard) CDebugf(ctx context.Context, format string, args ...interface{}) {
	l.internal.Debugf(format, args...)
}

func (l *Standard) CInfof(ctx context.Context, format string, args ...interface{}) {
	l.internal.Infof(format, args...)
}

func (l *Standard) CWarningf(ctx context.Context, format string, args ...interface{}) {
	l.internal.Warningf(format, args...)
}

func (l *Standard) CErrorf(ctx context.Context, format string, args ...interface{}) {
	l.internal.Errorf(format, args...)
}

func (l *Standard) CloneWithAddedDepth(depth int) Logger {
	clone := *l.internal
	clone.ExtraCalldepth = l.internal.ExtraCalldepth + depth
	return &Standard{internal: &clone, module: l.module}
}
