// Package logx is wavecore's small slog wrapper, grounded on the teacher's
// utils/slogx package. Unlike the teacher - a TUI application that owns the
// process and is happy to open a log file under its own config dir - a
// library must not write files a caller didn't ask for, so logx defaults to
// slog's default handler on os.Stderr. Being an internal package, it can be
// imported (and its logger swapped) only by packages inside this module.
package logx

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.Default())
}

// SetLogger replaces the logger wavecore's packages write to. A nil logger
// is ignored.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	logger.Store(l)
}

// Logger returns the current logger, for call sites that want to emit at a
// particular level (e.g. logx.Logger().Debug(...)).
func Logger() *slog.Logger { return logger.Load() }

// Error renders any error (or panic payload) as a slog attribute, matching
// the teacher's slogx.Error helper.
func Error(err any) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", fmt.Sprintf("%+v", err))
}
