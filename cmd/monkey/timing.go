package main

import (
	"io"
	"log/slog"
	"time"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// phaseTimer logs how long each pipeline phase took. A disabled timer logs
// nothing.
type phaseTimer struct {
	logger  *slog.Logger
	enabled bool
}

func newPhaseTimer(logger *slog.Logger, enabled bool) phaseTimer {
	return phaseTimer{logger: logger, enabled: enabled}
}

func (t phaseTimer) track(phase string, start time.Time, attrs ...any) {
	if !t.enabled {
		return
	}
	args := append([]any{"phase", phase, "elapsed", time.Since(start)}, attrs...)
	t.logger.Info("timing", args...)
}
