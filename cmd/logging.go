package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// fanoutHandler forwards records to every wrapped handler that accepts the
// record's level. It lets one run log at Debug to the log file while the
// console stays at Info unless --verbose is set.
type fanoutHandler struct {
	handlers []slog.Handler
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, w := range h.handlers {
		if w.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, rec slog.Record) error {
	var firstErr error
	for _, w := range h.handlers {
		if !w.Enabled(ctx, rec.Level) {
			continue
		}
		if err := w.Handle(ctx, rec.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, w := range h.handlers {
		out[i] = w.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: out}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, w := range h.handlers {
		out[i] = w.WithGroup(name)
	}
	return &fanoutHandler{handlers: out}
}

// newRunLogger opens the per-run log file and builds the logger: the file
// always records Debug, the console records Info (Debug with verbose). The
// returned closer owns the file handle.
func newRunLogger(logPath string, verbose bool) (*slog.Logger, io.Closer, error) {
	f, err := os.Create(logPath)
	if err != nil {
		return nil, nil, err
	}
	consoleLevel := slog.LevelInfo
	if verbose {
		consoleLevel = slog.LevelDebug
	}
	h := &fanoutHandler{handlers: []slog.Handler{
		slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: consoleLevel}),
	}}
	return slog.New(h), f, nil
}
