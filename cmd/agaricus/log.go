package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type logger struct {
	*slog.Logger
}

// newLogger returns a logger writing to STDERR. Debug records are only
// written when verbose is set, warnings and errors always are.
func newLogger(verbose bool) logger {
	return logger{slog.New(handler(os.Stderr, verbose)).With("run_id", uuid.NewString())}
}

func handler(w io.Writer, verbose bool) slog.Handler {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

func (l logger) Logf(format string, a ...interface{}) {
	if l.Logger == nil {
		return
	}
	l.Info(fmt.Sprintf(format, a...))
}
