package main

import (
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"golang.org/x/term"
)

var level = new(slog.LevelVar)

// newLogger fans log records out to stderr and, when logFile is set, to an
// append-only file. The returned closer flushes the file handler.
func newLogger(logFile string) (*slog.Logger, func(), error) {
	var handlers []slog.Handler

	stderrOpts := &slog.HandlerOptions{
		Level: level,
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		// Timestamps are noise when a human is watching the build.
		stderrOpts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		}
	}
	handlers = append(handlers, slog.NewTextHandler(os.Stderr, stderrOpts))

	closer := func() {}
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(file, &slog.HandlerOptions{
			Level: level,
		}))
		closer = func() { file.Close() }
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
