package treediag

import (
	"log/slog"
	"os"
)

// levelToSlog maps a Config.Level string to the matching slog.Level. "off"
// has no slog equivalent; callers check Diagnostics.enabled before logging
// instead of relying on handler filtering for that case.
var levelToSlog = map[string]slog.Level{
	"error": slog.LevelError,
	"info":  slog.LevelInfo,
	"debug": slog.LevelDebug,
}

// newLogger builds an slog.Logger writing text-formatted records to
// stderr at the level cfg.Level requests.
func newLogger(cfg Config) *slog.Logger {
	lvl, ok := levelToSlog[cfg.Level]
	if !ok {
		lvl = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})

	return slog.New(handler).With(slog.String("component", "tree"))
}
