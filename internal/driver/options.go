package driver

import (
	"log/slog"

	"decaf/internal/observ"
)

// Options configures a tokenize run.
type Options struct {
	MaxDiagnostics int
	MaxTokens      int // per unit, 0 means no limit
	Jobs           int // parallel units for TokenizeDir, 0 means GOMAXPROCS
	Logger         *slog.Logger
	Timer          *observ.Timer // optional
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
