package logs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// Options selects where log records go.
type Options struct {
	Level  string    // debug|info|warn|error, empty means warn
	File   string    // optional JSON log file, appended to
	Stderr io.Writer // text output, defaults to os.Stderr
}

type unitKey struct{}

// WithUnit tags every record logged with ctx by the compilation unit path.
func WithUnit(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, unitKey{}, path)
}

// Handler adds the unit path from the context to each record.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(unitKey{}).(string); ok {
		record.AddAttrs(slog.String("unit", v))
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}

// ParseLevel maps a flag value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// New builds the process logger: a text handler on stderr fanned out with a
// JSON handler on opts.File when one is given. The returned closer releases
// the log file and is never nil.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	lv, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	level := new(slog.LevelVar)
	level.Set(lv)

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		// #nosec G304 -- path comes from the command line or decaf.toml
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f
	}

	return slog.New(&Handler{Handler: slogmulti.Fanout(handlers...)}), closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
