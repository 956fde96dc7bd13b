package diag

import (
	"context"
	"log/slog"

	"decaf/internal/source"
)

// Issuer accepts diagnostics from a phase. Issue is fire-and-forget: it must
// not panic, must not block indefinitely and has no way to influence the
// caller's result.
// Реализации: *Bag, DedupIssuer, MultiIssuer, LogIssuer, NopIssuer, IssuerFunc.
type Issuer interface {
	Issue(d Diagnostic)
}

// IssuerFunc adapts a function to Issuer.
type IssuerFunc func(d Diagnostic)

func (f IssuerFunc) Issue(d Diagnostic) {
	if f != nil {
		f(d)
	}
}

// NopIssuer drops everything.
type NopIssuer struct{}

func (NopIssuer) Issue(Diagnostic) {}

// MultiIssuer fans one diagnostic out to every non-nil issuer in order.
type MultiIssuer []Issuer

func (m MultiIssuer) Issue(d Diagnostic) {
	for _, is := range m {
		if is != nil {
			is.Issue(d)
		}
	}
}

type dedupKey struct {
	code Code
	sev  Severity
	file source.FileID
	off  uint32
	text string
}

// DedupIssuer suppresses repeats of the same code, severity, position and
// text before forwarding to next.
type DedupIssuer struct {
	next Issuer
	seen map[dedupKey]struct{}
}

// NewDedupIssuer returns an Issuer that filters out duplicates while
// forwarding unique diagnostics to next.
func NewDedupIssuer(next Issuer) *DedupIssuer {
	return &DedupIssuer{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupIssuer) Issue(d Diagnostic) {
	if r == nil {
		return
	}
	key := dedupKey{
		code: d.Code,
		sev:  d.Severity,
		file: d.Pos.File,
		off:  d.Pos.Off,
		text: d.Text,
	}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Issue(d)
	}
}

// LogIssuer mirrors diagnostics into a structured log. A nil Logger uses
// slog.Default. Ctx is handed to the logger so handlers can pick up values
// such as the unit tag; nil means context.Background.
type LogIssuer struct {
	Ctx    context.Context
	Logger *slog.Logger
	Path   string
}

func (l LogIssuer) Issue(d Diagnostic) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	level := slog.LevelInfo
	switch d.Severity {
	case SevError:
		level = slog.LevelError
	case SevWarning:
		level = slog.LevelWarn
	}
	ctx := l.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	logger.LogAttrs(ctx, level, "diagnostic",
		slog.String("code", d.Code.ID()),
		slog.String("path", l.Path),
		slog.String("pos", d.Pos.String()),
		slog.String("text", d.Text),
	)
}
