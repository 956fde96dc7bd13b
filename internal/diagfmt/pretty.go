package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"decaf/internal/diag"
	"decaf/internal/source"
)

type palette struct {
	err, warn, info, code, path, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		info: color.New(color.FgCyan, color.Bold),
		code: color.New(color.FgMagenta),
		path: color.New(color.Bold),
		note: color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.path.Sprint(location(fs, d.Pos, opts.PathMode)),
			p.severity(d.Severity).Sprint(d.Severity),
			p.code.Sprint(d.Code.ID()),
			Message(d),
		); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			if _, err := fmt.Fprintf(w, "  %s %s: %s\n",
				p.note.Sprint("note:"), location(fs, n.Pos, opts.PathMode), n.Msg); err != nil {
				return err
			}
		}
	}
	if dropped := bag.Dropped(); dropped > 0 {
		if _, err := fmt.Fprintf(w, "%s\n", p.warn.Sprintf("... %d more diagnostics not shown", dropped)); err != nil {
			return err
		}
	}
	return nil
}

func location(fs *source.FileSet, pos source.Pos, mode PathMode) string {
	path := formatPath(fs, pos.File, mode)
	if !pos.IsValid() {
		return path
	}
	return fmt.Sprintf("%s:%d:%d", path, pos.Line, pos.Col)
}
