package diagfmt

import (
	"fmt"
	"sort"
	"strings"

	"decaf/internal/diag"
	"decaf/internal/source"
)

type shortDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// Short renders diagnostics one per line, sorted by location, in the form
// "SEV CODE path:line:col message". It is stable across runs and is used for
// golden comparisons and the CLI short output.
func Short(diags []diag.Diagnostic, fs *source.FileSet, mode PathMode) string {
	if len(diags) == 0 {
		return ""
	}
	rendered := make([]shortDiagnostic, 0, len(diags))
	for _, d := range diags {
		rendered = append(rendered, shortDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Path:     formatPath(fs, d.Pos.File, mode),
			Line:     d.Pos.Line,
			Column:   d.Pos.Col,
			Message:  Message(d),
		})
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		return di.Code < dj.Code
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
