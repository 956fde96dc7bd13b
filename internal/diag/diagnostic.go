package diag

import (
	"decaf/internal/source"
)

type Note struct {
	Pos source.Pos
	Msg string
}

// Diagnostic is one finding. Text holds the offending lexeme when the code
// has one (the literal for LexIntTooLarge, the character for
// LexUnknownChar). Renderers build the message from a catalog keyed by Code.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Pos      source.Pos
	Text     string
	Notes    []Note
}

func New(sev Severity, code Code, pos source.Pos, text string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Pos:      pos,
		Text:     text,
	}
}

func NewError(code Code, pos source.Pos, text string) Diagnostic {
	return New(SevError, code, pos, text)
}

// IntTooLarge reports an integer literal that does not fit the target type.
func IntTooLarge(pos source.Pos, literal string) Diagnostic {
	return NewError(LexIntTooLarge, pos, literal)
}

// WithNote attaches a secondary location, e.g. where input ended.
func (d Diagnostic) WithNote(pos source.Pos, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Pos: pos, Msg: msg})
	return d
}
