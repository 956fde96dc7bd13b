package diagfmt

import "decaf/internal/diag"

// NoteOutput is a secondary location attached to a dumped diagnostic. Notes
// always point into the same unit as their diagnostic.
type NoteOutput struct {
	Msg  string `json:"msg" msgpack:"msg"`
	Line uint32 `json:"line" msgpack:"line"`
	Col  uint32 `json:"col" msgpack:"col"`
	Off  uint32 `json:"off" msgpack:"off"`
}

// DiagnosticOutput is the serialized form of one diagnostic, laid out like
// TokenOutput so both can be matched up by offset.
type DiagnosticOutput struct {
	Severity string       `json:"severity" msgpack:"severity"`
	Code     string       `json:"code" msgpack:"code"`
	Message  string       `json:"message" msgpack:"message"`
	Text     string       `json:"text,omitempty" msgpack:"text,omitempty"`
	Line     uint32       `json:"line" msgpack:"line"`
	Col      uint32       `json:"col" msgpack:"col"`
	Off      uint32       `json:"off" msgpack:"off"`
	Notes    []NoteOutput `json:"notes,omitempty" msgpack:"notes,omitempty"`
}

func diagnosticOutput(d diag.Diagnostic) DiagnosticOutput {
	out := DiagnosticOutput{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  Message(d),
		Text:     d.Text,
		Line:     d.Pos.Line,
		Col:      d.Pos.Col,
		Off:      d.Pos.Off,
	}
	for _, n := range d.Notes {
		out.Notes = append(out.Notes, NoteOutput{Msg: n.Msg, Line: n.Pos.Line, Col: n.Pos.Col, Off: n.Pos.Off})
	}
	return out
}

// buildDiagnostics dumps bag in its current order; callers sort first.
func buildDiagnostics(bag *diag.Bag) (out []DiagnosticOutput, dropped int) {
	if bag == nil {
		return nil, 0
	}
	for _, d := range bag.Items() {
		out = append(out, diagnosticOutput(d))
	}
	return out, bag.Dropped()
}
