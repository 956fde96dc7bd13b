package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"decaf/internal/diag"
	"decaf/internal/source"
	"decaf/internal/token"
)

const tokenTextWidth = 32

// TokenOutput is the serialized form of one token.
type TokenOutput struct {
	Kind  string `json:"kind" msgpack:"kind"`
	Line  uint32 `json:"line" msgpack:"line"`
	Col   uint32 `json:"col" msgpack:"col"`
	Off   uint32 `json:"off" msgpack:"off"`
	Value any    `json:"value,omitempty" msgpack:"value,omitempty"`
}

// UnitTokens groups the tokens of one compilation unit with the diagnostics
// reported while lexing it. Dropped counts diagnostics over the limit.
type UnitTokens struct {
	Path        string             `json:"path" msgpack:"path"`
	Tokens      []TokenOutput      `json:"tokens" msgpack:"tokens"`
	Diagnostics []DiagnosticOutput `json:"diagnostics,omitempty" msgpack:"diagnostics,omitempty"`
	Dropped     int                `json:"dropped,omitempty" msgpack:"dropped,omitempty"`
}

func tokenOutput(tok token.Token) TokenOutput {
	out := TokenOutput{
		Kind: tok.Kind.String(),
		Line: tok.Pos.Line,
		Col:  tok.Pos.Col,
		Off:  tok.Pos.Off,
	}
	switch v := tok.Value.(type) {
	case token.IntValue:
		out.Value = int32(v)
	case token.BoolValue:
		out.Value = bool(v)
	case token.TextValue:
		out.Value = string(v)
	}
	return out
}

// BuildUnitTokens converts the tokens and diagnostics of one unit to their
// serialized form. bag may be nil.
func BuildUnitTokens(path string, tokens []token.Token, bag *diag.Bag) UnitTokens {
	out := UnitTokens{Path: path, Tokens: make([]TokenOutput, 0, len(tokens))}
	for _, tok := range tokens {
		out.Tokens = append(out.Tokens, tokenOutput(tok))
	}
	out.Diagnostics, out.Dropped = buildDiagnostics(bag)
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		text := ""
		if tok.Value != nil {
			text = tok.Value.String()
			if _, isText := tok.Value.(token.TextValue); isText && tok.Kind == token.Identifier {
				text = fmt.Sprintf("%q", text)
			}
			text = runewidth.Truncate(text, tokenTextWidth, "...")
		}
		_, err := fmt.Fprintf(w, "%4d: %-14s %s at %s\n",
			i+1, tok.Kind.String(),
			runewidth.FillRight(text, tokenTextWidth),
			location(fs, tok.Pos, PathModeAuto))
		if err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, units []UnitTokens) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(units)
}

// FormatTokensMsgpack writes units as one msgpack array.
func FormatTokensMsgpack(w io.Writer, units []UnitTokens) error {
	return msgpack.NewEncoder(w).Encode(units)
}

// ReadTokensMsgpack decodes a dump written by FormatTokensMsgpack.
func ReadTokensMsgpack(r io.Reader) ([]UnitTokens, error) {
	var units []UnitTokens
	if err := msgpack.NewDecoder(r).Decode(&units); err != nil {
		return nil, fmt.Errorf("decode token dump: %w", err)
	}
	return units, nil
}
