package testkit

import (
	"fmt"

	"decaf/internal/source"
	"decaf/internal/token"
)

// CheckTokenInvariants runs the stream invariants every Source must keep on
// a completed unit:
// 1) the stream ends with exactly one EOF and nothing follows it
// 2) every token has a valid position in file, and offsets strictly increase
// 3) every token carries the payload variant its kind demands
func CheckTokenInvariants(tokens []token.Token, file source.FileID) error {
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	last := len(tokens) - 1
	if tokens[last].Kind != token.EOF {
		return fmt.Errorf("stream ends with %v, not EOF", tokens[last].Kind)
	}

	var prev source.Pos
	for i, tok := range tokens {
		if tok.Kind == token.EOF && i != last {
			return fmt.Errorf("EOF at index %d before end of stream", i)
		}
		if !tok.Pos.IsValid() {
			return fmt.Errorf("token %d (%v) has no position", i, tok.Kind)
		}
		if tok.Pos.File != file {
			return fmt.Errorf("token %d (%v) points to file %d, want %d", i, tok.Kind, tok.Pos.File, file)
		}
		if i > 0 && tok.Pos.Off <= prev.Off && tok.Kind != token.EOF {
			return fmt.Errorf("token %d (%v) at offset %d does not follow offset %d", i, tok.Kind, tok.Pos.Off, prev.Off)
		}
		if !tok.WellFormed() {
			return fmt.Errorf("token %d (%v) carries %v, want %v", i, tok.Kind, tok.Payload(), token.PayloadOf(tok.Kind))
		}
		prev = tok.Pos
	}
	return nil
}
