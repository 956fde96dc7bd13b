package lexer

import (
	"errors"

	"decaf/internal/source"
	"decaf/internal/token"
)

// ErrRead is wrapped by every error Next returns for an unreadable input.
var ErrRead = errors.New("cannot read source")

// Source is the pull interface a parser drives.
type Source interface {
	// Pos returns the start of the token most recently produced. It does
	// not change until the next call to Next.
	Pos() source.Pos
	// Next scans exactly one token. A non-nil error is fatal for the unit
	// and no token accompanies it.
	Next() (token.Token, error)
}

// Positioner reports the start of the lexeme being classified.
type Positioner interface {
	Pos() source.Pos
}

// Collect pulls tokens from src until EOF and returns them including the
// EOF token. On a read failure it returns what was produced so far.
func Collect(src Source) ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := src.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}
