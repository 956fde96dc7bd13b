package lexer

import (
	"fmt"
	"io"

	"decaf/internal/diag"
	"decaf/internal/source"
	"decaf/internal/token"
)

// Lexer is the hand-written Decaf scanner. It implements Source.
type Lexer struct {
	cursor *Cursor
	opts   Options
	cls    *Classifier
	start  source.Pos // start of the lexeme being classified or last produced
	count  int
	done   bool
	err    error
}

var _ Source = (*Lexer)(nil)

// New creates a lexer reading the unit file from r. file may be nil for
// anonymous input. Setup must be called before the first Next.
func New(file *source.File, r io.Reader, opts Options) *Lexer {
	var id source.FileID
	if file != nil {
		id = file.ID
	}
	lx := &Lexer{
		cursor: NewCursor(id, r),
		opts:   opts,
	}
	lx.cls = NewClassifier(lx)
	lx.start = lx.cursor.Pos()
	return lx
}

// Setup binds the channel the parser reads semantic values from and the
// issuer diagnostics go to.
func (lx *Lexer) Setup(ch *Channel, is diag.Issuer) {
	lx.cls.Bind(ch, is)
}

// Channel returns the bound channel, or nil before Setup.
func (lx *Lexer) Channel() *Channel {
	return lx.cls.channel
}

// Pos implements Source.
func (lx *Lexer) Pos() source.Pos {
	return lx.start
}

// Next implements Source. After EOF it keeps returning EOF; after a read
// failure it keeps returning the same error.
func (lx *Lexer) Next() (token.Token, error) {
	if !lx.cls.Bound() {
		panic("lexer: Next called before Setup")
	}
	if lx.err != nil {
		return token.Token{}, lx.err
	}
	lx.cls.channel.Reset()

	if lx.done {
		return lx.cls.eof(), nil
	}

	for {
		lx.skipTrivia()
		if err := lx.fatal(); err != nil {
			return token.Token{}, err
		}

		lx.start = lx.cursor.Pos()
		if lx.cursor.EOF() {
			lx.done = true
			return lx.cls.eof(), nil
		}
		if lx.opts.MaxTokens > 0 && lx.count >= lx.opts.MaxTokens {
			lx.cls.Issue(diag.NewError(diag.LexTokenLimit, lx.start, ""))
			lx.done = true
			return lx.cls.eof(), nil
		}

		lex := lx.scan()
		if err := lx.fatal(); err != nil {
			return token.Token{}, err
		}
		if lex.kind == lexTooLong {
			lx.done = true
			return lx.cls.eof(), nil
		}
		if lex.kind == lexSkip {
			continue
		}
		lx.count++
		return lx.classify(lex), nil
	}
}

func (lx *Lexer) fatal() error {
	if err := lx.cursor.Err(); err != nil {
		lx.err = fmt.Errorf("%w at %v: %w", ErrRead, lx.cursor.Pos(), err)
		lx.cls.channel.Reset()
		return lx.err
	}
	return nil
}

// classify performs exactly one Classifier call for the lexeme.
func (lx *Lexer) classify(lex lexeme) token.Token {
	switch lex.kind {
	case lexKeyword:
		return lx.cls.Keyword(lex.tok)
	case lexOperator:
		return lx.cls.Operator(lex.tok)
	case lexInt:
		return lx.cls.IntConst(lex.text)
	case lexBool:
		return lx.cls.BoolConst(lex.text == "true")
	case lexString:
		return lx.cls.StringConst(lex.text, lex.pos)
	case lexIdent:
		return lx.cls.Identifier(lex.text)
	}
	panic(fmt.Sprintf("lexer: unexpected lexeme kind %d", lex.kind))
}
