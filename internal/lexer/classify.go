package lexer

import (
	"decaf/internal/diag"
	"decaf/internal/source"
	"decaf/internal/token"
)

// Classifier turns recognised lexemes into tokens. Each operation stamps the
// token with a position, writes it to the bound Channel and returns it.
type Classifier struct {
	src     Positioner
	channel *Channel
	issuer  diag.Issuer
}

// NewClassifier returns an unbound classifier that takes positions from src.
func NewClassifier(src Positioner) *Classifier {
	return &Classifier{src: src}
}

// Bind attaches the channel the parser reads and the issuer diagnostics go
// to. Both are required.
func (c *Classifier) Bind(ch *Channel, is diag.Issuer) {
	if ch == nil || is == nil {
		panic("lexer: Bind requires a channel and an issuer")
	}
	c.channel = ch
	c.issuer = is
}

// Bound reports whether Bind has been called.
func (c *Classifier) Bound() bool {
	return c.channel != nil && c.issuer != nil
}

func (c *Classifier) record(tok token.Token) token.Token {
	if !c.Bound() {
		panic("lexer: classifier used before Bind")
	}
	c.channel.Set(tok)
	return tok
}

func (c *Classifier) pos() source.Pos {
	if c.src == nil {
		return source.NoPos
	}
	return c.src.Pos()
}

// Keyword records a reserved word.
func (c *Classifier) Keyword(k token.Kind) token.Token {
	return c.record(token.Token{Kind: k, Pos: c.pos()})
}

// Operator records punctuation or an operator.
func (c *Classifier) Operator(k token.Kind) token.Token {
	return c.record(token.Token{Kind: k, Pos: c.pos()})
}

// IntConst records an integer literal from its exact source text. When the
// text does not decode to an int32 the payload stays 0 and a LexIntTooLarge
// diagnostic carrying the text is issued; the token is IntLit either way.
func (c *Classifier) IntConst(text string) token.Token {
	pos := c.pos()
	v, err := DecodeInt(text)
	tok := c.record(token.Token{Kind: token.IntLit, Pos: pos, Value: token.IntValue(v)})
	if err != nil {
		c.issuer.Issue(diag.IntTooLarge(pos, text))
	}
	return tok
}

// BoolConst records a boolean literal.
func (c *Classifier) BoolConst(v bool) token.Token {
	return c.record(token.Token{Kind: token.BoolLit, Pos: c.pos(), Value: token.BoolValue(v)})
}

// StringConst records a string literal exactly as written, quotes and
// escapes included. pos is where the opening quote was, which differs from
// the scan position once the closing quote has been read.
func (c *Classifier) StringConst(text string, pos source.Pos) token.Token {
	return c.record(token.Token{Kind: token.StringLit, Pos: pos, Value: token.TextValue(text)})
}

// Identifier records an identifier spelling verbatim.
func (c *Classifier) Identifier(name string) token.Token {
	return c.record(token.Token{Kind: token.Identifier, Pos: c.pos(), Value: token.TextValue(name)})
}

func (c *Classifier) eof() token.Token {
	return c.record(token.Token{Kind: token.EOF, Pos: c.pos()})
}

// Issue forwards a scanner diagnostic (unknown character, unterminated
// string) to the bound issuer without touching the channel.
func (c *Classifier) Issue(d diag.Diagnostic) {
	if !c.Bound() {
		panic("lexer: classifier used before Bind")
	}
	c.issuer.Issue(d)
}
