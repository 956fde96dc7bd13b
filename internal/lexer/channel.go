package lexer

import "decaf/internal/token"

// Channel holds the semantic value of the most recently produced token.
// There is exactly one slot: Set replaces it and nothing is queued. It is
// written by one lexer and read by one parser, never concurrently.
type Channel struct {
	cur token.Token
	ok  bool
}

// Set overwrites the slot.
func (c *Channel) Set(tok token.Token) {
	c.cur = tok
	c.ok = true
}

// Reset empties the slot.
func (c *Channel) Reset() {
	c.cur = token.Token{}
	c.ok = false
}

// Value returns the current token. Repeated calls without an intervening
// Set return the same value.
func (c *Channel) Value() token.Token {
	return c.cur
}

// Ready reports whether the slot holds a token.
func (c *Channel) Ready() bool {
	return c.ok
}
