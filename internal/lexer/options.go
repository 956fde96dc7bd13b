package lexer

// maxLexemeLength bounds a single lexeme; the cursor keeps a lexeme in
// memory until it is classified.
const maxLexemeLength = 1 << 16

type Options struct {
	// MaxTokens stops the unit after this many tokens (0 = unlimited).
	// The limit is reported once as LexTokenLimit and EOF follows.
	MaxTokens int
}
