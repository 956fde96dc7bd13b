package diagfmt

import (
	"fmt"
	"strconv"

	"decaf/internal/diag"
)

// Message returns the human-readable text of d, built from the code and the
// offending lexeme.
func Message(d diag.Diagnostic) string {
	switch d.Code {
	case diag.LexIntTooLarge:
		return fmt.Sprintf("integer literal %s is too large", d.Text)
	case diag.LexUnknownChar:
		return fmt.Sprintf("unrecognized character %s", quoteChar(d.Text))
	case diag.LexUnterminatedString:
		return fmt.Sprintf("unterminated string constant %s", d.Text)
	case diag.LexNewlineInString:
		return fmt.Sprintf("illegal newline in string constant %s", d.Text)
	case diag.LexTokenLimit:
		return "too many tokens in this unit, stopping"
	case diag.LexTokenTooLong:
		return "token exceeds the maximum lexeme length, stopping"
	case diag.IOLoadFileError, diag.IOReadError:
		if d.Text != "" {
			return d.Text
		}
	}
	if d.Text != "" {
		return fmt.Sprintf("%s: %s", d.Code.Title(), d.Text)
	}
	return d.Code.Title()
}

func quoteChar(s string) string {
	if len(s) == 1 && s[0] < 0x20 {
		return strconv.QuoteToASCII(s)
	}
	return "'" + s + "'"
}
