package lexer

import (
	"strings"

	"decaf/internal/diag"
	"decaf/internal/source"
	"decaf/internal/token"
)

type lexKind uint8

const (
	lexSkip lexKind = iota // nothing to classify, scan again
	lexKeyword
	lexOperator
	lexInt
	lexBool
	lexString
	lexIdent
	lexTooLong // unit abandoned
)

// lexeme is what the scanner recognised, before classification.
type lexeme struct {
	kind lexKind
	tok  token.Kind
	text string
	pos  source.Pos
}

func (lx *Lexer) scan() lexeme {
	ch := lx.cursor.Peek()
	switch {
	case isLetter(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperator()
	}
}

// skipTrivia пропускает пробелы, переводы строк и // комментарии.
func (lx *Lexer) skipTrivia() {
	for {
		lx.cursor.Pin()
		b := lx.cursor.Peek()
		switch {
		case lx.cursor.EOF():
			return
		case b == ' ' || b == '\t' || b == '\f' || b == '\r' || b == '\n':
			lx.cursor.Bump()
		case b == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' || b1 != '/' {
				return
			}
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
				lx.cursor.Pin() // комментарий не держим в буфере
			}
		default:
			return
		}
	}
}

func (lx *Lexer) tooLong(start source.Pos) lexeme {
	lx.cls.Issue(diag.NewError(diag.LexTokenTooLong, start, ""))
	return lexeme{kind: lexTooLong}
}

// scanIdentOrKeyword: LETTER (LETTER | DIGIT | '_')*. Keywords are
// case-sensitive; true/false are boolean literals.
func (lx *Lexer) scanIdentOrKeyword() lexeme {
	start := lx.cursor.Pos()
	m := lx.cursor.Pin()
	lx.cursor.Bump()
	for isIdentContinue(lx.cursor.Peek()) && !lx.cursor.EOF() {
		if lx.cursor.Len(m) >= maxLexemeLength {
			return lx.tooLong(start)
		}
		lx.cursor.Bump()
	}
	text := lx.cursor.Text(m)
	switch text {
	case "true", "false":
		return lexeme{kind: lexBool, text: text}
	}
	if k, ok := token.LookupKeyword(text); ok {
		return lexeme{kind: lexKeyword, tok: k}
	}
	return lexeme{kind: lexIdent, text: text}
}

// scanNumber: DIGIT+ | 0[xX]HEX+. The text is handed to IntConst
// undecoded.
func (lx *Lexer) scanNumber() lexeme {
	start := lx.cursor.Pos()
	m := lx.cursor.Pin()
	digit := isDec
	if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') && isHex(b2) {
		lx.cursor.Bump()
		lx.cursor.Bump()
		digit = isHex
	}
	for digit(lx.cursor.Peek()) && !lx.cursor.EOF() {
		if lx.cursor.Len(m) >= maxLexemeLength {
			return lx.tooLong(start)
		}
		lx.cursor.Bump()
	}
	return lexeme{kind: lexInt, text: lx.cursor.Text(m)}
}

// scanString reads "..." keeping escapes as written. A newline inside the
// literal is reported and dropped; the literal continues on the next line.
// End of input before the closing quote is reported and no token is made.
func (lx *Lexer) scanString() lexeme {
	start := lx.cursor.Pos()
	lx.cursor.Pin()
	var sb strings.Builder
	sb.WriteByte(lx.cursor.Bump()) // opening '"'
	for {
		if sb.Len() >= maxLexemeLength {
			return lx.tooLong(start)
		}
		if lx.cursor.EOF() {
			if lx.cursor.Err() == nil {
				lx.cls.Issue(diag.NewError(diag.LexUnterminatedString, start, sb.String()).
					WithNote(lx.cursor.Pos(), "input ends here"))
			}
			return lexeme{kind: lexSkip}
		}
		switch b := lx.cursor.Peek(); b {
		case '"':
			sb.WriteByte(lx.cursor.Bump())
			return lexeme{kind: lexString, text: sb.String(), pos: start}
		case '\n':
			lx.cls.Issue(diag.NewError(diag.LexNewlineInString, start, sb.String()))
			lx.cursor.Bump()
		case '\\':
			sb.WriteByte(lx.cursor.Bump())
			if !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				sb.WriteByte(lx.cursor.Bump())
			}
		default:
			sb.WriteByte(lx.cursor.Bump())
		}
	}
}

// Жадность: сначала 2-символьные, затем 1-символьные.
func (lx *Lexer) scanOperator() lexeme {
	for _, op := range twoCharOps {
		if lx.try2(op[0], op[1]) {
			k, _ := token.LookupOperator(op)
			return lexeme{kind: lexOperator, tok: k}
		}
	}
	if k, ok := token.LookupOperator(string(lx.cursor.Peek())); ok {
		lx.cursor.Bump()
		return lexeme{kind: lexOperator, tok: k}
	}
	lx.unknownChar()
	return lexeme{kind: lexSkip}
}

// unknownChar consumes one UTF-8 sequence and reports it.
func (lx *Lexer) unknownChar() {
	start := lx.cursor.Pos()
	m := lx.cursor.Pin()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isContinuation(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Err() != nil {
		return
	}
	lx.cls.Issue(diag.NewError(diag.LexUnknownChar, start, lx.cursor.Text(m)))
}
