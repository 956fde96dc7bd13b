// Package token defines lexical token kinds and the per-token semantic value
// handed from the lexer to the parser.
// Invariants:
//   - Every Token carries exactly one Kind and the Pos where its lexeme starts.
//   - Value is nil for keywords, operators and EOF; for literal and identifier
//     kinds its concrete type is fixed by PayloadOf(kind).
//   - Token is a plain value: copying it never aliases lexer state.
//   - "true" and "false" are not keywords; they classify as BoolLit.
package token
