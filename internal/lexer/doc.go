// Package lexer hands classified tokens from the scanner to the parser.
//
// The parser-facing contract is Source: Next advances exactly one token and
// returns it by value, Pos reports where that token starts. Every produced
// token is also written to the Channel bound by Setup, a single slot that
// holds the latest token and nothing else.
//
// The scanner-facing contract is Classifier: for each recognised lexeme the
// scanner calls exactly one of Keyword, Operator, IntConst, BoolConst,
// StringConst or Identifier. Literal decoding problems go to the bound
// diag.Issuer and degrade the payload; the token itself is always emitted.
// Only a failing reader stops the stream, and Next reports it as ErrRead.
package lexer
