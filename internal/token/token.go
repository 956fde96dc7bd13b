package token

import (
	"fmt"

	"decaf/internal/source"
)

// Token is the semantic value of one classified lexeme: its kind, the
// position its lexeme starts at and the payload selected by the kind.
type Token struct {
	Kind  Kind
	Pos   source.Pos
	Value Value
}

// Int returns the IntLit payload. ok is false for any other payload shape.
func (t Token) Int() (v int32, ok bool) {
	iv, ok := t.Value.(IntValue)
	return int32(iv), ok
}

// Bool returns the BoolLit payload. ok is false for any other payload shape.
func (t Token) Bool() (v, ok bool) {
	bv, ok := t.Value.(BoolValue)
	return bool(bv), ok
}

// Text returns the StringLit or Identifier payload.
func (t Token) Text() (s string, ok bool) {
	tv, ok := t.Value.(TextValue)
	return string(tv), ok
}

// Payload reports the shape of the value actually attached to t.
func (t Token) Payload() Payload {
	if t.Value == nil {
		return PayloadNone
	}
	return t.Value.payload()
}

// WellFormed reports whether the payload shape agrees with the kind.
func (t Token) WellFormed() bool {
	return t.Payload() == PayloadOf(t.Kind)
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsOperator reports whether the token is punctuation or an operator.
func (t Token) IsOperator() bool { return t.Kind.IsOperator() }

func (t Token) String() string {
	if t.Value == nil {
		return fmt.Sprintf("%v%v", t.Kind, t.Pos)
	}
	if t.Payload() == PayloadText {
		return fmt.Sprintf("%v%v %q", t.Kind, t.Pos, t.Value.String())
	}
	return fmt.Sprintf("%v%v %s", t.Kind, t.Pos, t.Value)
}
