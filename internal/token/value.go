package token

import "strconv"

// Value is the typed payload of a token. The concrete types are IntValue,
// BoolValue and TextValue; the set is closed.
type Value interface {
	payload() Payload
	String() string
}

// IntValue is the decoded value of an IntLit.
type IntValue int32

// BoolValue is the value of a BoolLit.
type BoolValue bool

// TextValue is the verbatim spelling of an Identifier or the quoted source
// text of a StringLit.
type TextValue string

func (IntValue) payload() Payload  { return PayloadInt }
func (BoolValue) payload() Payload { return PayloadBool }
func (TextValue) payload() Payload { return PayloadText }

func (v IntValue) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v BoolValue) String() string { return strconv.FormatBool(bool(v)) }
func (v TextValue) String() string { return string(v) }

// Payload names the shape of a token's Value.
type Payload uint8

const (
	PayloadNone Payload = iota
	PayloadInt
	PayloadBool
	PayloadText
)

func (p Payload) String() string {
	switch p {
	case PayloadNone:
		return "none"
	case PayloadInt:
		return "int"
	case PayloadBool:
		return "bool"
	case PayloadText:
		return "text"
	}
	return "unknown"
}

// PayloadOf returns the payload shape a token of kind k carries.
func PayloadOf(k Kind) Payload {
	switch k {
	case IntLit:
		return PayloadInt
	case BoolLit:
		return PayloadBool
	case StringLit, Identifier:
		return PayloadText
	default:
		return PayloadNone
	}
}
