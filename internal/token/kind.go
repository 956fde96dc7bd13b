package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Identifier represents an identifier token.
	Identifier

	kwBegin
	// KwAbstract represents the 'abstract' keyword.
	KwAbstract // abstract
	// KwBool represents the 'bool' keyword.
	KwBool // bool
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFun represents the 'fun' keyword.
	KwFun // fun
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwInstanceOf represents the 'instanceof' keyword.
	KwInstanceOf // instanceof
	// KwInt represents the 'int' keyword.
	KwInt // int
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwPrint represents the 'Print' keyword.
	KwPrint // Print
	// KwReadInteger represents the 'ReadInteger' keyword.
	KwReadInteger // ReadInteger
	// KwReadLine represents the 'ReadLine' keyword.
	KwReadLine // ReadLine
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwString represents the 'string' keyword.
	KwString // string
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	kwEnd

	// IntLit represents the integer literal token.
	IntLit
	// BoolLit represents the boolean literal token.
	BoolLit
	// StringLit represents the string literal token.
	StringLit

	opBegin
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// Lt represents the lt operator token.
	Lt // <
	// Gt represents the gt operator token.
	Gt // >
	// Dot represents the dot operator token.
	Dot // .
	// Comma represents the comma operator token.
	Comma // ,
	// Semicolon represents the semicolon operator token.
	Semicolon // ;
	// Bang represents the bang operator token.
	Bang // !
	// LParen represents the left parenthesis operator token.
	LParen // (
	// RParen represents the right parenthesis operator token.
	RParen // )
	// LBracket represents the left bracket operator token.
	LBracket // [
	// RBracket represents the right bracket operator token.
	RBracket // ]
	// LBrace represents the left brace operator token.
	LBrace // {
	// RBrace represents the right brace operator token.
	RBrace // }
	// Colon represents the colon operator token.
	Colon // :
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// EqEq represents the eq eq operator token.
	EqEq // ==
	// BangEq represents the bang eq operator token.
	BangEq // !=
	// AndAnd represents the and and operator token.
	AndAnd // &&
	// OrOr represents the or or operator token.
	OrOr // ||
	// FatArrow represents the lambda arrow token.
	FatArrow // =>
	opEnd
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Identifier: "Identifier",

	KwAbstract:    "KwAbstract",
	KwBool:        "KwBool",
	KwBreak:       "KwBreak",
	KwClass:       "KwClass",
	KwElse:        "KwElse",
	KwExtends:     "KwExtends",
	KwFor:         "KwFor",
	KwFun:         "KwFun",
	KwIf:          "KwIf",
	KwInstanceOf:  "KwInstanceOf",
	KwInt:         "KwInt",
	KwNew:         "KwNew",
	KwNull:        "KwNull",
	KwPrint:       "KwPrint",
	KwReadInteger: "KwReadInteger",
	KwReadLine:    "KwReadLine",
	KwReturn:      "KwReturn",
	KwStatic:      "KwStatic",
	KwString:      "KwString",
	KwThis:        "KwThis",
	KwVar:         "KwVar",
	KwVoid:        "KwVoid",
	KwWhile:       "KwWhile",

	IntLit:    "IntLit",
	BoolLit:   "BoolLit",
	StringLit: "StringLit",

	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	Percent:   "Percent",
	Assign:    "Assign",
	Lt:        "Lt",
	Gt:        "Gt",
	Dot:       "Dot",
	Comma:     "Comma",
	Semicolon: "Semicolon",
	Bang:      "Bang",
	LParen:    "LParen",
	RParen:    "RParen",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	Colon:     "Colon",
	LtEq:      "LtEq",
	GtEq:      "GtEq",
	EqEq:      "EqEq",
	BangEq:    "BangEq",
	AndAnd:    "AndAnd",
	OrOr:      "OrOr",
	FatArrow:  "FatArrow",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k > kwBegin && k < kwEnd
}

// IsOperator reports whether k is punctuation or an operator.
func (k Kind) IsOperator() bool {
	return k > opBegin && k < opEnd
}

// IsLiteral reports whether k is an integer, boolean, or string literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, BoolLit, StringLit:
		return true
	default:
		return false
	}
}
