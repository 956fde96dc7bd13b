package token

var keywords = map[string]Kind{
	"abstract":    KwAbstract,
	"bool":        KwBool,
	"break":       KwBreak,
	"class":       KwClass,
	"else":        KwElse,
	"extends":     KwExtends,
	"for":         KwFor,
	"fun":         KwFun,
	"if":          KwIf,
	"instanceof":  KwInstanceOf,
	"int":         KwInt,
	"new":         KwNew,
	"null":        KwNull,
	"Print":       KwPrint,
	"ReadInteger": KwReadInteger,
	"ReadLine":    KwReadLine,
	"return":      KwReturn,
	"static":      KwStatic,
	"string":      KwString,
	"this":        KwThis,
	"var":         KwVar,
	"void":        KwVoid,
	"while":       KwWhile,
}

var operators = map[string]Kind{
	"+":  Plus,
	"-":  Minus,
	"*":  Star,
	"/":  Slash,
	"%":  Percent,
	"=":  Assign,
	"<":  Lt,
	">":  Gt,
	".":  Dot,
	",":  Comma,
	";":  Semicolon,
	"!":  Bang,
	"(":  LParen,
	")":  RParen,
	"[":  LBracket,
	"]":  RBracket,
	"{":  LBrace,
	"}":  RBrace,
	":":  Colon,
	"<=": LtEq,
	">=": GtEq,
	"==": EqEq,
	"!=": BangEq,
	"&&": AndAnd,
	"||": OrOr,
	"=>": FatArrow,
}

// LookupKeyword returns the keyword kind for ident.
// Keywords are case-sensitive: "Print" is a keyword, "print" is not.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupOperator returns the operator kind spelled exactly as op.
func LookupOperator(op string) (Kind, bool) {
	k, ok := operators[op]
	return k, ok
}
