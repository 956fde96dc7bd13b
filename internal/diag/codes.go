package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0
	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexNewlineInString    Code = 1003
	LexIntTooLarge        Code = 1004
	LexTokenLimit         Code = 1005
	LexTokenTooLong       Code = 1006

	// Ввод/вывод
	IOLoadFileError Code = 4001
	IOReadError     Code = 4002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		LexInfo:               "Lexical information",
		LexUnknownChar:        "Unrecognized character",
		LexUnterminatedString: "Unterminated string constant",
		LexNewlineInString:    "Illegal newline in string constant",
		LexIntTooLarge:        "Integer literal too large",
		LexTokenLimit:         "Token limit reached",
		LexTokenTooLong:       "Token too long",
		IOLoadFileError:       "I/O load file error",
		IOReadError:           "I/O read error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
