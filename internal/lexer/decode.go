package lexer

import (
	"errors"
	"strconv"
	"strings"
)

var errSignPosition = errors.New("sign character in wrong position")

// DecodeInt parses an integer literal into an int32.
//
// Accepted forms: an optional sign, then a 0x, 0X or # prefix for
// hexadecimal, a leading 0 followed by more digits for octal, or plain
// decimal. The whole int32 range is accepted, including -2147483648.
// The returned value is 0 whenever err is non-nil.
func DecodeInt(text string) (int32, error) {
	if text == "" {
		return 0, &strconv.NumError{Func: "DecodeInt", Num: text, Err: strconv.ErrSyntax}
	}
	rest := text
	sign := ""
	if rest[0] == '-' || rest[0] == '+' {
		if rest[0] == '-' {
			sign = "-"
		}
		rest = rest[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(rest, "0x"), strings.HasPrefix(rest, "0X"):
		base = 16
		rest = rest[2:]
	case strings.HasPrefix(rest, "#"):
		base = 16
		rest = rest[1:]
	case strings.HasPrefix(rest, "0") && len(rest) > 1:
		base = 8
		rest = rest[1:]
	}

	if strings.HasPrefix(rest, "-") || strings.HasPrefix(rest, "+") {
		return 0, &strconv.NumError{Func: "DecodeInt", Num: text, Err: errSignPosition}
	}
	if strings.ContainsRune(rest, '_') {
		return 0, &strconv.NumError{Func: "DecodeInt", Num: text, Err: strconv.ErrSyntax}
	}

	v, err := strconv.ParseInt(sign+rest, base, 32)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			return 0, &strconv.NumError{Func: "DecodeInt", Num: text, Err: ne.Err}
		}
		return 0, err
	}
	return int32(v), nil
}
