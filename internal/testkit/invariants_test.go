package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decaf/internal/source"
	"decaf/internal/token"
)

func pos(off uint32) source.Pos {
	return source.Pos{Off: off, Line: 1, Col: off + 1}
}

func TestCheckTokenInvariants(t *testing.T) {
	good := []token.Token{
		{Kind: token.Identifier, Pos: pos(0), Value: token.TextValue("x")},
		{Kind: token.Assign, Pos: pos(2)},
		{Kind: token.IntLit, Pos: pos(4), Value: token.IntValue(1)},
		{Kind: token.EOF, Pos: pos(5)},
	}
	require.NoError(t, CheckTokenInvariants(good, 0))

	tests := map[string][]token.Token{
		"empty":       nil,
		"no eof":      good[:3],
		"early eof":   {{Kind: token.EOF, Pos: pos(0)}, {Kind: token.EOF, Pos: pos(1)}},
		"no position": {{Kind: token.Assign}, {Kind: token.EOF, Pos: pos(1)}},
		"backwards":   {good[2], good[1], good[3]},
		"payload":     {{Kind: token.IntLit, Pos: pos(0)}, good[3]},
		"other file":  {{Kind: token.EOF, Pos: source.Pos{File: 3, Line: 1, Col: 1}}},
	}
	for name, toks := range tests {
		assert.Error(t, CheckTokenInvariants(toks, 0), name)
	}
}
