package fuzztests

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"decaf/internal/diag"
	"decaf/internal/lexer"
	"decaf/internal/source"
	"decaf/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func lexAll(t *testing.T, input []byte, oneByte bool) *lexer.Lexer {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz.decaf"))
	var r io.Reader = source.NewReader(file, bytes.NewReader(input))
	if oneByte {
		r = iotest.OneByteReader(r)
	}
	lx := lexer.New(file, r, lexer.Options{})
	lx.Setup(&lexer.Channel{}, diag.NewBag(64))
	return lx
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}

		whole, err := lexer.Collect(lexAll(t, input, false))
		require.NoError(t, err)
		require.NoError(t, testkit.CheckTokenInvariants(whole, 0))

		streamed, err := lexer.Collect(lexAll(t, input, true))
		require.NoError(t, err)
		require.Equal(t, whole, streamed)
	})
}
