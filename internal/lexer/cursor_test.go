package lexer

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decaf/internal/diag"
	"decaf/internal/source"
	"decaf/internal/token"
)

// fillReader yields the same byte forever.
type fillReader byte

func (f fillReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(f)
	}
	return len(p), nil
}

const maxRetainedBuffer = 64 << 10

func TestLongTriviaDoesNotGrowBuffer(t *testing.T) {
	const size = 4 << 20
	tests := []struct {
		name   string
		prefix string
		fill   byte
	}{
		{"line comment", "//", 'a'},
		{"comment after code", "x //", '#'},
		{"blank run", "", ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := io.MultiReader(
				strings.NewReader(tt.prefix),
				io.LimitReader(fillReader(tt.fill), size),
				strings.NewReader("\nfoo"),
			)
			fs := source.NewFileSet()
			lx := New(fs.Get(fs.AddVirtual("big.decaf")), r, Options{})
			bag := diag.NewBag(8)
			lx.Setup(&Channel{}, bag)

			var last token.Token
			for {
				tok, err := lx.Next()
				require.NoError(t, err)
				if tok.Kind == token.EOF {
					break
				}
				last = tok
			}
			assert.Equal(t, token.Identifier, last.Kind)
			assert.Equal(t, token.TextValue("foo"), last.Value)
			assert.Equal(t, uint32(2), last.Pos.Line)
			assert.Zero(t, bag.Len())
			assert.Less(t, cap(lx.cursor.buf), maxRetainedBuffer)
		})
	}
}
