package source

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAllWith(t *testing.T, r io.Reader) string {
	t.Helper()
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestReaderStripsBOM(t *testing.T) {
	f := &File{}
	got := readAllWith(t, NewReader(f, strings.NewReader("\xEF\xBB\xBFclass A {}")))
	assert.Equal(t, "class A {}", got)
	assert.NotZero(t, f.Flags&FileHadBOM)
	assert.Zero(t, f.Flags&FileNormalizedCRLF)
}

func TestReaderFoldsCRLF(t *testing.T) {
	f := &File{}
	got := readAllWith(t, NewReader(f, strings.NewReader("a\r\nb\rc\r\n")))
	assert.Equal(t, "a\nb\rc\n", got)
	assert.NotZero(t, f.Flags&FileNormalizedCRLF)
}

func TestReaderFoldsCRLFAcrossChunks(t *testing.T) {
	// OneByteReader forces every \r to sit at a chunk boundary.
	f := &File{}
	got := readAllWith(t, NewReader(f, iotest.OneByteReader(strings.NewReader("x\r\ny\r\n\r\nz"))))
	assert.Equal(t, "x\ny\n\nz", got)
}

func TestReaderNilFile(t *testing.T) {
	got := readAllWith(t, NewReader(nil, strings.NewReader("\xEF\xBB\xBFok\r\n")))
	assert.Equal(t, "ok\n", got)
}

func TestReaderPassesThroughErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	r := NewReader(nil, io.MultiReader(strings.NewReader("abc"), iotest.ErrReader(boom)))
	_, err := io.ReadAll(r)
	require.ErrorIs(t, err, boom)
}
