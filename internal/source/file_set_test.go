package source

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.decaf", 0)
	assert.Equal(t, FileID(0), id1)

	latest, ok := fs.GetLatest("test.decaf")
	require.True(t, ok)
	assert.Equal(t, id1, latest)

	id2 := fs.Add("./test.decaf", 0)
	assert.Equal(t, FileID(1), id2)

	latest, ok = fs.GetLatest("test.decaf")
	require.True(t, ok)
	assert.Equal(t, id2, latest)
	assert.Equal(t, 2, fs.Len())
	assert.Nil(t, fs.Get(7))
}

func TestFileSetAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("<stdin>")
	f := fs.Get(id)
	require.NotNil(t, f)
	assert.Equal(t, FileVirtual, f.Flags&FileVirtual)
}

func TestFileSetOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.decaf")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFclass Main {}\r\n"), 0o600))

	fs := NewFileSet()
	file, r, closer, err := fs.Open(path)
	require.NoError(t, err)
	defer closer.Close()

	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "class Main {}\n", string(content))
	assert.NotZero(t, file.Flags&FileHadBOM)
	assert.NotZero(t, file.Flags&FileNormalizedCRLF)
	assert.Same(t, file, fs.Get(file.ID))
}

func TestFileSetOpenMissing(t *testing.T) {
	fs := NewFileSet()
	_, _, _, err := fs.Open(filepath.Join(t.TempDir(), "nope.decaf"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 0, fs.Len())
}

func TestPosString(t *testing.T) {
	assert.Equal(t, "(-)", NoPos.String())
	assert.False(t, NoPos.IsValid())
	p := Pos{Line: 3, Col: 14, Off: 40}
	assert.Equal(t, "(3,14)", p.String())
	assert.True(t, p.Before(Pos{Line: 3, Col: 15, Off: 41}))
	assert.Equal(t, LineCol{Line: 3, Col: 14}, p.LineCol())
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()
	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")
	require.NoError(t, os.MkdirAll(baseDir, 0o755))
	require.NoError(t, os.MkdirAll(otherDir, 0o755))

	target := filepath.Join(otherDir, "file.decaf")
	got, err := RelativePath(target, baseDir)
	require.NoError(t, err)
	assert.Equal(t, normalizePath(target), got)
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "nested", "file.decaf")
	got, err := RelativePath(target, tmp)
	require.NoError(t, err)
	assert.Equal(t, "nested/file.decaf", got)
}
