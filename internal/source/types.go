package source

import "fmt"

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata for a single compilation unit. Content is never
// held here: the lexer streams it from the reader returned by FileSet.Open.
type File struct {
	ID    FileID
	Path  string
	Flags FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// Pos identifies where a lexeme begins. It is a plain value and never
// changes once the scanner has produced it.
type Pos struct {
	File FileID
	Off  uint32 // byte offset, 0-based
	Line uint32 // 1-based; 0 means "no position"
	Col  uint32 // 1-based, counted in runes
}

// NoPos is the zero Pos.
var NoPos Pos

// IsValid reports whether p was produced by a scanner.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// LineCol drops the file and offset parts of p.
func (p Pos) LineCol() LineCol {
	return LineCol{Line: p.Line, Col: p.Col}
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "(-)"
	}
	return fmt.Sprintf("(%d,%d)", p.Line, p.Col)
}

// Before reports whether p comes strictly earlier than q in the same file.
func (p Pos) Before(q Pos) bool {
	if p.File != q.File {
		return p.File < q.File
	}
	return p.Off < q.Off
}
