package lexer

import (
	"errors"
	"fmt"
	"io"

	"fortio.org/safecast"

	"decaf/internal/source"
)

const (
	readChunk          = 4096
	maxEmptyReads      = 100
	utf8ContinuationHi = 0xC0
	utf8Continuation   = 0x80
)

// Cursor streams bytes from a reader and tracks where it is in the unit.
// Bytes before the pinned mark may be discarded, so Text only works for
// marks taken at or after the last Pin.
type Cursor struct {
	file source.FileID
	r    io.Reader
	buf  []byte
	off  int    // read position inside buf
	pin  int    // first byte inside buf that must be kept
	base uint32 // absolute offset of buf[0]
	line uint32
	col  uint32
	eof  bool
	err  error // sticky non-EOF read error
}

// NewCursor creates a cursor positioned at line 1, column 1.
func NewCursor(file source.FileID, r io.Reader) *Cursor {
	return &Cursor{
		file: file,
		r:    r,
		buf:  make([]byte, 0, readChunk),
		line: 1,
		col:  1,
	}
}

// Err returns the read error that stopped the cursor, if any. io.EOF is
// not an error.
func (c *Cursor) Err() error {
	return c.err
}

func (c *Cursor) ensure(n int) bool {
	empty := 0
	for len(c.buf)-c.off < n {
		if c.eof || c.err != nil {
			return false
		}
		c.compact()
		if cap(c.buf)-len(c.buf) < readChunk {
			grown := make([]byte, len(c.buf), 2*cap(c.buf)+readChunk)
			copy(grown, c.buf)
			c.buf = grown
		}
		m, err := c.r.Read(c.buf[len(c.buf):cap(c.buf)])
		c.buf = c.buf[:len(c.buf)+m]
		switch {
		case errors.Is(err, io.EOF):
			c.eof = true
		case err != nil:
			c.err = err
		case m == 0:
			empty++
			if empty >= maxEmptyReads {
				c.err = io.ErrNoProgress
			}
		}
	}
	return true
}

func (c *Cursor) compact() {
	if c.pin == 0 || c.pin < len(c.buf)/2 {
		return
	}
	kept := copy(c.buf, c.buf[c.pin:])
	c.buf = c.buf[:kept]
	c.base += c.u32(c.pin)
	c.off -= c.pin
	c.pin = 0
}

func (c *Cursor) u32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("cursor offset overflow: %w", err))
	}
	return v
}

// EOF reports whether no more bytes can be read, either because the input
// ended or because reading failed.
func (c *Cursor) EOF() bool {
	return !c.ensure(1)
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if !c.ensure(1) {
		return 0
	}
	return c.buf[c.off]
}

// Peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if !c.ensure(2) {
		return 0, 0, false
	}
	return c.buf[c.off], c.buf[c.off+1], true
}

// Peek3 читает три байта вперёд, если они есть
func (c *Cursor) Peek3() (b0, b1, b2 byte, ok bool) {
	if !c.ensure(3) {
		return 0, 0, 0, false
	}
	return c.buf[c.off], c.buf[c.off+1], c.buf[c.off+2], true
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if !c.ensure(1) {
		return 0
	}
	b := c.buf[c.off]
	c.off++
	switch {
	case b == '\n':
		c.line++
		c.col = 1
	case b&utf8ContinuationHi != utf8Continuation:
		c.col++
	}
	return b
}

// Pos returns the position of the next unread byte.
func (c *Cursor) Pos() source.Pos {
	return source.Pos{
		File: c.file,
		Off:  c.base + c.u32(c.off),
		Line: c.line,
		Col:  c.col,
	}
}

// Mark это метка, что бы быстро получать текст читаемого фрагмента
type Mark uint32

// Pin marks the current byte as the start of a lexeme: nothing from here on
// is discarded until the next Pin.
func (c *Cursor) Pin() Mark {
	c.pin = c.off
	return Mark(c.base + c.u32(c.off))
}

// Len returns the number of bytes consumed since m.
func (c *Cursor) Len(m Mark) int {
	return int(c.base+c.u32(c.off)) - int(m)
}

// Text returns the bytes consumed since m.
func (c *Cursor) Text(m Mark) string {
	from := int(uint32(m) - c.base)
	if from < 0 || from > c.off {
		return ""
	}
	return string(c.buf[from:c.off])
}
