package source

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Reader streams unit content while stripping a leading BOM and replacing
// every \r\n with \n. Lone \r bytes are kept. Read errors of the underlying
// reader are passed through unchanged.
type Reader struct {
	file    *File
	br      *bufio.Reader
	started bool
	err     error // deferred error swallowed by a Peek
}

// NewReader wraps r. file may be nil; otherwise its Flags record what was
// normalised.
func NewReader(file *File, r io.Reader) *Reader {
	return &Reader{file: file, br: bufio.NewReader(r)}
}

func (r *Reader) mark(flag FileFlags) {
	if r.file != nil {
		r.file.Flags |= flag
	}
}

func (r *Reader) keep(err error) {
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) && r.err == nil {
		r.err = err
	}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if !r.started {
		r.started = true
		head, err := r.br.Peek(len(bom))
		if err == nil && bytes.Equal(head, bom) {
			if _, err := r.br.Discard(len(bom)); err != nil {
				return 0, err
			}
			r.mark(FileHadBOM)
		}
		r.keep(err)
	}
	for {
		if r.err != nil && r.br.Buffered() == 0 {
			return 0, r.err
		}
		n, err := r.br.Read(p)
		out := 0
		for i := 0; i < n; i++ {
			b := p[i]
			if b == '\r' && r.followedByLF(p[:n], i) {
				r.mark(FileNormalizedCRLF)
				continue
			}
			p[out] = b
			out++
		}
		if out > 0 || err != nil {
			return out, err
		}
	}
}

func (r *Reader) followedByLF(chunk []byte, i int) bool {
	if i+1 < len(chunk) {
		return chunk[i+1] == '\n'
	}
	next, err := r.br.Peek(1)
	if err != nil {
		r.keep(err)
		return false
	}
	return next[0] == '\n'
}
