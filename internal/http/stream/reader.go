package stream

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/utils/uf"
)

type Reader interface {
	ReadLine() (string, error)
	ReadBody() (string, error)
}

type reader struct {
	br   *bufio.Reader
	size int
}

func NewReader(r io.Reader, size int) Reader {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &reader{
		br:   bufio.NewReaderSize(r, size),
		size: size,
	}
}

// ReadLine returns the next line with its terminator, however many reads it
// takes to arrive. A trailing fragment without a terminator is returned
// together with the read error. A line longer than the buffer is consumed
// up to its terminator and reported as ErrLineTooLong.
func (r *reader) ReadLine() (string, error) {
	line, err := r.br.ReadSlice('\n')
	if err != nil {
		if errors.Is(err, bufio.ErrBufferFull) {
			return "", r.discardLine()
		}
		return decode(line), err
	}
	return decode(line), nil
}

func (r *reader) discardLine() error {
	for {
		_, err := r.br.ReadSlice('\n')
		switch {
		case err == nil:
			return ErrLineTooLong
		case !errors.Is(err, bufio.ErrBufferFull):
			return err
		}
	}
}

// ReadBody returns one chunk: whatever is already buffered, or else the
// result of a single read of at most the buffer size.
func (r *reader) ReadBody() (string, error) {
	n := r.br.Buffered()
	if n == 0 {
		n = r.size
	}

	buf := make([]byte, n)
	read, err := r.br.Read(buf)
	if read == 0 && err != nil {
		return "", err
	}
	return decode(buf[:read]), nil
}

func decode(b []byte) string {
	if utf8.Valid(b) {
		return strings.Clone(uf.B2S(b))
	}
	return strings.ToValidUTF8(uf.B2S(b), string(utf8.RuneError))
}
