package stream

import (
	"io"

	"tinyhttpd/internal/http/header"
)

type Writer interface {
	WriteResponse(status header.ResponseStatus, body string) error
}

type writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) Writer {
	return &writer{w: w}
}

// WriteResponse sends the status line and body in one write.
func (wr *writer) WriteResponse(status header.ResponseStatus, body string) error {
	line := status.String()
	buf := make([]byte, 0, len(line)+1+len(body))
	buf = append(buf, line...)
	buf = append(buf, '\n')
	buf = append(buf, body...)

	_, err := wr.w.Write(buf)
	return err
}
