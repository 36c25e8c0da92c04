package stream

import "errors"

const DefaultBufferSize = 4096

var (
	// ErrLineTooLong reports a line that was read and dropped because it did
	// not fit the buffer. The stream stays positioned at the next line.
	ErrLineTooLong = errors.New("header line exceeds buffer size")
)
