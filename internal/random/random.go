package random

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
)

var ErrInvalidLength = errors.New("invalid length")

// Random produces the short identifiers that tag each connection's log lines.
type Random interface {
	String(length int) (string, error)
}

type random struct {
	reader io.Reader
}

func New() Random {
	return &random{reader: rand.Reader}
}

// String returns length lowercase hex characters.
func (r *random) String(length int) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}

	b := make([]byte, (length+1)/2)
	if _, err := io.ReadFull(r.reader, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b)[:length], nil
}
