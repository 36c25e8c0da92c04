package static

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"unicode/utf8"
)

var (
	ErrNotText = errors.New("file is not valid UTF-8 text")
)

type Store interface {
	Root() string
	Read(name string) (string, error)
}

type store struct {
	root string
}

// New strips trailing separators from root so request paths, which start
// with one, join cleanly.
func New(root string) Store {
	trimmed := strings.TrimRight(root, "/")
	if trimmed == "" && root != "" {
		trimmed = "/"
	}
	return &store{root: trimmed}
}

func (s *store) Root() string {
	return s.root
}

// Read returns the contents of name resolved under the root. Names that
// would escape the root fail like any missing file.
func (s *store) Read(name string) (string, error) {
	dir, err := os.OpenRoot(s.root)
	if err != nil {
		return "", fmt.Errorf("open static root: %w", err)
	}
	defer func() {
		_ = dir.Close()
	}()

	rel := strings.TrimPrefix(path.Clean("/"+name), "/")
	if rel == "" {
		rel = "."
	}

	data, err := dir.ReadFile(rel)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", rel, ErrNotText)
	}
	return string(data), nil
}
