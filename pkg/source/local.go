package source

import (
	"context"
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
)

// FileSource reads a local file
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Read(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", errors.Errorf("reading %s: %w", s.path, err)
	}
	return string(data), nil
}

func (s *FileSource) Describe() string {
	return s.path
}

// StdinSource reads piped input once
type StdinSource struct {
	r io.Reader
}

// NewStdinSource creates a source reading from r, normally os.Stdin
func NewStdinSource(r io.Reader) *StdinSource {
	return &StdinSource{r: r}
}

func (s *StdinSource) Read(ctx context.Context) (string, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return "", errors.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func (s *StdinSource) Describe() string {
	return "stdin"
}
