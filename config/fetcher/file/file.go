package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrFileTooLarge is returned when the file exceeds the configured size limit.
var ErrFileTooLarge = errors.New("file exceeds size limit")

// DefaultMaxSize bounds the size of configuration files read by a Fetcher.
const DefaultMaxSize int64 = 16 << 20

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxSize overrides DefaultMaxSize. Non-positive values disable the limit.
func WithMaxSize(size int64) Option {
	return func(f *Fetcher) {
		f.maxSize = size
	}
}

// Fetcher implements config.DataFetcher interface for file-based configuration documents.
// It reads the file once at construction time and serves copies of the cached contents.
type Fetcher struct {
	filepath string
	maxSize  int64
	data     []byte
}

// NewFetcher returns a constructor function that reads the file at fpath.
// Returning a constructor lets the DI container decide when the file is read.
// The constructor fails if the file cannot be read, is a directory or is larger than the size limit.
func NewFetcher(fpath string, opts ...Option) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		fetcher := &Fetcher{
			filepath: filepath.Clean(fpath),
			maxSize:  DefaultMaxSize,
			data:     nil,
		}

		for _, apply := range opts {
			apply(fetcher)
		}

		err := fetcher.load()
		if err != nil {
			return nil, err
		}

		return fetcher, nil
	}
}

func (f *Fetcher) load() error {
	stat, err := os.Stat(f.filepath)
	if err != nil {
		return fmt.Errorf("stat file %q: %w", f.filepath, err)
	}

	if stat.IsDir() {
		return fmt.Errorf("path %q: %w", f.filepath, ErrPathIsDirectory)
	}

	if f.maxSize > 0 && stat.Size() > f.maxSize {
		return fmt.Errorf("path %q (%d bytes): %w", f.filepath, stat.Size(), ErrFileTooLarge)
	}

	data, err := os.ReadFile(f.filepath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return fmt.Errorf("reading file %q: %w", f.filepath, err)
	}

	f.data = data

	return nil
}

// Path returns the cleaned path of the file.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Ext returns the lower-cased file extension, including the leading dot.
func (f *Fetcher) Ext() string {
	return strings.ToLower(filepath.Ext(f.filepath))
}

// Fetch returns a copy of the cached contents, so callers cannot mutate the cache.
func (f *Fetcher) Fetch() ([]byte, error) {
	return slices.Clone(f.data), nil
}
