package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/keypath"
)

// ErrNilDocument is returned when a nil *Document is queried.
var ErrNilDocument = errors.New("document is nil")

// Parser defines an interface for turning raw configuration data into a dynamic tree
// and for binding a subtree of it into a typed structure.
//
// Parse must return mappings as map[string]any so the tree can be walked with key paths.
// Bind decodes a section previously obtained from that tree into target.
type Parser interface {
	Parse(data []byte) (any, error)
	Bind(section any, target any) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Document is a parsed configuration tree. It is never modified after Load.
type Document struct {
	root any
}

// NewDocument wraps an already decoded tree.
func NewDocument(root any) *Document {
	return &Document{root: root}
}

// Load fetches and parses data into a Document.
func Load(parser Parser, fetcher DataFetcher) (*Document, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	root, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	return NewDocument(root), nil
}

// DocumentProvider returns an Fx-friendly constructor that loads a Document.
func DocumentProvider() func(Parser, DataFetcher) (*Document, error) {
	return Load
}

// Root returns the decoded tree.
func (d *Document) Root() any {
	if d == nil {
		return nil
	}

	return d.root
}

// Lookup returns the raw value at the dotted path, if present and not null.
func (d *Document) Lookup(path string) (any, bool) {
	return keypath.DecodeOptional[any](d.Root(), keypath.Parse(path))
}

// Value decodes the value at the dotted path into T.
// Errors from the keypath package are returned unwrapped so callers can match them with errors.Is.
func Value[T any](doc *Document, path string) (T, error) {
	if doc == nil {
		var zero T

		return zero, ErrNilDocument
	}

	return keypath.Get[T](doc.root, path)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
// The path selects a section of the document with dotted key path syntax ("services.api");
// an empty path binds the entire document.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		doc, err := Load(parser, dataSourcer)
		if err != nil {
			return nil, err
		}

		section, err := selectSection(doc, path)
		if err != nil {
			return nil, fmt.Errorf("selecting section error: %w", err)
		}

		err = parser.Bind(section, target)
		if err != nil {
			return nil, fmt.Errorf("binding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

func selectSection(doc *Document, path string) (any, error) {
	if path == "" {
		return doc.Root(), nil
	}

	section, err := Value[map[string]any](doc, path)
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by the caller
	}

	return section, nil
}
