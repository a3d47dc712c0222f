package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrTrailingData is returned when more than one JSON value is present in the input.
var ErrTrailingData = errors.New("trailing data after JSON value")

// Parser implements config.Parser interface for JSON data.
// Numbers are kept as json.Number so large integers survive decoding.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a single JSON value into a dynamic tree.
func (p *Parser) Parse(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var root any

	err := decoder.Decode(&root)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	_, err = decoder.Token()
	if !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return root, nil
}

// Bind decodes a section of a tree returned by Parse into target, honoring json struct tags.
func (p *Parser) Bind(section any, target any) error {
	data, err := json.Marshal(section)
	if err != nil {
		return fmt.Errorf("marshal section error: %w", err)
	}

	err = json.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
