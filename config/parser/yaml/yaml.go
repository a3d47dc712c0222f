package yaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements config.Parser interface for YAML data.
// Mappings are decoded as map[string]any, so the resulting tree can be walked with key paths.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes YAML data into a dynamic tree.
// Mappings become map[string]any, sequences []any and null values nil.
func (p *Parser) Parse(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var root any

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return root, nil
}

// Bind decodes a section of a tree returned by Parse into target, honoring yaml struct tags.
func (p *Parser) Bind(section any, target any) error {
	data, err := yaml.Marshal(section)
	if err != nil {
		return fmt.Errorf("marshal section error: %w", err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
