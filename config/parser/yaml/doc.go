// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml. Parse produces the dynamic tree
// (map[string]any, []any, scalars and nil) that config.Document and the keypath
// package navigate; Bind decodes a selected section into a struct using yaml tags.
//
// Usage:
//
//	parser := yaml.NewParser()
//	tree, err := parser.Parse(data)
//	section, err := keypath.Get[map[string]any](tree, "api.permissions")
//	var cfg Permissions
//	err = parser.Bind(section, &cfg)
package yaml
