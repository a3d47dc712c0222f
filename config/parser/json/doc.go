// Package json provides a JSON parser implementation for the config package.
//
// Parse decodes with encoding/json and UseNumber, so numbers arrive in the tree as
// json.Number; the keypath package narrows them to any Go numeric type without loss.
//
// Usage:
//
//	parser := json.NewParser()
//	tree, err := parser.Parse([]byte(`{"index":{"value":42}}`))
//	value, err := keypath.Get[int](tree, "index.value") // 42
package json
