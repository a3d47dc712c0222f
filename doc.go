// Package keypath provides typed retrieval of values from nested dynamic trees
// (the map[string]any shape produced by decoding JSON or YAML into an interface)
// using dotted key paths such as "this.is.a.keypath".
//
// # Paths
//
// A Path is parsed from a string by splitting on '.':
//
//	p := keypath.Parse("database.connection.port")
//	p.Segments() // ["database", "connection", "port"]
//	p.String()   // "database.connection.port"
//
// There is no escaping: a key that itself contains a dot cannot be addressed.
// Leading, trailing or doubled dots produce empty segments, which are kept
// as-is and simply never match in practice. Parse("") yields a path with no
// segments, which every decode function rejects with ErrInvalidPath.
//
// # Decoding
//
// Decode walks every segment but the last expecting a nested map[string]any,
// then narrows the final value to the requested type:
//
//	port, err := keypath.Decode[int](root, keypath.Parse("database.connection.port"))
//
// Failures are returned as *DecodeError values wrapping one of four sentinels:
//   - ErrInvalidPath: the path has no segments
//   - ErrMissing: a key is absent, or an intermediate segment is not a map
//   - ErrIsNil: the final key is present but holds null
//   - ErrTypeMismatch: the final value (or the root) has the wrong type
//
// Use errors.Is to branch on the kind and errors.As to reach the details.
// DecodeOptional and Lookup are non-failing variants that report only success.
//
// Numbers are narrowed losslessly: a float64(42) produced by encoding/json or a
// uint64(42) produced by a YAML decoder both decode as int, while 4.5 does not.
//
// All functions are pure: they never modify the tree and are safe for
// concurrent use.
package keypath
