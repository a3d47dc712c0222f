package keypath

import (
	"slices"
	"strings"
)

// Separator delimits the segments of a key path.
const Separator = "."

// Path is an ordered sequence of keys used to reach a value inside nested maps.
// The zero value is an empty path.
type Path struct {
	segments []string
}

// Parse splits text on Separator. It never fails: an empty text yields an empty
// path, and empty segments produced by stray dots are kept as they are.
func Parse(text string) Path {
	if text == "" {
		return Path{}
	}

	return Path{segments: strings.Split(text, Separator)}
}

// New builds a path from explicit segments.
func New(segments ...string) Path {
	return Path{segments: slices.Clone(segments)}
}

// Segments returns a copy of the path segments.
func (p Path) Segments() []string {
	return slices.Clone(p.segments)
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// String returns the segments joined with Separator.
func (p Path) String() string {
	return strings.Join(p.segments, Separator)
}

// Last returns the final segment.
func (p Path) Last() (string, bool) {
	if len(p.segments) == 0 {
		return "", false
	}

	return p.segments[len(p.segments)-1], true
}

// Prefix returns a path made of the first n segments. n is clamped to [0, Len()].
func (p Path) Prefix(n int) Path {
	n = max(0, min(n, len(p.segments)))

	return Path{segments: slices.Clone(p.segments[:n])}
}

// Append returns a new path with segments added after the receiver's.
func (p Path) Append(segments ...string) Path {
	joined := make([]string, 0, len(p.segments)+len(segments))
	joined = append(joined, p.segments...)
	joined = append(joined, segments...)

	return Path{segments: joined}
}

// Equal reports whether both paths have the same segments in the same order.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.segments, other.segments)
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	*p = Parse(string(text))

	return nil
}
