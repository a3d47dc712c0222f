package keypath

import (
	"fmt"
	"reflect"
)

//nolint:gochecknoglobals // reflect type of the traversable container.
var objectType = reflect.TypeFor[map[string]any]()

// Decode returns the value at path inside root, narrowed to T.
// root must be a map[string]any; any other root fails with ErrTypeMismatch.
// Errors are *DecodeError values; see the package documentation for the kinds.
func Decode[T any](root any, path Path) (T, error) {
	var zero T

	if path.IsEmpty() {
		return zero, invalidPathError(path)
	}

	object, ok := root.(map[string]any)
	if !ok {
		return zero, typeMismatchError(path, objectType, root, root,
			fmt.Sprintf("could not unwrap %s as %s", typeName(reflect.TypeOf(root)), objectType))
	}

	return DecodeObject[T](object, path)
}

// DecodeObject is Decode for a root that is already a map.
func DecodeObject[T any](root map[string]any, path Path) (T, error) {
	var zero T

	if path.IsEmpty() {
		return zero, invalidPathError(path)
	}

	current := root
	segments := path.segments

	for index, key := range segments[:len(segments)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			return zero, missingError(path, path.Prefix(index+1), current)
		}

		current = next
	}

	key, ok := path.Last()
	if !ok {
		return zero, invalidPathError(path)
	}

	value, ok := current[key]
	if !ok {
		return zero, missingError(path, path, current)
	}

	if value == nil {
		return zero, isNilError(path)
	}

	out, ok := narrow[T](value)
	if !ok {
		expected := reflect.TypeFor[T]()
		actual := reflect.TypeOf(value)

		return zero, typeMismatchError(path, expected, value, current,
			fmt.Sprintf("%s for %s was specified but got type %s", expected, key, actual))
	}

	return out, nil
}

// DecodeOptional is the non-failing form of Decode: it reports only whether
// the value was found and narrowed.
func DecodeOptional[T any](root any, path Path) (T, bool) {
	out, err := Decode[T](root, path)
	if err != nil {
		var zero T

		return zero, false
	}

	return out, true
}

// Lookup returns the raw value at path inside root.
// It fails for the same reasons as DecodeOptional, including an explicit null.
func Lookup(root map[string]any, path Path) (any, bool) {
	return DecodeOptional[any](root, path)
}

// Get parses path and decodes it from root.
func Get[T any](root any, path string) (T, error) {
	return Decode[T](root, Parse(path))
}
