package keypath

import (
	"encoding/json"
	"reflect"
)

// Kind classifies a dynamic value.
type Kind int

// Kinds of dynamic values.
const (
	KindOther Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

// String returns the JSON-style name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of a dynamic value as produced by a JSON or YAML decoder.
// Typed maps with string keys and typed slices are classified by their shape,
// although only map[string]any is traversed by Decode.
func KindOf(value any) Kind {
	switch value.(type) {
	case nil:
		return KindNull
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	case json.Number:
		return KindNumber
	case string:
		return KindString
	case bool:
		return KindBool
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Pointer:
		if rv.IsNil() {
			return KindNull
		}
	default:
	}

	return KindOther
}
