package keypath

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// narrow views value as T. A plain type assertion is tried first; numbers are
// then converted across Go numeric types when no precision or sign is lost.
// A conversion that would round, truncate or overflow reports false.
func narrow[T any](value any) (T, bool) {
	if out, ok := value.(T); ok {
		return out, true
	}

	var zero T

	target := reflect.TypeFor[T]()
	if !isNumericKind(target.Kind()) {
		return zero, false
	}

	num, ok := toNumber(value)
	if !ok {
		return zero, false
	}

	out := reflect.New(target).Elem()
	if !num.assign(out) {
		return zero, false
	}

	result, ok := out.Interface().(T)

	return result, ok
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// number holds a decoded numeric value in the widest Go type of its family.
type number struct {
	family reflect.Kind // reflect.Int64, reflect.Uint64 or reflect.Float64
	i      int64
	u      uint64
	f      float64

	// notWhole marks a decimal literal that is not an integer even if f,
	// its float64 rounding, is integral.
	notWhole bool
}

func toNumber(value any) (number, bool) {
	if n, ok := value.(json.Number); ok {
		return parseJSONNumber(n)
	}

	if value == nil {
		return number{}, false
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{family: reflect.Int64, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return number{family: reflect.Uint64, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{family: reflect.Float64, f: rv.Float()}, true
	default:
		return number{}, false
	}
}

func parseJSONNumber(n json.Number) (number, bool) {
	if i, err := n.Int64(); err == nil {
		return number{family: reflect.Int64, i: i}, true
	}

	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return number{family: reflect.Uint64, u: u}, true
	}

	f, err := n.Float64()
	if err != nil {
		return number{}, false
	}

	whole, ok := wholeNumber(n.String(), f)
	switch {
	case !ok:
		return number{family: reflect.Float64, f: f, notWhole: true}, true
	case whole.IsInt64():
		return number{family: reflect.Int64, i: whole.Int64()}, true
	case whole.IsUint64():
		return number{family: reflect.Uint64, u: whole.Uint64()}, true
	default:
		return number{family: reflect.Float64, f: f}, true
	}
}

// wholeNumber returns the integer a decimal literal denotes exactly, if it is one.
// f is the literal's float64 rounding; it bounds the exponent big.Rat has to expand.
func wholeNumber(text string, f float64) (*big.Int, bool) {
	if !isIntegral(f) || math.Abs(f) > twoTo64 {
		return nil, false
	}

	if f == 0 {
		return new(big.Int), isZeroLiteral(text)
	}

	exact, ok := new(big.Rat).SetString(text)
	if !ok || !exact.IsInt() {
		return nil, false
	}

	return exact.Num(), true
}

// isZeroLiteral reports whether the mantissa of text has no non-zero digit.
// Literals like 1e-400 round to zero without being zero.
func isZeroLiteral(text string) bool {
	mantissa, _, _ := strings.Cut(strings.ToLower(text), "e")

	return strings.Trim(mantissa, "+-0.") == ""
}

// assign stores n into out, reporting false when out's type cannot hold it exactly.
func (n number) assign(out reflect.Value) bool {
	switch out.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := n.int64()
		if !ok || out.OverflowInt(i) {
			return false
		}

		out.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, ok := n.uint64()
		if !ok || out.OverflowUint(u) {
			return false
		}

		out.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, ok := n.float64()
		if !ok || out.OverflowFloat(f) {
			return false
		}

		if out.Kind() == reflect.Float32 && !math.IsNaN(f) && float64(float32(f)) != f {
			return false
		}

		out.SetFloat(f)
	default:
		return false
	}

	return true
}

// 2^63 and 2^64 as floats; the upper bounds are exclusive.
const (
	twoTo63 = float64(1 << 63)
	twoTo64 = twoTo63 * 2
)

func (n number) int64() (int64, bool) {
	switch n.family {
	case reflect.Int64:
		return n.i, true
	case reflect.Uint64:
		if n.u > math.MaxInt64 {
			return 0, false
		}

		return int64(n.u), true
	default:
		if n.notWhole || !isIntegral(n.f) || n.f < -twoTo63 || n.f >= twoTo63 {
			return 0, false
		}

		return int64(n.f), true
	}
}

func (n number) uint64() (uint64, bool) {
	switch n.family {
	case reflect.Int64:
		if n.i < 0 {
			return 0, false
		}

		return uint64(n.i), true
	case reflect.Uint64:
		return n.u, true
	default:
		if n.notWhole || !isIntegral(n.f) || n.f < 0 || n.f >= twoTo64 {
			return 0, false
		}

		return uint64(n.f), true
	}
}

// float64 reports false for integers beyond 2^53 that float64 would round.
func (n number) float64() (float64, bool) {
	switch n.family {
	case reflect.Int64:
		f := float64(n.i)

		return f, f < twoTo63 && int64(f) == n.i
	case reflect.Uint64:
		f := float64(n.u)

		return f, f < twoTo64 && uint64(f) == n.u
	default:
		return n.f, true
	}
}

func isIntegral(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}
