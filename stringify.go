package ilfmt

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	durationType = reflect.TypeOf(time.Duration(0))
)

// durationUnits is ordered coarsest first. The terminal entry catches values
// not strictly greater than any unit.
var durationUnits = []struct {
	unit   time.Duration
	suffix string
	last   bool
}{
	{time.Hour, "hrs", false},
	{time.Minute, "min", false},
	{time.Second, "sec", false},
	{time.Millisecond, "ms", false},
	{time.Nanosecond, "ns", true},
}

func durationString(d time.Duration) string {
	for _, u := range durationUnits {
		if u.last || d > u.unit {
			return strconv.FormatFloat(float64(d)/float64(u.unit), 'f', 2, 64) + u.suffix
		}
	}
	return "" // unreachable: the terminal entry always matches
}

// HasCustomString reports whether v carries its own string conversion, i.e.
// implements [fmt.Stringer] or error.
func HasCustomString(v any) bool {
	switch v.(type) {
	case fmt.Stringer, error:
		return true
	}
	return false
}

// HasStdString reports whether v is one of the predeclared numeric or bool
// types, convertible through strconv alone.
func HasStdString(v any) bool {
	switch v.(type) {
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return true
	}
	return false
}

// IsStringConvertible reports whether [AsString] can produce a string for v.
// The probe is type-based and never invokes methods on v.
func IsStringConvertible(v any) bool {
	return v != nil && stringConvertibleType(reflect.TypeOf(v))
}

func stringConvertibleType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t == durationType || t.Implements(stringerType) || t.Implements(errorType) {
		return true
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return stringConvertibleType(t.Elem())
	}
	return false
}

// AsString converts v to its string form. The conversions are tried in a
// fixed order and the first match wins: predeclared numerics, the value's own
// String or Error method, narrow string data, wide string data, durations,
// pointers acting as optionals, slices and arrays, then defined types of
// numeric or string kind. ok is false when no conversion applies.
//
// Durations are probed ahead of the Stringer check: time.Duration implements
// fmt.Stringer, and its own format would otherwise shadow the unit table.
// Wide string data ([]rune, []uint16) is narrowed by truncating each code
// unit to a byte; code points above U+00FF are lossy.
func AsString(v any) (s string, ok bool) {
	if v == nil {
		return "", false
	}
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case uintptr:
		return strconv.FormatUint(uint64(x), 10), true
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case time.Duration:
		return durationString(x), true
	case string:
		return x, true
	case []byte:
		return string(x), true
	case []rune:
		b := make([]byte, len(x))
		for i, r := range x {
			b[i] = byte(r)
		}
		return string(b), true
	case []uint16:
		b := make([]byte, len(x))
		for i, u := range x {
			b[i] = byte(u)
		}
		return string(b), true
	}
	rv := reflect.ValueOf(v)
	// A nil pointer can satisfy the Stringer or error probe through its
	// pointee's value-receiver method; calling it would dereference nil.
	// Nils take the optional rung instead.
	nilPtr := rv.Kind() == reflect.Pointer && rv.IsNil()
	if !nilPtr {
		if str, ok := v.(fmt.Stringer); ok {
			return str.String(), true
		}
		if err, ok := v.(error); ok {
			return err.Error(), true
		}
	}
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			if stringConvertibleType(rv.Type()) {
				return "nullopt", true
			}
			return "", false
		}
		if !stringConvertibleType(rv.Type().Elem()) {
			return "", false
		}
		return AsString(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if !stringConvertibleType(rv.Type().Elem()) {
			return "", false
		}
		var b strings.Builder
		b.WriteByte('{')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			elem, _ := AsString(rv.Index(i).Interface())
			b.WriteString(elem)
		}
		b.WriteByte('}')
		return b.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	case reflect.String:
		return rv.String(), true
	}
	return "", false
}
