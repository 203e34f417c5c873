package ilfmt

import (
	"fmt"
	"reflect"
	"strconv"
)

// fixParameter adapts v for use as an argument to the host formatter. Scalars
// and caller-owned string data pass through untouched; everything else is
// stringified into a ring slot, so a %s verb never meets a value without a
// stable textual form.
func fixParameter(r *ring, v any) any {
	if v == nil {
		return v
	}
	switch v.(type) {
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128,
		string, []byte:
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		// Defined numeric types are the enum case, except durations, which
		// carry an observable unit format of their own.
		if rv.Type() != durationType {
			return v
		}
	case reflect.String:
		return v
	}
	if s, ok := AsString(v); ok {
		return r.put(s)
	}
	return r.put("[" + DynamicTypeName(v) + "@0x" + strconv.FormatUint(uint64(addrOf(v)), 16) + "]")
}

// addrOf extracts an address for the diagnostic fallback. Reference kinds
// report their referent; everything else reports the boxed copy.
func addrOf(v any) uintptr {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Pointer, reflect.UnsafePointer:
		return rv.Pointer()
	}
	return reflect.ValueOf(&v).Pointer()
}

// Str renders a printf-style template after passing every argument through
// the parameter fixer. Verb syntax is whatever [fmt] accepts; the template is
// not reinterpreted. The returned string is owned by the caller.
func Str(format string, args ...any) string {
	r := newRing(DefaultRingCapacity)
	fixed := make([]any, len(args))
	for i, a := range args {
		fixed[i] = fixParameter(r, a)
	}
	return fmt.Sprintf(format, fixed...)
}
