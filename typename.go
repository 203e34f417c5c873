package ilfmt

import (
	"reflect"
	"strconv"
	"strings"
)

// TypeNamePrefixes lists the prefixes stripped by [PrettifyTypeName], both at
// the start of a name and immediately after a '<' or '['. Embedding toolkits
// may append their own namespace prefixes; additions must keep
// [PrettifyTypeName] idempotent.
var TypeNamePrefixes = []string{"struct ", "class ", "enum ", "ilfmt."}

// StaticTypeName returns a short, human-friendly name for the type T.
func StaticTypeName[T any]() string {
	return typeName(reflect.TypeOf((*T)(nil)).Elem())
}

// DynamicTypeName returns the short name of v's dynamic type. A nil interface
// reports "nil".
func DynamicTypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	return typeName(t)
}

func typeName(t reflect.Type) string {
	if s := t.String(); s != "" {
		return PrettifyTypeName(s)
	}
	// No printable identity. The descriptor address is stable within one
	// build, which is all a diagnostic name needs.
	return "Type" + strconv.FormatUint(uint64(reflect.ValueOf(t).Pointer()), 16)
}

// PrettifyTypeName strips the prefixes in [TypeNamePrefixes] from a type name
// until no prefix applies anywhere. Applying it twice yields the same result
// as applying it once.
func PrettifyTypeName(name string) string {
	for {
		next := stripTypePrefixes(name)
		if next == name {
			return name
		}
		name = next
	}
}

func stripTypePrefixes(name string) string {
	for _, prefix := range TypeNamePrefixes {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			return rest
		}
		for i := 0; i+1 < len(name); i++ {
			if (name[i] == '<' || name[i] == '[') && strings.HasPrefix(name[i+1:], prefix) {
				name = name[:i+1] + name[i+1+len(prefix):]
			}
		}
	}
	return name
}
