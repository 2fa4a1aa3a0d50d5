// Package compare provides the equality primitives used by the
// assertion checks: deep (structural) equality, shallow (one level)
// equality and identity.
package compare

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// exportAll lets go-cmp descend into unexported struct fields.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// DeepEqual reports whether a and b are structurally equal. Struct
// fields are compared whether exported or not, types with an
// Equal method (such as time.Time) are compared through it, and NaN
// is never equal to itself.
func DeepEqual(a, b any) bool {
	return cmp.Equal(a, b, exportAll)
}

// Diff returns a human-readable report of the differences between
// a and b. It returns an empty string when they are deep equal.
func Diff(a, b any) string {
	return cmp.Diff(a, b, exportAll)
}

// Same reports whether a and b are the identical value: reference
// kinds (pointers, maps, slices, channels and functions) must point
// at the same memory, everything else must be == equal. Values that
// are not comparable are never the same.
func Same(a, b any) bool {
	return sameValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

// ShallowEqual compares a and b one level deep. Slices and arrays
// must hold pairwise Same elements, maps must hold the same keys with
// pairwise Same values, and structs (or non-nil pointers to structs)
// must hold pairwise Same fields. Other values fall back to Same.
func ShallowEqual(a, b any) bool {
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)

	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Slice, reflect.Array:
		if va.Len() != vb.Len() {
			return false
		}
		for i := 0; i < va.Len(); i++ {
			if !sameValue(va.Index(i), vb.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			other := vb.MapIndex(iter.Key())
			if !other.IsValid() || !sameValue(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Pointer:
		if va.IsNil() || vb.IsNil() || va.Elem().Kind() != reflect.Struct {
			return sameValue(va, vb)
		}
		return sameFields(va.Elem(), vb.Elem())
	case reflect.Struct:
		return sameFields(va, vb)
	default:
		return sameValue(va, vb)
	}
}

func sameFields(a, b reflect.Value) bool {
	for i := 0; i < a.NumField(); i++ {
		if !sameValue(a.Field(i), b.Field(i)) {
			return false
		}
	}
	return true
}

func sameValue(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return sameValue(a.Elem(), b.Elem())
	case reflect.Pointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	}

	if !a.Comparable() || !b.Comparable() {
		return false
	}
	return a.Equal(b)
}
