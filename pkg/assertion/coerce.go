package assertion

import (
	"fmt"
	"reflect"
	"time"
)

// Type guards used by the factory catalog. Each reports whether a
// value has a given shape and, if so, returns it converted to the
// type the matching wrapper checks. The scalar guards refuse values
// implementing error, so an error with a scalar underlying type
// (syscall.Errno, a named int or string) is classified as an error.

func isErrorValue(v any) bool {
	_, ok := v.(error)
	return ok
}

func toBool(v any) (bool, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Bool || isErrorValue(v) {
		return false, false
	}
	return rv.Bool(), true
}

func toNumber(v any) (float64, bool) {
	if isErrorValue(v) {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func toString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String || isErrorValue(v) {
		return "", false
	}
	return rv.String(), true
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	}
	return time.Time{}, false
}

func toSlice(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func toFunc(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, false
	}
	return v, true
}

func toError(v any) (error, bool) {
	err, ok := v.(error)
	if !ok || isNil(err) {
		return nil, false
	}
	return err, true
}

// toObject views maps and structs as a key/value record. Struct views
// hold exported fields only; map keys are rendered with fmt.Sprint.
func toObject(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}
		return out, true
	case reflect.Struct:
		rt := rv.Type()
		out := make(map[string]any, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			if !rt.Field(i).IsExported() {
				continue
			}
			out[rt.Field(i).Name] = rv.Field(i).Interface()
		}
		return out, true
	}
	return nil, false
}

func toAny(v any) (any, bool) {
	return v, true
}
