package assertion

import (
	"fmt"
	"reflect"

	"digital.vasic.expect/pkg/compare"
)

// ToExist checks that the value is not nil. Typed nil pointers, maps,
// slices, channels and functions count as nil.
func (a *Assertion[T, W]) ToExist() W {
	return a.Execute(
		!isNil(a.raw),
		FailWith("Expected the value to exist"),
		FailWith("Expected the value NOT to exist"),
	)
}

// ToBeNil checks that the value is nil.
func (a *Assertion[T, W]) ToBeNil() W {
	return a.Execute(
		isNil(a.raw),
		FailWith(fmt.Sprintf(
			"Expected <%s> to be nil", Prettify(a.raw),
		)),
		FailWith("Expected the value NOT to be nil"),
	)
}

// ToBeTruthy checks that the value is neither nil nor the zero value
// of its type.
func (a *Assertion[T, W]) ToBeTruthy() W {
	return a.Execute(
		isTruthy(a.raw),
		FailWith(fmt.Sprintf(
			"Expected <%s> to be truthy", Prettify(a.raw),
		)),
		FailWith(fmt.Sprintf(
			"Expected <%s> NOT to be truthy", Prettify(a.raw),
		)),
	)
}

// ToBeFalsy checks that the value is nil or the zero value of its
// type.
func (a *Assertion[T, W]) ToBeFalsy() W {
	return a.Execute(
		!isTruthy(a.raw),
		FailWith(fmt.Sprintf(
			"Expected <%s> to be falsy", Prettify(a.raw),
		)),
		FailWith(fmt.Sprintf(
			"Expected <%s> NOT to be falsy", Prettify(a.raw),
		)),
	)
}

// ToBeEqual checks that the value is deep equal to expected. Types are
// part of equality: an int is never equal to a float64.
func (a *Assertion[T, W]) ToBeEqual(expected any) W {
	return a.Execute(
		compare.DeepEqual(a.raw, expected),
		FailWithExpected("Expected both values to be deep equal", expected),
		FailWithExpected("Expected both values to NOT be deep equal", expected),
	)
}

// ToBeSimilar checks that the value is shallow equal to expected.
func (a *Assertion[T, W]) ToBeSimilar(expected any) W {
	return a.Execute(
		compare.ShallowEqual(a.raw, expected),
		FailWithExpected("Expected both values to be similar", expected),
		FailWithExpected("Expected both values NOT to be similar", expected),
	)
}

// ToBeSame checks that the value is the very same value as expected.
func (a *Assertion[T, W]) ToBeSame(expected any) W {
	return a.Execute(
		compare.Same(a.raw, expected),
		FailWithExpected("Expected both values to be the same", expected),
		FailWithExpected("Expected both values NOT to be the same", expected),
	)
}

// ToSatisfy checks the value against a caller supplied predicate.
// Panics raised by the predicate propagate unchanged.
func (a *Assertion[T, W]) ToSatisfy(predicate func(T) bool) W {
	return a.Execute(
		predicate(a.actual),
		FailWith(fmt.Sprintf(
			"Expected <%s> to satisfy the predicate", Prettify(a.raw),
		)),
		FailWith(fmt.Sprintf(
			"Expected <%s> NOT to satisfy the predicate", Prettify(a.raw),
		)),
	)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func isTruthy(v any) bool {
	if isNil(v) {
		return false
	}
	return !reflect.ValueOf(v).IsZero()
}
