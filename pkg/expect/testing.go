package expect

import (
	"errors"
	"reflect"
	"testing"

	"digital.vasic.expect/pkg/assertion"
	"digital.vasic.expect/pkg/compare"
)

// For returns an Expector that reports failures with t.Fatal. Options
// are applied after the handler, so WithFailHandler overrides it.
func For(t testing.TB, opts ...Option) *Expector {
	h := func(err error) {
		t.Helper()
		t.Fatal(describe(err))
	}
	return New(append([]Option{WithFailHandler(h)}, opts...)...)
}

// ForNonFatal is For with t.Error, so a failed check marks the test
// failed and the chain goes on.
func ForNonFatal(t testing.TB, opts ...Option) *Expector {
	h := func(err error) {
		t.Helper()
		t.Error(describe(err))
	}
	return New(append([]Option{WithFailHandler(h)}, opts...)...)
}

// describe renders err for a test log. Failures comparing two
// composite values of the same type get a (-actual +expected) diff.
func describe(err error) string {
	var ae *assertion.AssertionError
	if !errors.As(err, &ae) {
		return err.Error()
	}
	s := ae.Detail()
	if ae.HasExpected && diffable(ae.Actual, ae.Expected) {
		if d := compare.Diff(ae.Actual, ae.Expected); d != "" {
			s += "\n  diff (-actual +expected):\n" + d
		}
	}
	return s
}

func diffable(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == nil || ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice,
		reflect.Array, reflect.Pointer:
		return true
	}
	return false
}
