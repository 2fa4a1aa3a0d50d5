package assertion

import (
	"errors"
	"fmt"
	"reflect"

	"digital.vasic.expect/pkg/compare"
)

// FunctionAssertion checks function values. ToPanic and ToPanicWith
// are the only checks that call the subject, and the only place the
// engine captures a panic.
type FunctionAssertion struct {
	*Assertion[any, *FunctionAssertion]
}

// NewFunctionAssertion wraps fn, which must be a function value.
func NewFunctionAssertion(fn any) *FunctionAssertion {
	return New("function", fn, func(a *Assertion[any, *FunctionAssertion]) *FunctionAssertion {
		return &FunctionAssertion{a}
	})
}

// call invokes the subject and reports whether it panicked, and with
// what. ok is false when the subject cannot be called without
// arguments.
func (f *FunctionAssertion) call() (recovered any, panicked, ok bool) {
	rv := reflect.ValueOf(f.Value())
	if rv.Kind() != reflect.Func || rv.IsNil() || rv.Type().NumIn() != 0 {
		return nil, false, false
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				recovered = r
				panicked = true
			}
		}()
		rv.Call(nil)
	}()
	return recovered, panicked, true
}

func (f *FunctionAssertion) uncallable(check string) *FunctionAssertion {
	return f.Fail(&UnsupportedOperationError{
		Message: fmt.Sprintf(
			"%s(..) needs a function without parameters, got %T",
			check, f.Value(),
		),
	})
}

// ToPanic checks that calling the subject panics.
func (f *FunctionAssertion) ToPanic() *FunctionAssertion {
	recovered, panicked, ok := f.call()
	if !ok {
		return f.uncallable("ToPanic")
	}
	return f.Execute(
		panicked,
		FailWith("Expected the function to panic"),
		FailWith(fmt.Sprintf(
			"Expected the function NOT to panic, but it panicked with <%s>",
			Prettify(recovered),
		)),
	)
}

// ToPanicWith checks that calling the subject panics with a value
// deep equal to expected. Errors also match through errors.Is.
func (f *FunctionAssertion) ToPanicWith(expected any) *FunctionAssertion {
	recovered, panicked, ok := f.call()
	if !ok {
		return f.uncallable("ToPanicWith")
	}

	match := panicked && compare.DeepEqual(recovered, expected)
	if !match && panicked {
		err, isErr := recovered.(error)
		target, wantErr := expected.(error)
		match = isErr && wantErr && errors.Is(err, target)
	}

	onFail := fmt.Sprintf(
		"Expected the function to panic with <%s>, but it did not panic",
		Prettify(expected),
	)
	if panicked {
		onFail = fmt.Sprintf(
			"Expected the function to panic with <%s>, but it panicked with <%s>",
			Prettify(expected), Prettify(recovered),
		)
	}
	return f.Execute(
		match,
		FailWithExpected(onFail, expected),
		FailWithExpected(fmt.Sprintf(
			"Expected the function NOT to panic with <%s>",
			Prettify(expected),
		), expected),
	)
}

// ToHaveArity checks the number of declared parameters.
func (f *FunctionAssertion) ToHaveArity(n int) *FunctionAssertion {
	arity := -1
	if rv := reflect.ValueOf(f.Value()); rv.Kind() == reflect.Func {
		arity = rv.Type().NumIn()
	}
	return f.Execute(
		arity == n,
		FailWithExpected(fmt.Sprintf(
			"Expected the function to have %d parameters, but it has %d", n, arity,
		), n),
		FailWithExpected(fmt.Sprintf(
			"Expected the function NOT to have %d parameters", n,
		), n),
	)
}
