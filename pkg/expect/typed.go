package expect

import "digital.vasic.expect/pkg/assertion"

// Typed entry points narrow a value to a built-in wrapper without
// going through the dispatcher. A value of the wrong shape raises an
// AssertionError naming the expected type.

func narrow[T any, W assertion.Wrapper](
	e *Expector,
	value any,
	f assertion.TypeFactory[T, W],
) W {
	e.metrics.RecordDispatch(f.Name)
	base := assertion.NewAnyAssertion(value).WithHandler(e.handlerFor(f.Name))
	return assertion.AsType(base, f)
}

// Bool narrows value to a boolean wrapper.
func (e *Expector) Bool(value any) *assertion.BooleanAssertion {
	return narrow(e, value, assertion.BooleanFactory)
}

// Number narrows value to a number wrapper.
func (e *Expector) Number(value any) *assertion.NumberAssertion {
	return narrow(e, value, assertion.NumberFactory)
}

// String narrows value to a string wrapper.
func (e *Expector) String(value any) *assertion.StringAssertion {
	return narrow(e, value, assertion.StringFactory)
}

// Date narrows value to a date wrapper. It accepts a time.Time or a
// non-nil *time.Time.
func (e *Expector) Date(value any) *assertion.DateAssertion {
	return narrow(e, value, assertion.DateFactory)
}

// Array narrows value to an array wrapper.
func (e *Expector) Array(value any) *assertion.ArrayAssertion {
	return narrow(e, value, assertion.ArrayFactory)
}

// Object narrows value to an object wrapper.
func (e *Expector) Object(value any) *assertion.ObjectAssertion {
	return narrow(e, value, assertion.ObjectFactory)
}

// Func narrows value to a function wrapper.
func (e *Expector) Func(value any) *assertion.FunctionAssertion {
	return narrow(e, value, assertion.FunctionFactory)
}

// Error narrows value to an error wrapper.
func (e *Expector) Error(value any) *assertion.ErrorAssertion {
	return narrow(e, value, assertion.ErrorFactory)
}

// Promise narrows value to a promise wrapper.
func (e *Expector) Promise(value any) *assertion.PromiseAssertion {
	return narrow(e, value, assertion.PromiseFactory)
}
