package assertion

import (
	"fmt"
	"time"
)

// Built-in type factories. The dispatcher tries the first nine in
// ladder order; all of them are available to AsType and Extracting.
var (
	BooleanFactory = TypeFactory[bool, *BooleanAssertion]{
		Name:  "boolean",
		Guard: toBool,
		Build: NewBooleanAssertion,
	}

	NumberFactory = TypeFactory[float64, *NumberAssertion]{
		Name:  "number",
		Guard: toNumber,
		Build: NewNumberAssertion,
	}

	StringFactory = TypeFactory[string, *StringAssertion]{
		Name:  "string",
		Guard: toString,
		Build: NewStringAssertion,
	}

	DateFactory = TypeFactory[time.Time, *DateAssertion]{
		Name:  "date",
		Guard: toTime,
		Build: NewDateAssertion,
	}

	ArrayFactory = TypeFactory[[]any, *ArrayAssertion]{
		Name:  "array",
		Guard: toSlice,
		Build: NewArrayAssertion,
	}

	PromiseFactory = TypeFactory[Awaitable, *PromiseAssertion]{
		Name:  "promise",
		Guard: toAwaitable,
		Build: NewPromiseAssertion,
	}

	FunctionFactory = TypeFactory[any, *FunctionAssertion]{
		Name:  "function",
		Guard: toFunc,
		Build: NewFunctionAssertion,
	}

	ErrorFactory = TypeFactory[error, *ErrorAssertion]{
		Name:  "error",
		Guard: toError,
		Build: NewErrorAssertion,
	}

	ObjectFactory = TypeFactory[map[string]any, *ObjectAssertion]{
		Name:  "object",
		Guard: toObject,
		Build: NewObjectAssertion,
	}

	AnyFactory = TypeFactory[any, *AnyAssertion]{
		Name:  "any",
		Guard: toAny,
		Build: NewAnyAssertion,
	}
)

// ArrayOf returns a factory for slices and arrays whose every element
// passes inner's guard.
func ArrayOf[T any, W Wrapper](inner TypeFactory[T, W]) TypeFactory[[]any, *ArrayAssertion] {
	return TypeFactory[[]any, *ArrayAssertion]{
		Name: fmt.Sprintf("array of %s", inner.Name),
		Guard: func(v any) ([]any, bool) {
			items, ok := toSlice(v)
			if !ok {
				return nil, false
			}
			for _, item := range items {
				if !inner.Predicate(item) {
					return nil, false
				}
			}
			return items, true
		},
		Build: NewArrayAssertion,
	}
}
