package assertion

import "fmt"

// Factory is the type-erased form of a TypeFactory. The dispatcher's
// built-in ladder is an ordered list of factories.
type Factory interface {
	// TypeName names the value shape, for messages.
	TypeName() string

	// Predicate reports whether value has the factory's shape.
	Predicate(value any) bool

	// Wrap builds the wrapper for a value Predicate accepted.
	Wrap(value any) Wrapper
}

// TypeFactory pairs a runtime type guard with the constructor of the
// wrapper for values that pass it. Guard returns the value converted
// to T along with the verdict.
type TypeFactory[T any, W Wrapper] struct {
	Name  string
	Guard func(value any) (T, bool)
	Build func(value T) W
}

// TypeName returns the factory name.
func (f TypeFactory[T, W]) TypeName() string {
	return f.Name
}

// Predicate reports whether value passes the guard.
func (f TypeFactory[T, W]) Predicate(value any) bool {
	_, ok := f.Guard(value)
	return ok
}

// Wrap builds the wrapper for value. The wrapper's Actual is value
// itself, not its converted form.
func (f TypeFactory[T, W]) Wrap(value any) Wrapper {
	t, _ := f.Guard(value)
	return f.Build(t).withActual(value)
}

// Bounds is the actual payload of an out-of-bounds failure.
type Bounds struct {
	Index  int
	Length int
}

func (b Bounds) String() string {
	return fmt.Sprintf("index %d of %d", b.Index, b.Length)
}

// AsType narrows w into the wrapper f builds, after checking the
// captured value against f's guard. A failing guard raises an
// AssertionError naming f.Name. Narrowing a negated wrapper raises an
// UnsupportedOperationError whatever the guard says, since the
// opposite of a type is not a check.
//
// When the FailHandler returns instead of panicking, the result is
// built from the zero value of T so the chain stays usable.
func AsType[T any, W Wrapper](w Wrapper, f TypeFactory[T, W]) W {
	if w.IsNegated() {
		return unsupported(w.Handler(), f, "AsType")
	}
	return narrow(w.Handler(), w.Actual(), f)
}

// Extracting narrows the element at index of an array wrapper. The
// index is bounds-checked before the element is checked against f, so
// an out-of-range index always reports as out of bounds.
func Extracting[T any, W Wrapper](
	a *ArrayAssertion,
	index int,
	f TypeFactory[T, W],
) W {
	h := a.Handler()
	if a.IsNegated() {
		return unsupported(h, f, "Extracting")
	}

	items := a.Value()
	if index < 0 || index >= len(items) {
		h(&AssertionError{
			Message: fmt.Sprintf(
				"Out of bounds! Cannot extract index %d from an array of %d elements",
				index, len(items),
			),
			Actual: Bounds{Index: index, Length: len(items)},
		})
		return zeroOf(h, f)
	}

	return narrow(h, items[index], f)
}

func narrow[T any, W Wrapper](
	h FailHandler,
	value any,
	f TypeFactory[T, W],
) W {
	t, ok := f.Guard(value)
	if !ok {
		h(&AssertionError{
			Message: fmt.Sprintf(
				"Expected <%s> to be of type %q",
				Prettify(value), f.Name,
			),
			Actual:      value,
			Expected:    f.Name,
			HasExpected: true,
		})
		return zeroOf(h, f)
	}
	return f.Build(t).withActual(value).WithHandler(h).(W)
}

func unsupported[T any, W Wrapper](
	h FailHandler,
	f TypeFactory[T, W],
	op string,
) W {
	h(&UnsupportedOperationError{
		Message: fmt.Sprintf(
			"The Not() modifier is not allowed on %s(..)", op,
		),
	})
	return zeroOf(h, f)
}

func zeroOf[T any, W Wrapper](h FailHandler, f TypeFactory[T, W]) W {
	var zero T
	return f.Build(zero).WithHandler(h).(W)
}
