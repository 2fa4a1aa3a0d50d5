// Package assertion provides the wrapper base shared by every fluent
// assertion: the captured value, the single-use negation flag, the
// Execute contract each check reports through, and type narrowing.
//
// A concrete wrapper embeds a pointer to Assertion parameterized by
// its own pointer type, so the checks inherited from the base return
// the concrete wrapper and chains keep their static type:
//
//	type NumberAssertion struct {
//		*Assertion[float64, *NumberAssertion]
//	}
//
// Checks never mutate a wrapper. Not returns a negated copy and every
// check returns a fresh, non-negated copy.
package assertion

// Wrapper is the dynamic view of any assertion wrapper. It is what the
// dispatcher returns when the static shape of a value is unknown.
// Wrappers outside this package satisfy it by embedding *Assertion.
type Wrapper interface {
	// Actual returns the captured value exactly as it was given.
	Actual() any

	// IsNegated reports whether the next check is inverted.
	IsNegated() bool

	// TypeName names the wrapper's value shape (e.g. "number").
	TypeName() string

	// Handler returns the FailHandler failures are reported to.
	Handler() FailHandler

	// WithHandler returns a copy reporting failures to h.
	WithHandler(h FailHandler) Wrapper

	withActual(raw any) Wrapper
}

// Assertion is the wrapper base. T is the type checks operate on and W
// is the concrete wrapper type built around it.
type Assertion[T any, W any] struct {
	raw     any
	actual  T
	name    string
	negated bool
	handler FailHandler
	wrap    func(*Assertion[T, W]) W
}

// New builds a wrapper named name around actual. wrap converts the
// base into the concrete wrapper and is reused for every copy.
func New[T any, W any](
	name string,
	actual T,
	wrap func(*Assertion[T, W]) W,
) W {
	return NewConverted(name, any(actual), actual, wrap)
}

// NewConverted is New for wrappers whose check type differs from the
// captured value, such as an int checked as a float64. raw is what
// Actual and the equality checks see.
func NewConverted[T any, W any](
	name string,
	raw any,
	actual T,
	wrap func(*Assertion[T, W]) W,
) W {
	return wrap(&Assertion[T, W]{
		raw:     raw,
		actual:  actual,
		name:    name,
		handler: PanicHandler,
		wrap:    wrap,
	})
}

func (a *Assertion[T, W]) copyWith(negated bool, h FailHandler) W {
	c := *a
	c.negated = negated
	c.handler = h
	return a.wrap(&c)
}

// Value returns the value checks operate on.
func (a *Assertion[T, W]) Value() T {
	return a.actual
}

// Actual returns the captured value exactly as it was given.
func (a *Assertion[T, W]) Actual() any {
	return a.raw
}

// IsNegated reports whether the next check is inverted.
func (a *Assertion[T, W]) IsNegated() bool {
	return a.negated
}

// TypeName names the wrapper's value shape.
func (a *Assertion[T, W]) TypeName() string {
	return a.name
}

// Handler returns the FailHandler failures are reported to.
func (a *Assertion[T, W]) Handler() FailHandler {
	if a.handler == nil {
		return PanicHandler
	}
	return a.handler
}

// WithHandler returns a copy reporting failures to h. A nil h
// restores PanicHandler.
func (a *Assertion[T, W]) WithHandler(h FailHandler) Wrapper {
	if h == nil {
		h = PanicHandler
	}
	return any(a.copyWith(a.negated, h)).(Wrapper)
}

func (a *Assertion[T, W]) withActual(raw any) Wrapper {
	c := *a
	c.raw = raw
	return any(a.wrap(&c)).(Wrapper)
}

// Not returns a copy whose next check is inverted. Negation does not
// accumulate: Not().Not() still inverts exactly one check.
func (a *Assertion[T, W]) Not() W {
	return a.copyWith(true, a.handler)
}

// Verdict returns the error a check with the given raw verdict should
// raise, or nil when the check (inverted when negated) holds. It never
// reports; asynchronous checks use it to settle their futures.
func (a *Assertion[T, W]) Verdict(
	assertWhen bool,
	onFail, onFailInverted Failure,
) error {
	switch {
	case !a.negated && !assertWhen:
		return onFail.toError(a.raw)
	case a.negated && assertWhen:
		return onFailInverted.toError(a.raw)
	}
	return nil
}

// Execute is the contract every check reports through. assertWhen is
// the check's non-negated verdict; onFail is raised when it is false
// and onFailInverted when it is true on a negated wrapper. The
// returned wrapper is never negated.
func (a *Assertion[T, W]) Execute(
	assertWhen bool,
	onFail, onFailInverted Failure,
) W {
	if err := a.Verdict(assertWhen, onFail, onFailInverted); err != nil {
		a.Handler()(err)
	}
	return a.copyWith(false, a.handler)
}

// Fail reports err and returns a non-negated copy.
func (a *Assertion[T, W]) Fail(err error) W {
	a.Handler()(err)
	return a.copyWith(false, a.handler)
}
