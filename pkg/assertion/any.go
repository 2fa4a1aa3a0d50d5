package assertion

// AnyAssertion is the generic fallback wrapper. It carries only the
// checks every wrapper shares.
type AnyAssertion struct {
	*Assertion[any, *AnyAssertion]
}

// NewAnyAssertion wraps v in the generic fallback wrapper.
func NewAnyAssertion(v any) *AnyAssertion {
	return New("any", v, func(a *Assertion[any, *AnyAssertion]) *AnyAssertion {
		return &AnyAssertion{a}
	})
}
