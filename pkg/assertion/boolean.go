package assertion

// BooleanAssertion checks boolean values.
type BooleanAssertion struct {
	*Assertion[bool, *BooleanAssertion]
}

// NewBooleanAssertion wraps b.
func NewBooleanAssertion(b bool) *BooleanAssertion {
	return New("boolean", b, func(a *Assertion[bool, *BooleanAssertion]) *BooleanAssertion {
		return &BooleanAssertion{a}
	})
}

// ToBeTrue checks that the value is true.
func (b *BooleanAssertion) ToBeTrue() *BooleanAssertion {
	return b.Execute(
		b.Value(),
		FailWith("Expected <false> to be true"),
		FailWith("Expected <true> NOT to be true"),
	)
}

// ToBeFalse checks that the value is false.
func (b *BooleanAssertion) ToBeFalse() *BooleanAssertion {
	return b.Execute(
		!b.Value(),
		FailWith("Expected <true> to be false"),
		FailWith("Expected <false> NOT to be false"),
	)
}
