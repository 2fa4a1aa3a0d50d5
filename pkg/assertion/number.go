package assertion

import (
	"fmt"
	"math"
)

// NumberAssertion checks numeric values. Integers and unsigned
// integers are checked as float64.
type NumberAssertion struct {
	*Assertion[float64, *NumberAssertion]
}

// Range bounds a ToBeBetween check. Min and Max are excluded unless
// the matching inclusive flag is set.
type Range struct {
	Min, Max                   float64
	MinInclusive, MaxInclusive bool
}

// Closed returns the range [min, max].
func Closed(min, max float64) Range {
	return Range{Min: min, Max: max, MinInclusive: true, MaxInclusive: true}
}

// Open returns the range (min, max).
func Open(min, max float64) Range {
	return Range{Min: min, Max: max}
}

func (r Range) contains(n float64) bool {
	above := n > r.Min || (r.MinInclusive && n == r.Min)
	below := n < r.Max || (r.MaxInclusive && n == r.Max)
	return above && below
}

func (r Range) String() string {
	lo, hi := "(", ")"
	if r.MinInclusive {
		lo = "["
	}
	if r.MaxInclusive {
		hi = "]"
	}
	return fmt.Sprintf("%s%v, %v%s", lo, r.Min, r.Max, hi)
}

// NewNumberAssertion wraps n.
func NewNumberAssertion(n float64) *NumberAssertion {
	return New("number", n, func(a *Assertion[float64, *NumberAssertion]) *NumberAssertion {
		return &NumberAssertion{a}
	})
}

func (n *NumberAssertion) check(
	ok bool, what string, expected ...any,
) *NumberAssertion {
	v := Prettify(n.Actual())
	onFail := FailWith(fmt.Sprintf("Expected <%s> to be %s", v, what))
	inverted := FailWith(fmt.Sprintf("Expected <%s> NOT to be %s", v, what))
	if len(expected) > 0 {
		onFail = FailWithExpected(onFail.Message, expected[0])
		inverted = FailWithExpected(inverted.Message, expected[0])
	}
	return n.Execute(ok, onFail, inverted)
}

// ToBeZero checks that the value is zero.
func (n *NumberAssertion) ToBeZero() *NumberAssertion {
	return n.check(n.Value() == 0, "zero")
}

// ToBePositive checks that the value is greater than zero.
func (n *NumberAssertion) ToBePositive() *NumberAssertion {
	return n.check(n.Value() > 0, "positive")
}

// ToBeNegative checks that the value is less than zero.
func (n *NumberAssertion) ToBeNegative() *NumberAssertion {
	return n.check(n.Value() < 0, "negative")
}

// ToBeFinite checks that the value is neither infinite nor NaN.
func (n *NumberAssertion) ToBeFinite() *NumberAssertion {
	v := n.Value()
	return n.check(!math.IsInf(v, 0) && !math.IsNaN(v), "finite")
}

// ToBeNaN checks that the value is NaN.
func (n *NumberAssertion) ToBeNaN() *NumberAssertion {
	return n.check(math.IsNaN(n.Value()), "NaN")
}

// ToBeInteger checks that the value has no fractional part.
func (n *NumberAssertion) ToBeInteger() *NumberAssertion {
	v := n.Value()
	return n.check(!math.IsInf(v, 0) && v == math.Trunc(v), "an integer")
}

// ToBeEven checks that the value is an even integer.
func (n *NumberAssertion) ToBeEven() *NumberAssertion {
	return n.check(math.Mod(n.Value(), 2) == 0, "even")
}

// ToBeOdd checks that the value is an odd integer.
func (n *NumberAssertion) ToBeOdd() *NumberAssertion {
	return n.check(math.Abs(math.Mod(n.Value(), 2)) == 1, "odd")
}

// ToBeGreaterThan checks that the value is greater than x.
func (n *NumberAssertion) ToBeGreaterThan(x float64) *NumberAssertion {
	return n.check(n.Value() > x, fmt.Sprintf("greater than %v", x), x)
}

// ToBeGreaterThanOrEqual checks that the value is at least x.
func (n *NumberAssertion) ToBeGreaterThanOrEqual(x float64) *NumberAssertion {
	return n.check(n.Value() >= x, fmt.Sprintf("greater than or equal to %v", x), x)
}

// ToBeLessThan checks that the value is less than x.
func (n *NumberAssertion) ToBeLessThan(x float64) *NumberAssertion {
	return n.check(n.Value() < x, fmt.Sprintf("less than %v", x), x)
}

// ToBeLessThanOrEqual checks that the value is at most x.
func (n *NumberAssertion) ToBeLessThanOrEqual(x float64) *NumberAssertion {
	return n.check(n.Value() <= x, fmt.Sprintf("less than or equal to %v", x), x)
}

// ToBeBetween checks that the value lies within r.
func (n *NumberAssertion) ToBeBetween(r Range) *NumberAssertion {
	return n.check(r.contains(n.Value()), "between "+r.String(), r)
}

// ToBeCloseTo checks that the value is within offset of expected.
func (n *NumberAssertion) ToBeCloseTo(expected, offset float64) *NumberAssertion {
	return n.check(
		math.Abs(n.Value()-expected) <= offset,
		fmt.Sprintf("close to %v with an offset of %v", expected, offset),
		expected,
	)
}
