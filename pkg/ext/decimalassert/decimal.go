// Package decimalassert adds checks for github.com/shopspring/decimal
// values. A decimal.Decimal is a struct, which the built-in rules
// would treat as an object, so the plugin registers with Top
// priority.
package decimalassert

import (
	"fmt"

	"github.com/shopspring/decimal"

	"digital.vasic.expect/pkg/assertion"
	"digital.vasic.expect/pkg/plugin"
)

// DecimalAssertion checks decimal.Decimal values. Comparisons are
// numeric, so 1.0 equals 1.00.
type DecimalAssertion struct {
	*assertion.Assertion[decimal.Decimal, *DecimalAssertion]
}

// NewDecimalAssertion wraps d.
func NewDecimalAssertion(d decimal.Decimal) *DecimalAssertion {
	return assertion.New("decimal", d, func(a *assertion.Assertion[decimal.Decimal, *DecimalAssertion]) *DecimalAssertion {
		return &DecimalAssertion{a}
	})
}

// Factory narrows decimal.Decimal and non-nil *decimal.Decimal
// values.
var Factory = assertion.TypeFactory[decimal.Decimal, *DecimalAssertion]{
	Name:  "decimal",
	Guard: toDecimal,
	Build: NewDecimalAssertion,
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch d := v.(type) {
	case decimal.Decimal:
		return d, true
	case *decimal.Decimal:
		if d != nil {
			return *d, true
		}
	}
	return decimal.Zero, false
}

// parse accepts a decimal, a numeric string, an int or a float64.
func parse(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case string:
		return decimal.NewFromString(x)
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case float64:
		return decimal.NewFromFloat(x), nil
	}
	return decimal.Zero, fmt.Errorf("cannot use %T as a decimal", v)
}

func (d *DecimalAssertion) check(ok bool, what string, expected ...any) *DecimalAssertion {
	v := d.Value().String()
	onFail := assertion.FailWith(fmt.Sprintf("Expected <%s> to be %s", v, what))
	inverted := assertion.FailWith(fmt.Sprintf("Expected <%s> NOT to be %s", v, what))
	if len(expected) > 0 {
		onFail = assertion.FailWithExpected(onFail.Message, expected[0])
		inverted = assertion.FailWithExpected(inverted.Message, expected[0])
	}
	return d.Execute(ok, onFail, inverted)
}

func (d *DecimalAssertion) compareTo(
	check string,
	x any,
	ok func(cmp int) bool,
	what string,
) *DecimalAssertion {
	expected, err := parse(x)
	if err != nil {
		return d.Fail(&assertion.UnsupportedOperationError{
			Message: fmt.Sprintf("%s(..): %v", check, err),
		})
	}
	return d.check(
		ok(d.Value().Cmp(expected)),
		what+" "+expected.String(),
		expected,
	)
}

// ToBeZero checks that the value is zero.
func (d *DecimalAssertion) ToBeZero() *DecimalAssertion {
	return d.check(d.Value().IsZero(), "zero")
}

// ToBePositive checks that the value is greater than zero.
func (d *DecimalAssertion) ToBePositive() *DecimalAssertion {
	return d.check(d.Value().IsPositive(), "positive")
}

// ToBeNegative checks that the value is less than zero.
func (d *DecimalAssertion) ToBeNegative() *DecimalAssertion {
	return d.check(d.Value().IsNegative(), "negative")
}

// ToBeGreaterThan checks that the value is greater than x. x may be a
// decimal, a numeric string, an int or a float64.
func (d *DecimalAssertion) ToBeGreaterThan(x any) *DecimalAssertion {
	return d.compareTo("ToBeGreaterThan", x, func(c int) bool { return c > 0 }, "greater than")
}

// ToBeLessThan checks that the value is less than x.
func (d *DecimalAssertion) ToBeLessThan(x any) *DecimalAssertion {
	return d.compareTo("ToBeLessThan", x, func(c int) bool { return c < 0 }, "less than")
}

// ToEqualDecimal checks numeric equality with x, ignoring scale.
func (d *DecimalAssertion) ToEqualDecimal(x any) *DecimalAssertion {
	return d.compareTo("ToEqualDecimal", x, func(c int) bool { return c == 0 }, "equal to")
}

// ToHaveExponent checks the exponent the value is stored with.
func (d *DecimalAssertion) ToHaveExponent(exp int32) *DecimalAssertion {
	return d.check(
		d.Value().Exponent() == exp,
		fmt.Sprintf("stored with exponent %d", exp),
		exp,
	)
}

// Bundle registers the decimal plugin.
type Bundle struct{}

// Name returns "decimal".
func (Bundle) Name() string { return "decimal" }

// Version returns the bundle version.
func (Bundle) Version() string { return "1.0.0" }

// Plugins returns the Top-priority decimal plugin.
func (Bundle) Plugins() []plugin.Plugin {
	return []plugin.Plugin{plugin.FromFactory("decimal", plugin.Top, Factory)}
}
