// Package uuidassert adds checks for github.com/google/uuid values.
//
// A uuid.UUID is a [16]byte, which the built-in rules would treat as
// an array, so the plugin registers with Top priority.
package uuidassert

import (
	"fmt"

	"github.com/google/uuid"

	"digital.vasic.expect/pkg/assertion"
	"digital.vasic.expect/pkg/plugin"
)

// UUIDAssertion checks uuid.UUID values.
type UUIDAssertion struct {
	*assertion.Assertion[uuid.UUID, *UUIDAssertion]
}

// NewUUIDAssertion wraps u.
func NewUUIDAssertion(u uuid.UUID) *UUIDAssertion {
	return assertion.New("uuid", u, func(a *assertion.Assertion[uuid.UUID, *UUIDAssertion]) *UUIDAssertion {
		return &UUIDAssertion{a}
	})
}

// Factory narrows uuid.UUID and non-nil *uuid.UUID values.
var Factory = assertion.TypeFactory[uuid.UUID, *UUIDAssertion]{
	Name:  "uuid",
	Guard: toUUID,
	Build: NewUUIDAssertion,
}

func toUUID(v any) (uuid.UUID, bool) {
	switch u := v.(type) {
	case uuid.UUID:
		return u, true
	case *uuid.UUID:
		if u != nil {
			return *u, true
		}
	}
	return uuid.Nil, false
}

func (u *UUIDAssertion) check(ok bool, what string, expected ...any) *UUIDAssertion {
	v := u.Value().String()
	onFail := assertion.FailWith(fmt.Sprintf("Expected <%s> to %s", v, what))
	inverted := assertion.FailWith(fmt.Sprintf("Expected <%s> NOT to %s", v, what))
	if len(expected) > 0 {
		onFail = assertion.FailWithExpected(onFail.Message, expected[0])
		inverted = assertion.FailWithExpected(inverted.Message, expected[0])
	}
	return u.Execute(ok, onFail, inverted)
}

// ToBeNilUUID checks that the value is the all-zero UUID.
func (u *UUIDAssertion) ToBeNilUUID() *UUIDAssertion {
	return u.check(u.Value() == uuid.Nil, "be the nil UUID")
}

// ToHaveVersion checks the UUID version.
func (u *UUIDAssertion) ToHaveVersion(v uuid.Version) *UUIDAssertion {
	return u.check(
		u.Value().Version() == v,
		fmt.Sprintf("have version %d", int(v)),
		v,
	)
}

// ToHaveVariant checks the UUID variant.
func (u *UUIDAssertion) ToHaveVariant(v uuid.Variant) *UUIDAssertion {
	return u.check(
		u.Value().Variant() == v,
		fmt.Sprintf("have variant %s", v),
		v,
	)
}

// ToEqualString checks the value against the textual form s. An
// unparsable s raises an UnsupportedOperationError.
func (u *UUIDAssertion) ToEqualString(s string) *UUIDAssertion {
	expected, err := uuid.Parse(s)
	if err != nil {
		return u.Fail(&assertion.UnsupportedOperationError{
			Message: fmt.Sprintf("ToEqualString(..) needs a valid UUID: %v", err),
		})
	}
	return u.check(u.Value() == expected, "equal "+expected.String(), expected)
}

// Bundle registers the UUID plugin.
type Bundle struct{}

// Name returns "uuid".
func (Bundle) Name() string { return "uuid" }

// Version returns the bundle version.
func (Bundle) Version() string { return "1.0.0" }

// Plugins returns the Top-priority UUID plugin.
func (Bundle) Plugins() []plugin.Plugin {
	return []plugin.Plugin{plugin.FromFactory("uuid", plugin.Top, Factory)}
}
