// Package chanassert adds checks for channels. Channels match no
// built-in rule, so the plugin registers with Bottom priority and
// only sees values every built-in rule has passed on.
package chanassert

import (
	"fmt"
	"reflect"

	"digital.vasic.expect/pkg/assertion"
	"digital.vasic.expect/pkg/plugin"
)

// ChannelAssertion checks channels of any element type. Checks never
// send on or receive from the channel.
type ChannelAssertion struct {
	*assertion.Assertion[reflect.Value, *ChannelAssertion]
}

// NewChannelAssertion wraps the channel ch.
func NewChannelAssertion(ch reflect.Value) *ChannelAssertion {
	var raw any
	if ch.IsValid() {
		raw = ch.Interface()
	}
	return assertion.NewConverted("channel", raw, ch,
		func(a *assertion.Assertion[reflect.Value, *ChannelAssertion]) *ChannelAssertion {
			return &ChannelAssertion{a}
		})
}

// Factory narrows non-nil channels.
var Factory = assertion.TypeFactory[reflect.Value, *ChannelAssertion]{
	Name:  "channel",
	Guard: toChan,
	Build: NewChannelAssertion,
}

func toChan(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Chan || rv.IsNil() {
		return reflect.Value{}, false
	}
	return rv, true
}

func (c *ChannelAssertion) check(ok bool, what string, expected ...any) *ChannelAssertion {
	v := "nil channel"
	if ch := c.Value(); ch.IsValid() {
		v = ch.Type().String()
	}
	onFail := assertion.FailWith(fmt.Sprintf("Expected <%s> to %s", v, what))
	inverted := assertion.FailWith(fmt.Sprintf("Expected <%s> NOT to %s", v, what))
	if len(expected) > 0 {
		onFail = assertion.FailWithExpected(onFail.Message, expected[0])
		inverted = assertion.FailWithExpected(inverted.Message, expected[0])
	}
	return c.Execute(ok, onFail, inverted)
}

func (c *ChannelAssertion) capLen() (int, int) {
	ch := c.Value()
	if !ch.IsValid() {
		return 0, 0
	}
	return ch.Cap(), ch.Len()
}

// ToBeBuffered checks that the channel has a buffer.
func (c *ChannelAssertion) ToBeBuffered() *ChannelAssertion {
	capacity, _ := c.capLen()
	return c.check(capacity > 0, "be buffered")
}

// ToHaveCapacity checks the channel's buffer size.
func (c *ChannelAssertion) ToHaveCapacity(n int) *ChannelAssertion {
	capacity, _ := c.capLen()
	return c.check(capacity == n, fmt.Sprintf("have capacity %d", n), n)
}

// ToHaveLength checks the number of queued elements.
func (c *ChannelAssertion) ToHaveLength(n int) *ChannelAssertion {
	_, length := c.capLen()
	return c.check(length == n, fmt.Sprintf("have length %d", n), n)
}

// ToBeEmpty checks that no element is queued.
func (c *ChannelAssertion) ToBeEmpty() *ChannelAssertion {
	_, length := c.capLen()
	return c.check(length == 0, "be empty")
}

// ToHaveDirection checks the channel direction.
func (c *ChannelAssertion) ToHaveDirection(dir reflect.ChanDir) *ChannelAssertion {
	var got reflect.ChanDir
	if ch := c.Value(); ch.IsValid() {
		got = ch.Type().ChanDir()
	}
	return c.check(got == dir, "have direction "+dir.String(), dir)
}

// Bundle registers the channel plugin.
type Bundle struct{}

// Name returns "chan".
func (Bundle) Name() string { return "chan" }

// Version returns the bundle version.
func (Bundle) Version() string { return "1.0.0" }

// Plugins returns the Bottom-priority channel plugin.
func (Bundle) Plugins() []plugin.Plugin {
	return []plugin.Plugin{plugin.FromFactory("chan", plugin.Bottom, Factory)}
}
