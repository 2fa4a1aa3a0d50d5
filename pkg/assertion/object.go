package assertion

import (
	"fmt"
	"sort"

	"digital.vasic.expect/pkg/compare"
)

// ObjectAssertion checks record-shaped values: maps, structs and
// pointers to structs, viewed as a map of keys to values. Struct views
// expose exported fields only.
type ObjectAssertion struct {
	*Assertion[map[string]any, *ObjectAssertion]
}

// NewObjectAssertion wraps the record m.
func NewObjectAssertion(m map[string]any) *ObjectAssertion {
	return New("object", m, func(a *Assertion[map[string]any, *ObjectAssertion]) *ObjectAssertion {
		return &ObjectAssertion{a}
	})
}

func (o *ObjectAssertion) check(ok bool, what string, expected any) *ObjectAssertion {
	v := Prettify(o.Actual())
	return o.Execute(
		ok,
		FailWithExpected(fmt.Sprintf("Expected <%s> to %s", v, what), expected),
		FailWithExpected(fmt.Sprintf("Expected <%s> NOT to %s", v, what), expected),
	)
}

// Keys returns the record keys in sorted order.
func (o *ObjectAssertion) Keys() []string {
	keys := make([]string, 0, len(o.Value()))
	for k := range o.Value() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToBeEmpty checks that the record has no keys.
func (o *ObjectAssertion) ToBeEmpty() *ObjectAssertion {
	return o.check(len(o.Value()) == 0, "be empty", 0)
}

// ToHaveSize checks the number of keys.
func (o *ObjectAssertion) ToHaveSize(n int) *ObjectAssertion {
	return o.check(len(o.Value()) == n, fmt.Sprintf("have %d keys", n), n)
}

// ToContainKey checks that key is present.
func (o *ObjectAssertion) ToContainKey(key string) *ObjectAssertion {
	_, ok := o.Value()[key]
	return o.check(ok, fmt.Sprintf("contain the key %q", key), key)
}

// ToContainKeys checks that every key is present.
func (o *ObjectAssertion) ToContainKeys(keys ...string) *ObjectAssertion {
	ok := true
	for _, k := range keys {
		if _, found := o.Value()[k]; !found {
			ok = false
			break
		}
	}
	return o.check(ok, fmt.Sprintf("contain the keys %q", keys), keys)
}

// ToContainValue checks that some value is deep equal to v.
func (o *ObjectAssertion) ToContainValue(v any) *ObjectAssertion {
	ok := false
	for _, val := range o.Value() {
		if compare.DeepEqual(val, v) {
			ok = true
			break
		}
	}
	return o.check(ok, fmt.Sprintf("contain the value <%s>", Prettify(v)), v)
}

// ToContainEntry checks that key maps to a value deep equal to v.
func (o *ObjectAssertion) ToContainEntry(key string, v any) *ObjectAssertion {
	val, found := o.Value()[key]
	return o.check(
		found && compare.DeepEqual(val, v),
		fmt.Sprintf("contain the entry %q: <%s>", key, Prettify(v)),
		v,
	)
}
