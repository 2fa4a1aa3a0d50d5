package assertion

import (
	"fmt"

	"digital.vasic.expect/pkg/compare"
)

// ArrayAssertion checks slices and arrays. Elements are held as []any;
// Actual still returns the original slice or array.
type ArrayAssertion struct {
	*Assertion[[]any, *ArrayAssertion]
}

// NewArrayAssertion wraps items.
func NewArrayAssertion(items []any) *ArrayAssertion {
	return New("array", items, func(a *Assertion[[]any, *ArrayAssertion]) *ArrayAssertion {
		return &ArrayAssertion{a}
	})
}

func (a *ArrayAssertion) check(ok bool, what string, expected ...any) *ArrayAssertion {
	v := Prettify(a.Actual())
	onFail := FailWith(fmt.Sprintf("Expected <%s> to %s", v, what))
	inverted := FailWith(fmt.Sprintf("Expected <%s> NOT to %s", v, what))
	if len(expected) > 0 {
		onFail = FailWithExpected(onFail.Message, expected[0])
		inverted = FailWithExpected(inverted.Message, expected[0])
	}
	return a.Execute(ok, onFail, inverted)
}

// ToBeEmpty checks that there are no elements.
func (a *ArrayAssertion) ToBeEmpty() *ArrayAssertion {
	return a.check(len(a.Value()) == 0, "be empty")
}

// ToHaveSize checks the number of elements.
func (a *ArrayAssertion) ToHaveSize(n int) *ArrayAssertion {
	return a.check(len(a.Value()) == n, fmt.Sprintf("have %d elements", n), n)
}

// ToContain checks that some element is deep equal to v.
func (a *ArrayAssertion) ToContain(v any) *ArrayAssertion {
	return a.check(
		indexOf(a.Value(), v) >= 0,
		fmt.Sprintf("contain <%s>", Prettify(v)),
		v,
	)
}

// ToContainAll checks that every value in vs is an element.
func (a *ArrayAssertion) ToContainAll(vs ...any) *ArrayAssertion {
	ok := true
	for _, v := range vs {
		if indexOf(a.Value(), v) < 0 {
			ok = false
			break
		}
	}
	return a.check(ok, fmt.Sprintf("contain all of <%v>", vs), vs)
}

// ToContainAny checks that at least one value in vs is an element.
func (a *ArrayAssertion) ToContainAny(vs ...any) *ArrayAssertion {
	ok := false
	for _, v := range vs {
		if indexOf(a.Value(), v) >= 0 {
			ok = true
			break
		}
	}
	return a.check(ok, fmt.Sprintf("contain any of <%v>", vs), vs)
}

// ToHaveSameMembers checks that the elements are a permutation of vs.
func (a *ArrayAssertion) ToHaveSameMembers(vs ...any) *ArrayAssertion {
	return a.check(
		sameMembers(a.Value(), vs),
		fmt.Sprintf("have the same members as <%v>", vs),
		vs,
	)
}

// ToMatchAll checks that every element satisfies predicate. Panics
// raised by the predicate propagate unchanged.
func (a *ArrayAssertion) ToMatchAll(predicate func(any) bool) *ArrayAssertion {
	ok := true
	for _, item := range a.Value() {
		if !predicate(item) {
			ok = false
			break
		}
	}
	return a.check(ok, "have all elements match the predicate")
}

// ToMatchAny checks that some element satisfies predicate.
func (a *ArrayAssertion) ToMatchAny(predicate func(any) bool) *ArrayAssertion {
	ok := false
	for _, item := range a.Value() {
		if predicate(item) {
			ok = true
			break
		}
	}
	return a.check(ok, "have any element match the predicate")
}

// ToHaveUniqueItems checks that no two elements are deep equal.
func (a *ArrayAssertion) ToHaveUniqueItems() *ArrayAssertion {
	items := a.Value()
	ok := true
	for i := 0; i < len(items) && ok; i++ {
		for j := i + 1; j < len(items); j++ {
			if compare.DeepEqual(items[i], items[j]) {
				ok = false
				break
			}
		}
	}
	return a.check(ok, "have unique items")
}

func indexOf(items []any, v any) int {
	for i, item := range items {
		if compare.DeepEqual(item, v) {
			return i
		}
	}
	return -1
}

func sameMembers(items, vs []any) bool {
	if len(items) != len(vs) {
		return false
	}
	used := make([]bool, len(vs))
	for _, item := range items {
		found := false
		for j, v := range vs {
			if !used[j] && compare.DeepEqual(item, v) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
