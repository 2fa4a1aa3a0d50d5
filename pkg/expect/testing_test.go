package expect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.expect/pkg/assertion"
)

type fakeTB struct {
	testing.TB
	errors []string
	fatals []string
}

func (f *fakeTB) Helper() {}

func (f *fakeTB) Error(args ...any) {
	f.errors = append(f.errors, fmt.Sprint(args...))
}

func (f *fakeTB) Fatal(args ...any) {
	f.fatals = append(f.fatals, fmt.Sprint(args...))
}

func TestFor_ReportsWithFatal(t *testing.T) {
	tb := &fakeTB{}
	e := For(tb)

	e.Number(3).ToBeGreaterThan(5)

	require.Len(t, tb.fatals, 1)
	assert.Empty(t, tb.errors)
	assert.Contains(t, tb.fatals[0], "Expected <3> to be greater than 5")
	assert.Contains(t, tb.fatals[0], "actual:   3")
	assert.Contains(t, tb.fatals[0], "expected: 5")
}

func TestForNonFatal_ChainContinues(t *testing.T) {
	tb := &fakeTB{}
	e := ForNonFatal(tb)

	e.String("foo").ToStartWith("b").ToEndWith("o").ToBeEmpty()

	assert.Len(t, tb.errors, 2)
	assert.Empty(t, tb.fatals)
}

func TestForNonFatal_UnsupportedOperation(t *testing.T) {
	tb := &fakeTB{}
	e := ForNonFatal(tb)

	assertion.AsType(e.Number(1).Not(), assertion.NumberFactory)

	require.Len(t, tb.errors, 1)
	assert.Equal(t, "The Not() modifier is not allowed on AsType(..)", tb.errors[0])
}

func TestFor_OptionsOverrideHandler(t *testing.T) {
	tb := &fakeTB{}
	var got []error
	e := For(tb, WithFailHandler(func(err error) { got = append(got, err) }))

	e.Bool(true).ToBeFalse()

	assert.Len(t, got, 1)
	assert.Empty(t, tb.fatals)
}

func TestFor_RealTest(t *testing.T) {
	e := For(t)
	e.Number(2).ToBePositive().ToBeEven().Not().ToBeOdd()
	e.Array([]int{3, 1, 2}).ToHaveSameMembers(1, 2, 3)
}

func TestFor_DiffsCompositeValues(t *testing.T) {
	type point struct{ X, Y int }
	tb := &fakeTB{}
	e := ForNonFatal(tb)

	e.Expect(point{1, 2}).(*assertion.ObjectAssertion).ToBeEqual(point{1, 3})
	e.Number(1).ToBeEqual(2)

	require.Len(t, tb.errors, 2)
	assert.Contains(t, tb.errors[0], "diff (-actual +expected)")
	assert.Contains(t, tb.errors[0], "Y:")
	assert.NotContains(t, tb.errors[1], "diff")
}
