package assertion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intError int

func (e intError) Error() string { return "int error" }

type stringError string

func (e stringError) Error() string { return string(e) }

type boolError bool

func (e boolError) Error() string { return "bool error" }

func TestTypeFactory_Predicate(t *testing.T) {
	now := time.Now()
	var nilTime *time.Time

	tests := []struct {
		name    string
		factory Factory
		yes     []any
		no      []any
	}{
		{"boolean", BooleanFactory, []any{true, false}, []any{1, "true", nil, boolError(true)}},
		{"number", NumberFactory, []any{1, int8(1), uint64(1), 1.5, float32(2)}, []any{"1", true, nil, complex(1, 1), intError(1)}},
		{"string", StringFactory, []any{"", "a"}, []any{'a', []byte("a"), nil, stringError("a")}},
		{"date", DateFactory, []any{now, &now}, []any{nilTime, "2024-01-01", nil}},
		{"array", ArrayFactory, []any{[]int{}, [1]int{1}, []any{nil}}, []any{"abc", map[int]int{}, nil}},
		{"error", ErrorFactory, []any{intError(1), stringError("a"), boolError(false)}, []any{nil, (*AssertionError)(nil), "a"}},
		{"function", FunctionFactory, []any{func() {}, TestTypeFactory_Predicate}, []any{(func())(nil), nil}},
		{"object", ObjectFactory, []any{map[int]string{}, struct{}{}, &struct{ A int }{}}, []any{(*struct{})(nil), []int{}, nil, new(int)}},
		{"any", AnyFactory, []any{nil, 1, "x"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.factory.TypeName())
			for _, v := range tt.yes {
				assert.True(t, tt.factory.Predicate(v), "%#v", v)
			}
			for _, v := range tt.no {
				assert.False(t, tt.factory.Predicate(v), "%#v", v)
			}
		})
	}
}

func TestTypeFactory_WrapKeepsRawValue(t *testing.T) {
	w := ArrayFactory.Wrap([2]int{1, 2})
	arr, ok := w.(*ArrayAssertion)
	require.True(t, ok)
	assert.Equal(t, [2]int{1, 2}, arr.Actual())
	assert.Equal(t, []any{1, 2}, arr.Value())
}

func TestObjectGuard_Views(t *testing.T) {
	type rec struct {
		Name  string
		count int
	}

	m, ok := toObject(rec{Name: "n", count: 2})
	require.True(t, ok)
	assert.Equal(t, map[string]any{"Name": "n"}, m)

	m, ok = toObject(map[int]bool{1: true})
	require.True(t, ok)
	assert.Equal(t, map[string]any{"1": true}, m)
}

func TestAsType(t *testing.T) {
	n := AsType(NewAnyAssertion(3), NumberFactory)
	assert.Equal(t, 3.0, n.Value())
	assert.Equal(t, 3, n.Actual())
}

func TestAsType_KeepsHandler(t *testing.T) {
	got, h := collect()
	w := NewAnyAssertion(3).WithHandler(h)

	AsType(w, NumberFactory).ToBeNegative()

	assert.Len(t, *got, 1)
}

func TestAsType_TypeMismatch(t *testing.T) {
	err := Catch(func() { AsType(NewAnyAssertion("x"), NumberFactory) })
	require.Error(t, err)
	assert.Equal(t, `Expected <"x"> to be of type "number"`, err.Error())

	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "x", ae.Actual)
	assert.Equal(t, "number", ae.Expected)
}

func TestAsType_NegatedIsUnsupported(t *testing.T) {
	for _, v := range []any{3, "x"} {
		err := Catch(func() { AsType(NewAnyAssertion(v).Not(), NumberFactory) })
		require.Error(t, err)
		assert.True(t, IsKind(err, KindUnsupportedOperation))
		assert.Equal(t, "The Not() modifier is not allowed on AsType(..)", err.Error())
	}
}

func TestAsType_NonPanickingHandlerGetsZeroWrapper(t *testing.T) {
	got, h := collect()
	s := AsType(NewAnyAssertion(1).WithHandler(h), StringFactory)

	require.Len(t, *got, 1)
	assert.Equal(t, "", s.Value())
	assert.False(t, s.IsNegated())
}

func TestExtracting(t *testing.T) {
	arr := NewArrayAssertion([]any{1, "two", 3.5})

	assert.Equal(t, "two", Extracting(arr, 1, StringFactory).Value())
	assert.Equal(t, 3.5, Extracting(arr, 2, NumberFactory).Value())
	assert.NotPanics(t, func() { Extracting(arr, 0, NumberFactory).ToBePositive() })
}

func TestExtracting_BoundsBeforeType(t *testing.T) {
	arr := ArrayFactory.Wrap([]int{1, 2, 3}).(*ArrayAssertion)

	for _, idx := range []int{3, 10, -1} {
		err := Catch(func() { Extracting(arr, idx, StringFactory) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Out of bounds!")

		var ae *AssertionError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, Bounds{Index: idx, Length: 3}, ae.Actual)
	}

	err := Catch(func() { Extracting(arr, 1, StringFactory) })
	require.Error(t, err)
	assert.Equal(t, `Expected <2> to be of type "string"`, err.Error())
}

func TestExtracting_NegatedIsUnsupported(t *testing.T) {
	arr := NewArrayAssertion([]any{1})
	err := Catch(func() { Extracting(arr.Not(), 0, NumberFactory) })
	require.Error(t, err)
	assert.Equal(t, "The Not() modifier is not allowed on Extracting(..)", err.Error())
}

func TestBounds_String(t *testing.T) {
	assert.Equal(t, "index 5 of 3", Bounds{Index: 5, Length: 3}.String())
}

func TestArrayOf(t *testing.T) {
	f := ArrayOf(NumberFactory)
	assert.Equal(t, "array of number", f.Name)
	assert.True(t, f.Predicate([]int{1, 2}))
	assert.True(t, f.Predicate([]any{}))
	assert.False(t, f.Predicate([]any{1, "2"}))
	assert.False(t, f.Predicate(1))

	err := Catch(func() { AsType(NewAnyAssertion([]any{"a"}), f) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"array of number"`)
}
