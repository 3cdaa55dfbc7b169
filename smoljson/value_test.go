package smoljson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "null", KindNull.String())
	require.Equal(t, "string", KindString.String())
	require.Equal(t, "number", KindNumber.String())
	require.Equal(t, "bool", KindBool.String())
	require.Equal(t, "array", KindArray.String())
	require.Equal(t, "object", KindObject.String())
}

func TestConstructors(t *testing.T) {
	require.Equal(t, KindNull, Null().Kind())
	require.Equal(t, KindBool, Bool(true).Kind())
	require.Equal(t, KindNumber, Number(1).Kind())
	require.Equal(t, KindString, String("x").Kind())
	require.Equal(t, KindArray, Array().Kind())
	require.Equal(t, KindObject, Object().Kind())

	var zero Value
	require.True(t, zero.IsNull())

	var nilVal *Value
	require.True(t, nilVal.IsNull())
	require.Equal(t, KindNull, nilVal.Kind())
}

func TestLen_NonArrayLeniency(t *testing.T) {
	require.Equal(t, 2, Array(Number(1), Number(2)).Len())
	require.Equal(t, 0, Null().Len())
	require.Equal(t, 0, Number(5).Len())
	require.Equal(t, 0, String("abc").Len())
	require.Equal(t, 0, Object(Member{Key: "a", Value: Null()}).Len())
}

func TestObject_DuplicateMemberOverwrites(t *testing.T) {
	v := Object(
		Member{Key: "a", Value: Number(1)},
		Member{Key: "a", Value: Number(2)},
	)
	fields, err := v.Fields()
	require.NoError(t, err)
	require.Len(t, fields, 1)
	require.Equal(t, 2.0, fields["a"].Float64())
}

func TestClone_IsDeep(t *testing.T) {
	orig := Object(Member{Key: "list", Value: Array(Number(1), Number(2))})
	c := orig.Clone()

	c.Key("list").At(0).SetNumber(99)
	c.Key("extra").SetBool(true)

	// The original is untouched.
	want := Object(Member{Key: "list", Value: Array(Number(1), Number(2))})
	require.True(t, Equal(orig, want))
	require.Equal(t, 99.0, c.Key("list").At(0).Float64())
}

func TestConstructors_CopyTheirArguments(t *testing.T) {
	inner := Number(1)
	arr := Array(inner)
	inner.SetNumber(99)
	require.Equal(t, "[1]", arr.Serialize())

	child := String("before")
	obj := Object(Member{Key: "k", Value: child})
	child.SetString("after")
	require.Equal(t, `{"k":"before"}`, obj.Serialize())
}

func TestTake_MovesAndEmptiesSource(t *testing.T) {
	src := Array(Number(1), Number(2))
	moved := src.Take()

	require.True(t, src.IsNull())
	require.Equal(t, 2, moved.Len())
	require.Equal(t, "[1,2]", moved.Serialize())
}

func TestNullValueSingleton(t *testing.T) {
	a, b := NullValue(), NullValue()
	require.Same(t, a, b)
	require.True(t, a.IsNull())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"nulls", Null(), Null(), true},
		{"kind mismatch", Null(), Number(0), false},
		{"numbers", Number(1.5), Number(1.5), true},
		{"numbers differ", Number(1.5), Number(2.5), false},
		{"strings", String("x"), String("x"), true},
		{"bools differ", Bool(true), Bool(false), false},
		{"arrays ordered", Array(Number(1), Number(2)), Array(Number(2), Number(1)), false},
		{"arrays equal", Array(Number(1), Null()), Array(Number(1), Null()), true},
		{"array length", Array(Number(1)), Array(Number(1), Number(2)), false},
		{
			"objects unordered",
			Object(Member{Key: "a", Value: Number(1)}, Member{Key: "b", Value: Number(2)}),
			Object(Member{Key: "b", Value: Number(2)}, Member{Key: "a", Value: Number(1)}),
			true,
		},
		{
			"objects key sets differ",
			Object(Member{Key: "a", Value: Number(1)}),
			Object(Member{Key: "b", Value: Number(1)}),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}
