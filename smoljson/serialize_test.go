package smoljson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialize_Scalars(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want string
	}{
		{"null", Null(), "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"zero", Number(0), "0"},
		{"negative zero", Number(negZero()), "0"},
		{"integral", Number(2023), "2023"},
		{"negative integral", Number(-7), "-7"},
		{"integral float", Number(42.0), "42"},
		{"fraction", Number(3.1415), "3.1415"},
		{"small fraction", Number(0.1), "0.1"},
		{"negative fraction", Number(-0.5), "-0.5"},
		{"tiny exponent form", Number(2.5e-10), "2.5e-10"},
		{"huge exponent form", Number(1e21), "1e+21"},
		{"plain string", String("hello"), `"hello"`},
		{"empty string", String(""), `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.v.Serialize())
		})
	}
}

func negZero() float64 {
	z := 0.0
	return -z
}

func TestSerialize_StringEscaping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"quote backslash newline", "a\"b\\c\n", `"a\"b\\c\n"`},
		{"short escapes", "\b\t\n\f\r", `"\b\t\n\f\r"`},
		{"other controls", "\x00\x01\x1f", `"\u0000\u0001\u001f"`},
		{"vertical tab", "\x0b", `"\u000b"`},
		{"high bytes raw", "café", "\"café\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, String(tt.in).Serialize())
		})
	}
}

func TestSerialize_Containers(t *testing.T) {
	arr := Array(Number(1), Number(2), Number(3), String("four"))
	require.Equal(t, `[1,2,3,"four"]`, arr.Serialize())

	require.Equal(t, "[]", Array().Serialize())
	require.Equal(t, "{}", Object().Serialize())

	// Single-key objects have deterministic output; multi-key order is
	// unspecified, so those are asserted by re-parsing.
	nested := Object(Member{Key: "c", Value: Array(String("x"), String("y"))})
	require.Equal(t, `{"c":["x","y"]}`, nested.Serialize())
}

func TestSerialize_ObjectKeyQuoting(t *testing.T) {
	v := Object(Member{Key: "we\"ird\nkey", Value: Number(1)})
	require.Equal(t, `{"we\"ird\nkey":1}`, v.Serialize())
}

func TestSerialize_MultiKeyObjectByReparse(t *testing.T) {
	v := Object(
		Member{Key: "a", Value: Number(1)},
		Member{Key: "b", Value: Bool(true)},
		Member{Key: "c", Value: Null()},
	)
	back, err := Parse(v.Serialize())
	require.NoError(t, err)
	require.True(t, Equal(v, back))
}

func TestSerialize_NilValue(t *testing.T) {
	var v *Value
	require.Equal(t, "null", v.Serialize())
}

func BenchmarkSerialize(b *testing.B) {
	v, err := Parse(benchDoc)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Serialize()
	}
}
