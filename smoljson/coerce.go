package smoljson

import (
	"fmt"

	"github.com/valyala/fastjson/fastfloat"
)

// TypeMismatchError reports a strict accessor invoked against a value of a
// different kind.
type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("smoljson: expected %s, got %s", e.Want, e.Got)
}

// ============================================================
// Flexible coercion (never fails)
// ============================================================

// Bool converts from any kind: booleans as-is, numbers by != 0, strings
// false for "", "false" and "0" and true otherwise, null false, containers
// true.
func (v *Value) Bool() bool {
	switch v.Kind() {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num != 0
	case KindString:
		return v.str != "" && v.str != "false" && v.str != "0"
	case KindNull:
		return false
	default:
		return true
	}
}

// Float64 converts from any kind: booleans to 0/1, numbers as-is, strings by
// a longest-prefix decimal parse and null and containers to 0.
//
// String conversion follows strtod: leading whitespace and a sign are
// allowed, scanning stops at the first byte that cannot extend the number,
// and whatever follows is ignored ("123abc" converts to 123). A string with
// no numeric prefix yields 0 silently, not an error.
func (v *Value) Float64() float64 {
	switch v.Kind() {
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindNumber:
		return v.num
	case KindString:
		return floatPrefix(v.str)
	default:
		return 0
	}
}

// floatPrefix converts the longest leading decimal number in s. An
// incomplete exponent does not invalidate the mantissa: "5e-" converts to 5.
func floatPrefix(s string) float64 {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '+' {
			// fastfloat rejects an explicit plus sign.
			start = i + 1
		}
		i++
	}
	digits := func() bool {
		from := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		return i > from
	}
	intPart := digits()
	fracPart := false
	if i < len(s) && s[i] == '.' {
		i++
		fracPart = digits()
	}
	if !intPart && !fracPart {
		return 0
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if digits() {
			end = i
		}
	}
	return fastfloat.ParseBestEffort(s[start:end])
}

// Int converts like Float64 and truncates toward zero.
func (v *Value) Int() int64 {
	return int64(v.Float64())
}

// String returns the string payload as-is and the full compact serialization
// for every other kind. It doubles as the fmt.Stringer implementation.
func (v *Value) String() string {
	if v != nil && v.kind == KindString {
		return v.str
	}
	return v.Serialize()
}

// ============================================================
// Strict coercion
// ============================================================

// AsBool requires the boolean kind; any other kind fails with
// *TypeMismatchError. No coercion is performed.
func (v *Value) AsBool() (bool, error) {
	if v.Kind() != KindBool {
		return false, &TypeMismatchError{Want: KindBool, Got: v.Kind()}
	}
	return v.b, nil
}

// AsNumber requires the number kind.
func (v *Value) AsNumber() (float64, error) {
	if v.Kind() != KindNumber {
		return 0, &TypeMismatchError{Want: KindNumber, Got: v.Kind()}
	}
	return v.num, nil
}

// AsString requires the string kind.
func (v *Value) AsString() (string, error) {
	if v.Kind() != KindString {
		return "", &TypeMismatchError{Want: KindString, Got: v.Kind()}
	}
	return v.str, nil
}
