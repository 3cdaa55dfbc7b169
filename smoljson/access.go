package smoljson

import (
	"errors"
	"fmt"
)

// Errors returned by the strict accessors and the container views.
var (
	ErrNotAnObject = errors.New("smoljson: not an object")
	ErrNotAnArray  = errors.New("smoljson: not an array")
)

// KeyNotFoundError reports a strict key lookup against an object that does
// not contain the key.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("smoljson: key %q not found in object", e.Key)
}

// IndexOutOfRangeError reports a strict index lookup outside the array.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("smoljson: index %d out of bounds (len=%d)", e.Index, e.Len)
}

// Key returns the value under key, vivifying as needed: a non-object
// receiver is destructively reset to an empty object (prior content
// discarded), and a missing key is inserted holding null. Never fails.
//
// Chained calls build intervening structure on demand:
//
//	v.Key("a").Key("b").SetNumber(1)
func (v *Value) Key(key string) *Value {
	if v.kind != KindObject {
		*v = Value{kind: KindObject, obj: make(map[string]*Value)}
	}
	child, ok := v.obj[key]
	if !ok {
		child = &Value{}
		v.obj[key] = child
	}
	return child
}

// At returns the element at index i, vivifying as needed: a non-array
// receiver is destructively reset to an empty array, and an index beyond the
// current length grows the array with null padding. Never fails for i >= 0;
// a negative index panics.
//
// The returned pointer is valid until the array next grows.
func (v *Value) At(i int) *Value {
	if i < 0 {
		panic(fmt.Sprintf("smoljson: negative array index %d", i))
	}
	if v.kind != KindArray {
		*v = Value{kind: KindArray}
	}
	for len(v.arr) <= i {
		v.arr = append(v.arr, Value{})
	}
	return &v.arr[i]
}

// TryKey is the strict counterpart of Key: it never mutates and fails with
// ErrNotAnObject on a kind mismatch or *KeyNotFoundError on absence.
func (v *Value) TryKey(key string) (*Value, error) {
	if v == nil || v.kind != KindObject {
		return nil, ErrNotAnObject
	}
	child, ok := v.obj[key]
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	return child, nil
}

// TryIndex is the strict counterpart of At: it never mutates and fails with
// ErrNotAnArray on a kind mismatch or *IndexOutOfRangeError when i is
// outside the array.
func (v *Value) TryIndex(i int) (*Value, error) {
	if v == nil || v.kind != KindArray {
		return nil, ErrNotAnArray
	}
	if i < 0 || i >= len(v.arr) {
		return nil, &IndexOutOfRangeError{Index: i, Len: len(v.arr)}
	}
	return &v.arr[i], nil
}
