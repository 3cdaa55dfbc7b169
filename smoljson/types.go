package smoljson

// Kind identifies the active variant of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value represents a JSON value. The zero Value is null.
//
// Array elements are stored inline in a contiguous slice; object entries are
// individually boxed so the recursive type stays bounded in size. A composite
// Value exclusively owns its children.
type Value struct {
	kind Kind

	// Payloads; only the one matching kind is valid.
	str string
	num float64
	b   bool
	arr []Value
	obj map[string]*Value
}

// Member is a key-value pair for Object construction.
type Member struct {
	Key   string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, b: v}
}

// Number creates a number value. Numbers are always float64; there is no
// separate integer kind.
func Number(v float64) *Value {
	return &Value{kind: KindNumber, num: v}
}

// String creates a string value.
func String(v string) *Value {
	return &Value{kind: KindString, str: v}
}

// Array creates an array value. Items are deep-copied; the array exclusively
// owns its elements.
func Array(items ...*Value) *Value {
	v := &Value{kind: KindArray}
	if len(items) == 0 {
		return v
	}
	v.arr = make([]Value, len(items))
	for i, item := range items {
		v.arr[i] = *item.Clone()
	}
	return v
}

// Object creates an object value from members. Values are deep-copied; a
// repeated key overwrites the earlier member.
func Object(members ...Member) *Value {
	obj := make(map[string]*Value, len(members))
	for _, m := range members {
		obj[m.Key] = m.Value.Clone()
	}
	return &Value{kind: KindObject, obj: obj}
}

// nullSingleton backs NullValue. Callers must treat it as read-only.
var nullSingleton = Value{}

// NullValue returns the process-wide shared null value. It exists for APIs
// that hand out *Value and need a non-nil "nothing" to point at; do not
// mutate it.
func NullValue() *Value {
	return &nullSingleton
}

// ============================================================
// Predicates and views
// ============================================================

// Kind returns the active kind. A nil receiver reads as null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true for a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// IsArray returns true for an array value.
func (v *Value) IsArray() bool {
	return v != nil && v.kind == KindArray
}

// IsObject returns true for an object value.
func (v *Value) IsObject() bool {
	return v != nil && v.kind == KindObject
}

// Len returns the element count of an array and 0 for every other kind.
// The non-array zero is a documented leniency, not an error.
func (v *Value) Len() int {
	if v == nil || v.kind != KindArray {
		return 0
	}
	return len(v.arr)
}

// Items returns the underlying element slice of an array. Element mutations
// through the slice are visible in the Value; appending is not.
func (v *Value) Items() ([]Value, error) {
	if v == nil || v.kind != KindArray {
		return nil, ErrNotAnArray
	}
	return v.arr, nil
}

// Fields returns the underlying key-value mapping of an object. Iteration
// order is unspecified.
func (v *Value) Fields() (map[string]*Value, error) {
	if v == nil || v.kind != KindObject {
		return nil, ErrNotAnObject
	}
	return v.obj, nil
}

// ============================================================
// Assignment
// ============================================================

// SetNull resets the value to null, discarding any prior content.
func (v *Value) SetNull() {
	*v = Value{}
}

// SetBool resets the value to the given boolean.
func (v *Value) SetBool(b bool) {
	*v = Value{kind: KindBool, b: b}
}

// SetNumber resets the value to the given number.
func (v *Value) SetNumber(f float64) {
	*v = Value{kind: KindNumber, num: f}
}

// SetString resets the value to the given string.
func (v *Value) SetString(s string) {
	*v = Value{kind: KindString, str: s}
}

// ============================================================
// Copy and move
// ============================================================

// Clone returns a deep copy. Arrays and objects are fully duplicated, never
// aliased.
func (v *Value) Clone() *Value {
	if v == nil {
		return Null()
	}
	c := &Value{kind: v.kind}
	switch v.kind {
	case KindString:
		c.str = v.str
	case KindNumber:
		c.num = v.num
	case KindBool:
		c.b = v.b
	case KindArray:
		c.arr = make([]Value, len(v.arr))
		for i := range v.arr {
			c.arr[i] = *v.arr[i].Clone()
		}
	case KindObject:
		c.obj = make(map[string]*Value, len(v.obj))
		for k, child := range v.obj {
			c.obj[k] = child.Clone()
		}
	}
	return c
}

// Take moves the payload out of v, leaving v null. No children are copied;
// ownership transfers to the returned value.
func (v *Value) Take() *Value {
	out := *v
	*v = Value{}
	return &out
}

// Equal reports structural equality: same kind, same payload, arrays
// compared in order, objects compared by key set regardless of order.
func Equal(a, b *Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNull:
		return true
	case KindString:
		return a.str == b.str
	case KindNumber:
		return a.num == b.num
	case KindBool:
		return a.b == b.b
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(&a.arr[i], &b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k, av := range a.obj {
			bv, ok := b.obj[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
