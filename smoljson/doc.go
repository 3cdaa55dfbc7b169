// Package smoljson implements a small in-memory JSON value model for
// embedding into other programs: config trees, scripting glue, light data
// interchange.
//
// smoljson is designed to be:
//   - Small: one value type, one parser, one compact serializer
//   - Ergonomic: chained vivifying accessors build nested structure on demand
//   - Predictable: flexible coercion with fixed fallbacks, strict accessors
//     that fail loudly
//
// # Data Model
//
// A Value has exactly one active Kind: null, string, number (float64, no
// integer/float distinction), bool, array or object. Arrays are ordered and
// densely indexed; objects map unique string keys to values with unspecified
// iteration order.
//
// # Access
//
// Mutable access vivifies: Key on a non-object resets the value to an empty
// object, At on a non-array resets it to an empty array, missing entries are
// created as null and growth pads with null. TryKey and TryIndex are the
// strict counterparts: they never mutate and return an error on kind
// mismatch or absence.
//
//	v := smoljson.Null()
//	v.Key("a").Key("b").SetNumber(1) // {"a":{"b":1}}
//
// # Coercion
//
// Bool, Int, Float64 and String convert from any kind with fixed fallback
// values and never fail. AsBool, AsNumber and AsString require an exact kind
// match and return a TypeMismatchError otherwise.
//
// # Wire Format
//
// Parse and Serialize speak JSON text with two deliberate deviations from
// the standard: the numeric grammar permits a fractional part after the
// exponent (the extra fraction is consumed but ignored), and \uXXXX escapes
// at or above U+0080 decode to a '?' placeholder byte (no UTF-16 surrogate
// reconstruction). Serialization is always compact; no pretty-printing.
//
// # Limitations
//
// Parsing recursion depth equals JSON nesting depth with no cap;
// pathologically deep input can exhaust the stack, so embedders handling
// hostile input should bound nesting themselves. Values are not safe for
// concurrent mutation; callers provide their own exclusion.
package smoljson
