package smoljson

import (
	"math"
	"strconv"
	"strings"
)

// Serialize converts the value tree to compact JSON text: no inserted
// whitespace, no pretty-print option. Object entry order follows the native
// map iteration order and is unspecified.
func (v *Value) Serialize() string {
	var e emitter
	e.emit(v)
	return e.sb.String()
}

type emitter struct {
	sb strings.Builder
}

func (e *emitter) emit(v *Value) {
	if v == nil {
		e.sb.WriteString("null")
		return
	}

	switch v.kind {
	case KindNull:
		e.sb.WriteString("null")

	case KindBool:
		if v.b {
			e.sb.WriteString("true")
		} else {
			e.sb.WriteString("false")
		}

	case KindNumber:
		e.emitNumber(v.num)

	case KindString:
		e.emitString(v.str)

	case KindArray:
		e.sb.WriteByte('[')
		for i := range v.arr {
			if i > 0 {
				e.sb.WriteByte(',')
			}
			e.emit(&v.arr[i])
		}
		e.sb.WriteByte(']')

	case KindObject:
		e.sb.WriteByte('{')
		first := true
		for k, child := range v.obj {
			if !first {
				e.sb.WriteByte(',')
			}
			first = false
			e.emitString(k)
			e.sb.WriteByte(':')
			e.emit(child)
		}
		e.sb.WriteByte('}')
	}
}

// int64Exact bounds the integral fast path: beyond it float64 cannot be
// converted to int64 without overflow.
const int64Exact = 1 << 62

// emitNumber writes integral values as plain integer literals and everything
// else with up to 15 significant digits, trailing zeros and a dangling
// decimal point stripped. Exponent-form output is left untouched so the text
// survives a re-parse.
func (e *emitter) emitNumber(f float64) {
	if math.Trunc(f) == f && f > -int64Exact && f < int64Exact {
		e.sb.WriteString(strconv.FormatInt(int64(f), 10))
		return
	}
	s := strconv.FormatFloat(f, 'g', 15, 64)
	if !strings.ContainsAny(s, "eE") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	e.sb.WriteString(s)
}

// controlEscapes maps bytes 0-31 to their JSON escape: canonical short forms
// where they exist, \u00XX otherwise.
var controlEscapes = [32]string{
	`\u0000`, `\u0001`, `\u0002`, `\u0003`, `\u0004`, `\u0005`, `\u0006`, `\u0007`,
	`\b`, `\t`, `\n`, `\u000b`, `\f`, `\r`, `\u000e`, `\u000f`,
	`\u0010`, `\u0011`, `\u0012`, `\u0013`, `\u0014`, `\u0015`, `\u0016`, `\u0017`,
	`\u0018`, `\u0019`, `\u001a`, `\u001b`, `\u001c`, `\u001d`, `\u001e`, `\u001f`,
}

// emitString quotes and escapes byte-wise: control bytes via the table,
// backslash and double quote escaped, every other byte passed through raw.
func (e *emitter) emitString(s string) {
	e.sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 {
			e.sb.WriteString(controlEscapes[c])
			continue
		}
		if c == '\\' || c == '"' {
			e.sb.WriteByte('\\')
		}
		e.sb.WriteByte(c)
	}
	e.sb.WriteByte('"')
}
