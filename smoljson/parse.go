package smoljson

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/fastjson/fastfloat"
)

// ParseError represents a syntax error with its byte offset and a short
// excerpt of the surrounding input.
type ParseError struct {
	Message string
	Offset  int
	Context string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("smoljson: %s at position %d, see here: %s", e.Message, e.Offset, e.Context)
}

// Parse converts JSON text into a value tree. Parsing is all-or-nothing: the
// first syntax violation aborts with a *ParseError and no partial value.
//
// Recursion depth equals nesting depth with no cap. Bytes after the first
// complete top-level value are ignored.
func Parse(input string) (*Value, error) {
	p := &parser{input: input}
	return p.parseValue()
}

// parser is a single-pass cursor over an immutable input buffer. There is no
// separate token stream; scanning is inlined into value construction.
type parser struct {
	input string
	pos   int
}

// errf builds a *ParseError at the current cursor with up to 40 bytes of
// context starting 20 bytes back, newlines removed. The cursor can sit one
// past the end after an elided colon check at EOF; the offset is clamped so
// it always points inside the buffer.
func (p *parser) errf(format string, args ...interface{}) error {
	pos := p.pos
	if pos > len(p.input) {
		pos = len(p.input)
	}
	start := pos - 20
	if start < 0 {
		start = 0
	}
	end := start + 40
	if end > len(p.input) {
		end = len(p.input)
	}
	excerpt := p.input[start:end]
	excerpt = strings.ReplaceAll(excerpt, "\n", "")
	excerpt = strings.ReplaceAll(excerpt, "\r", "")
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Offset:  pos,
		Context: excerpt,
	}
}

func (p *parser) hasChar(c byte) bool {
	return p.pos < len(p.input) && p.input[p.pos] == c
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (p *parser) parseValue() (*Value, error) {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		return nil, p.errf("unexpected end of input")
	}

	c := p.input[p.pos]
	switch {
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return String(s), nil

	case c == '-' || isDigit(c):
		f, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		return Number(f), nil

	case c == 't' && strings.HasPrefix(p.input[p.pos:], "true"):
		p.pos += 4
		return Bool(true), nil

	case c == 'f' && strings.HasPrefix(p.input[p.pos:], "false"):
		p.pos += 5
		return Bool(false), nil

	case c == 'n' && strings.HasPrefix(p.input[p.pos:], "null"):
		p.pos += 4
		return Null(), nil

	case c == '[':
		return p.parseArray()

	case c == '{':
		return p.parseObject()

	default:
		return nil, p.errf("unexpected character")
	}
}

// parseNumber scans -?digits(.digits)?([eE][+-]?digits(.digits)?)? and
// converts the longest strictly-valid prefix. The fractional part after the
// exponent is a documented grammar leniency: consumed, never converted.
func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	digits := func() {
		for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
			p.pos++
		}
	}

	if p.hasChar('-') {
		p.pos++
	}
	digits()
	if p.hasChar('.') {
		p.pos++
		digits()
	}
	convEnd := p.pos

	if p.hasChar('e') || p.hasChar('E') {
		mark := p.pos
		p.pos++
		if p.hasChar('-') || p.hasChar('+') {
			p.pos++
		}
		expStart := p.pos
		digits()
		if p.pos > expStart {
			convEnd = p.pos
		} else {
			// Dangling exponent marker: convert only the mantissa.
			convEnd = mark
		}
		if p.hasChar('.') {
			p.pos++
			digits()
		}
	}

	f, err := fastfloat.Parse(p.input[start:convEnd])
	if err != nil {
		return 0, p.errf("invalid number")
	}
	return f, nil
}

// parseString scans a quoted string body starting at the opening quote.
// Input ending before the closing quote yields the bytes accumulated so far.
func (p *parser) parseString() (string, error) {
	p.pos++ // opening quote
	var sb strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		p.pos++
		if c == '"' {
			break
		}
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}

		if p.pos >= len(p.input) {
			return "", p.errf("invalid escape sequence")
		}
		esc := p.input[p.pos]
		p.pos++
		switch esc {
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case '/':
			sb.WriteByte('/')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			if p.pos+4 > len(p.input) {
				return "", p.errf("invalid unicode escape")
			}
			hex := p.input[p.pos : p.pos+4]
			p.pos += 4
			cp, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return "", p.errf("invalid unicode escape")
			}
			// No UTF-16 reconstruction: non-ASCII code points collapse
			// to a placeholder byte.
			if cp < 0x80 {
				sb.WriteByte(byte(cp))
			} else {
				sb.WriteByte('?')
			}
		default:
			return "", p.errf("unknown escape character")
		}
	}
	return sb.String(), nil
}

func (p *parser) parseArray() (*Value, error) {
	p.pos++ // [
	p.skipWhitespace()

	v := Array()
	if p.hasChar(']') {
		p.pos++
		return v, nil
	}

	for {
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		v.arr = append(v.arr, *elem)
		p.skipWhitespace()
		if p.hasChar(',') {
			p.pos++
			p.skipWhitespace()
			continue
		}
		if p.hasChar(']') {
			p.pos++
			break
		}
		return nil, p.errf("expected ',' or ']'")
	}
	return v, nil
}

func (p *parser) parseObject() (*Value, error) {
	p.pos++ // {
	p.skipWhitespace()

	v := Object()
	if p.hasChar('}') {
		p.pos++
		return v, nil
	}

	for {
		if p.pos < len(p.input) && p.input[p.pos] != '"' {
			return nil, p.errf("expected string key")
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if p.pos < len(p.input) && p.input[p.pos] != ':' {
			return nil, p.errf("expected ':'")
		}
		p.pos++
		p.skipWhitespace()

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		// Duplicate keys overwrite: last write wins.
		v.obj[key] = val

		p.skipWhitespace()
		if p.hasChar(',') {
			p.pos++
			p.skipWhitespace()
			continue
		}
		if p.hasChar('}') {
			p.pos++
			break
		}
		return nil, p.errf("expected ',' or '}'")
	}
	return v, nil
}
