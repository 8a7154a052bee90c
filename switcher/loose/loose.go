package loose

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// Kind tells which comparison a Key performs against textual keys.
type Kind uint8

const (
	// KindText compares the key text exactly.
	KindText Kind = iota + 1
	// KindNumber compares the numeric value of the key.
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Key is the normalized form of an input value.
type Key struct {
	Kind   Kind
	Text   string
	Number float64
}

// Matches reports whether the textual key is loosely equal to k.
func (k Key) Matches(key string) bool {
	switch k.Kind {
	case KindText:
		return k.Text == key
	case KindNumber:
		return ToNumber(key) == k.Number
	default:
		return false
	}
}

// Equal reports whether variable is loosely equal to the textual key.
func Equal(variable any, key string) bool {
	k, ok := Canonical(variable)
	if !ok {
		return false
	}
	return k.Matches(key)
}

// Canonical normalizes variable for comparison against textual keys.
// It returns false for values that can never equal a key.
func Canonical(variable any) (Key, bool) {
	if variable == nil {
		return Key{}, false
	}

	rv := reflect.ValueOf(variable)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return Key{}, false
		}
	}

	if stringer, ok := variable.(fmt.Stringer); ok {
		return Key{Kind: KindText, Text: stringer.String()}, true
	}

	switch rv.Kind() {
	case reflect.String:
		return Key{Kind: KindText, Text: rv.String()}, true
	case reflect.Bool:
		if rv.Bool() {
			return Key{Kind: KindNumber, Number: 1}, true
		}
		return Key{Kind: KindNumber, Number: 0}, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Key{Kind: KindNumber, Number: float64(rv.Int())}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Key{Kind: KindNumber, Number: float64(rv.Uint())}, true
	case reflect.Float32, reflect.Float64:
		return Key{Kind: KindNumber, Number: rv.Float()}, true
	default:
		return Key{}, false
	}
}

// ToNumber converts a textual key to a number the way loose equality does.
// Text that is not a numeric literal converts to NaN, which equals nothing.
func ToNumber(s string) float64 {
	s = strings.TrimFunc(s, isSpace)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseRadix(s[2:], 16)
		case 'o', 'O':
			return parseRadix(s[2:], 8)
		case 'b', 'B':
			return parseRadix(s[2:], 2)
		}
	}

	if !isDecimalLiteral(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// isSpace accepts white space and line terminators. U+0085 is not one.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func parseRadix(digits string, base int) float64 {
	if digits == "" {
		return math.NaN()
	}
	var v float64
	for _, r := range digits {
		d := digitValue(r)
		if d < 0 || d >= base {
			return math.NaN()
		}
		v = v*float64(base) + float64(d)
	}
	return v
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	default:
		return -1
	}
}

// isDecimalLiteral accepts [+-] digits [. digits] [(e|E) [+-] digits]
// with at least one mantissa digit.
func isDecimalLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	mantissa := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exponent := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exponent++
		}
		if exponent == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
