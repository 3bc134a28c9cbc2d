package weak

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ToNumber converts a Value to a Number. Text is parsed as a decimal
// floating-point number; other kinds except Number convert to NaN. It never
// fails: unparsable text also yields NaN.
func ToNumber(v Value) Number {
	switch v := v.(type) {
	case Text:
		return Number(parseNumber(string(v)))
	case Number:
		return v
	case Map, List, Absent, nil:
		return Number(math.NaN())
	default:
		panic("unreachable")
	}
}

// IsNaN reports whether n is NaN.
func (n Number) IsNaN() bool { return math.IsNaN(float64(n)) }

// Parses s as a float64, returning NaN if s is not a number.
//
// The accepted syntax is an optional sign followed by either decimal digits
// with an optional fraction and exponent, or one of "inf", "infinity" and
// "nan" in any case. Leading and trailing spaces are not allowed. Literals out
// of the range of float64 are parsed as infinities.
func parseNumber(s string) float64 {
	if hasHexPrefix(s) || strings.ContainsRune(s, '_') {
		// Hexadecimal literals and digit separators are accepted by
		// strconv.ParseFloat, but not by the language.
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

func hasHexPrefix(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
