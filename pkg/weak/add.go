package weak

import "math"

// Add implements the "+" operator of the language. It is not symmetric: the
// kind of the left operand is examined first, and only then the kind of the
// right operand. The result is either a Number (numeric addition) or Text
// (concatenation of the string forms of both operands).
//
// Some notable cases:
//
//   - Text + Text concatenates without any coercion.
//   - Text + Number adds numerically if the text parses as a number.
//   - Number + anything adds numerically unless the right operand converts
//     to NaN, in which case it concatenates.
//   - Map + Number and Absent + Number are NaN, but Number + Map and
//     Number + Absent concatenate.
//   - Absent + Absent is NaN.
//   - List + anything concatenates.
//
// A nil operand is treated as Absent.
func Add(left, right Value) Value {
	left, right = orAbsent(left), orAbsent(right)
	switch l := left.(type) {
	case Text:
		switch r := right.(type) {
		case Text:
			return l + r
		case Number:
			if ln := parseNumber(string(l)); !math.IsNaN(ln) {
				return Number(ln) + r
			}
			return concat(l, r)
		case Map, Absent, List:
			return concat(l, r)
		}
	case Number:
		// The right operand is coerced regardless of its kind.
		if rn := ToNumber(right); !rn.IsNaN() {
			return l + rn
		}
		return concat(l, right)
	case Map:
		switch r := right.(type) {
		case Number:
			return Number(math.NaN())
		case Text, Map, Absent, List:
			return concat(l, r)
		}
	case Absent:
		switch r := right.(type) {
		case Number, Absent:
			return Number(math.NaN())
		case Text, Map, List:
			return concat(l, r)
		}
	case List:
		return concat(l, right)
	}
	panic("unreachable")
}

func concat(l, r Value) Text { return ToString(l) + ToString(r) }
