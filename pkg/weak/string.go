package weak

import (
	"math"
	"strconv"
	"strings"
)

const (
	objectString    = "[object Object]"
	undefinedString = "undefined"
	listSeparator   = ", "
)

// ToString converts a Value to Text. Numbers use their shortest decimal form
// that parses back to the same value, maps convert to "[object Object]",
// Absent converts to "undefined", and lists convert to the string forms of
// their elements joined by ", ". Nested lists are flattened into the same
// comma-separated sequence, and an empty list converts to "".
func ToString(v Value) Text {
	switch v := v.(type) {
	case Text:
		return v
	case Number:
		return Text(formatNumber(float64(v)))
	case Map:
		return objectString
	case Absent, nil:
		return undefinedString
	case List:
		var sb strings.Builder
		writeList(&sb, v)
		return Text(sb.String())
	default:
		panic("unreachable")
	}
}

// Display returns the display form of v as a Go string. It is equivalent to
// ToString.
func Display(v Value) string { return string(ToString(v)) }

func writeList(sb *strings.Builder, l List) {
	for i, elem := range l.elems {
		if i > 0 {
			sb.WriteString(listSeparator)
		}
		if inner, ok := elem.(List); ok {
			writeList(sb, inner)
		} else {
			sb.WriteString(string(ToString(elem)))
		}
	}
}

// Numbers are never written in scientific notation, and integral numbers are
// written without a fractional part.
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
