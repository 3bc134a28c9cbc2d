package weak

import (
	"strconv"
	"strings"
)

// Repr returns an unambiguous representation of v, in which the kind of every
// value can be told apart:
//
//   - Text is quoted: "foo";
//   - Number is tagged: (number 5);
//   - Absent is written as (undefined);
//   - List is written as [elem1 elem2];
//   - Map is written as [&key1=value1 &key2=value2], with keys sorted, or [&]
//     when empty.
//
// Unlike ToString, Repr is not used by any operation of the language; it is
// meant for debugging and diagnostics.
func Repr(v Value) string {
	return ReprStyled(v, nil)
}

// Styler decorates a fragment of the output of ReprStyled. It is called with
// the kind of the leaf value or container the fragment belongs to.
type Styler func(k Kind, s string) string

// ReprStyled is like Repr, but passes every leaf value and every container
// delimiter through style. If style is nil, it is the same as Repr.
func ReprStyled(v Value, style Styler) string {
	if style == nil {
		style = func(_ Kind, s string) string { return s }
	}
	var sb strings.Builder
	writeRepr(&sb, orAbsent(v), style)
	return sb.String()
}

func writeRepr(sb *strings.Builder, v Value, style Styler) {
	switch v := v.(type) {
	case Text:
		sb.WriteString(style(TextKind, strconv.Quote(string(v))))
	case Number:
		sb.WriteString(style(NumberKind, "(number "+formatNumber(float64(v))+")"))
	case Absent:
		sb.WriteString(style(AbsentKind, "(undefined)"))
	case List:
		sb.WriteString(style(ListKind, "["))
		for i, elem := range v.elems {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeRepr(sb, elem, style)
		}
		sb.WriteString(style(ListKind, "]"))
	case Map:
		if v.Len() == 0 {
			sb.WriteString(style(MapKind, "[&]"))
			return
		}
		sb.WriteString(style(MapKind, "["))
		for i, key := range v.Keys() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(style(MapKind, "&"+quoteKey(key)+"="))
			writeRepr(sb, v.entries[key], style)
		}
		sb.WriteString(style(MapKind, "]"))
	default:
		panic("unreachable")
	}
}

// Keys consisting of only letters, digits, '_' and '-' are written bare;
// other keys are quoted.
func quoteKey(key string) string {
	if key == "" {
		return `""`
	}
	for _, r := range key {
		if !isBareRune(r) {
			return strconv.Quote(key)
		}
	}
	return key
}

func isBareRune(r rune) bool {
	return r == '_' || r == '-' ||
		('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}
