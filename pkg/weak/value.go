// Package weak models the runtime values of a weakly-typed language and the
// implicit coercions that govern its "+" operator, stringification and
// property lookup.
//
// A Value is one of Text, Number, Map, List and Absent. No other type
// implements Value. All Values are immutable once constructed; the Map and
// List types only expose read accessors, and their constructors copy the
// containers they are given.
//
// The operations of this package never fail. Coercions that make no sense
// produce sentinels instead: NaN for numbers, "[object Object]" for maps and
// "undefined" for Absent.
package weak

import "sort"

// Value is a value of the weakly-typed language.
type Value interface {
	// Kind returns the variant of the value.
	Kind() Kind
	// String returns the display form of the value, the same as ToString.
	String() string

	isValue()
}

// Text is a string value.
type Text string

// Number is a numeric value. NaN is a legitimate Number, used as the result
// of failed numeric coercions.
type Number float64

// Map is a mapping from string keys to values, corresponding to objects of
// the emulated language. The zero value is an empty Map.
type Map struct {
	entries map[string]Value
}

// List is an ordered sequence of values, corresponding to arrays of the
// emulated language. The zero value is an empty List.
type List struct {
	elems []Value
}

// Absent is the undefined value. All Absent values are identical.
type Absent struct{}

func (Text) isValue()   {}
func (Number) isValue() {}
func (Map) isValue()    {}
func (List) isValue()   {}
func (Absent) isValue() {}

func (Text) Kind() Kind   { return TextKind }
func (Number) Kind() Kind { return NumberKind }
func (Map) Kind() Kind    { return MapKind }
func (List) Kind() Kind   { return ListKind }
func (Absent) Kind() Kind { return AbsentKind }

func (t Text) String() string   { return string(t) }
func (n Number) String() string { return formatNumber(float64(n)) }
func (Map) String() string      { return objectString }
func (l List) String() string   { return string(ToString(l)) }
func (Absent) String() string   { return undefinedString }

// Len returns the number of entries in the map.
func (m Map) Len() int { return len(m.entries) }

// Get returns the value stored under key, and whether the key exists. The
// returned value is the stored one, not a copy; since values are immutable,
// this is only observable through Clone.
func (m Map) Get(key string) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Keys returns the keys of the map in sorted order. The order carries no
// meaning; sorting only makes the output deterministic.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of elements in the list.
func (l List) Len() int { return len(l.elems) }

// At returns the i-th element of the list. It panics if i is out of range.
func (l List) At(i int) Value { return l.elems[i] }

// Elems returns a copy of the elements of the list.
func (l List) Elems() []Value {
	return append([]Value(nil), l.elems...)
}

// Clone returns a deep copy of v. The copy shares no containers with v.
func Clone(v Value) Value {
	switch v := v.(type) {
	case nil:
		return Absent{}
	case Text, Number, Absent:
		return v
	case Map:
		entries := make(map[string]Value, len(v.entries))
		for k, e := range v.entries {
			entries[k] = Clone(e)
		}
		return Map{entries}
	case List:
		elems := make([]Value, len(v.elems))
		for i, e := range v.elems {
			elems[i] = Clone(e)
		}
		return List{elems}
	default:
		panic("unreachable")
	}
}
