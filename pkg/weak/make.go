package weak

// MakeText returns a Text value.
func MakeText(s string) Text { return Text(s) }

// MakeNumber returns a Number value.
func MakeNumber(f float64) Number { return Number(f) }

// MakeInt returns a Number value, widening i to float64.
func MakeInt(i int) Number { return Number(i) }

// MakeAbsent returns an Absent value.
func MakeAbsent() Absent { return Absent{} }

// MakeList returns a List with the given elements. The elements are copied
// into a new backing array, so later changes to a slice passed with "xs..."
// are not observed by the List. A nil element is stored as Absent.
func MakeList(elems ...Value) List {
	copied := make([]Value, len(elems))
	for i, e := range elems {
		copied[i] = orAbsent(e)
	}
	return List{copied}
}

// MakeMap returns a Map with the entries of m. The entries are copied into a
// new Go map. A nil value is stored as Absent.
func MakeMap(m map[string]Value) Map {
	entries := make(map[string]Value, len(m))
	for k, v := range m {
		entries[k] = orAbsent(v)
	}
	return Map{entries}
}

// Pair is a key-value pair, used in MakeMapFromPairs.
type Pair struct {
	Key   string
	Value Value
}

// MakeMapFromPairs returns a Map with the given pairs. When several pairs
// share a key, the last one wins.
func MakeMapFromPairs(pairs ...Pair) Map {
	entries := make(map[string]Value, len(pairs))
	for _, p := range pairs {
		entries[p.Key] = orAbsent(p.Value)
	}
	return Map{entries}
}

func orAbsent(v Value) Value {
	if v == nil {
		return Absent{}
	}
	return v
}
