package weak

// Kind identifies which of the five variants a Value is.
type Kind uint8

// Possible values of Kind.
const (
	TextKind Kind = iota
	NumberKind
	MapKind
	ListKind
	AbsentKind
)

var kindNames = [...]string{
	TextKind:   "string",
	NumberKind: "number",
	MapKind:    "object",
	ListKind:   "array",
	AbsentKind: "undefined",
}

// String returns the name the emulated language uses for the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "!!invalid-kind"
}

// KindOf returns the kind of v. It is the same as v.Kind(), except that it
// also accepts a nil Value, which it treats like Absent.
func KindOf(v Value) Kind {
	if v == nil {
		return AbsentKind
	}
	return v.Kind()
}
