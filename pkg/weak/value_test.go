package weak

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMakers(t *testing.T) {
	TestValue(t, MakeText("foo")).Kind(TextKind).Display("foo").Equal(Text("foo"))
	TestValue(t, MakeNumber(0.5)).Kind(NumberKind).Number(0.5)
	TestValue(t, MakeInt(20)).Kind(NumberKind).Display("20").Equal(Number(20))
	TestValue(t, MakeAbsent()).Kind(AbsentKind).Display("undefined")
	TestValue(t, MakeList(Text("x"), nil)).
		Kind(ListKind).
		Display("x, undefined").
		Repr(`["x" (undefined)]`)
	TestValue(t, MakeMap(map[string]Value{"a": Number(1), "b": nil})).
		Kind(MapKind).
		Index("a", Number(1)).
		Index("b", Absent{}).
		Repr("[&a=(number 1) &b=(undefined)]")
}

func TestMakeMapFromPairs_LastPairWins(t *testing.T) {
	m := MakeMapFromPairs(Pair{"k", Number(1)}, Pair{"j", Text("j")}, Pair{"k", Number(2)})
	TestValue(t, m).Index("k", Number(2)).Index("j", Text("j"))
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestMap_Accessors(t *testing.T) {
	m := MakeMap(map[string]Value{"b": Number(2), "a": Number(1), "c": Number(3)})
	if diff := cmp.Diff([]string{"a", "b", "c"}, m.Keys()); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
	if v, ok := m.Get("b"); !ok || v != Number(2) {
		t.Errorf("Get(b) = (%v, %v), want (2, true)", v, ok)
	}
	if _, ok := m.Get("z"); ok {
		t.Errorf("Get(z) reports existing key")
	}
	var zero Map
	if zero.Len() != 0 || len(zero.Keys()) != 0 {
		t.Errorf("zero Map is not empty")
	}
}

func TestList_Accessors(t *testing.T) {
	l := MakeList(Text("a"), Number(1))
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
	if l.At(0) != Text("a") || l.At(1) != Number(1) {
		t.Errorf("At returns wrong elements")
	}
	var zero List
	if zero.Len() != 0 || len(zero.Elems()) != 0 {
		t.Errorf("zero List is not empty")
	}
}

func TestMakeList_CopiesArguments(t *testing.T) {
	elems := []Value{Text("a"), Text("b")}
	l := MakeList(elems...)
	elems[0] = Text("changed")
	TestValue(t, l).Display("a, b")

	got := l.Elems()
	got[1] = Text("changed")
	TestValue(t, l).Display("a, b")
}

func TestMakeMap_CopiesArgument(t *testing.T) {
	native := map[string]Value{"a": Number(1)}
	m := MakeMap(native)
	native["a"] = Number(2)
	native["b"] = Number(3)
	TestValue(t, m).Index("a", Number(1)).Index("b", Absent{})
}

func TestClone(t *testing.T) {
	inner := MakeList(Text("x"), MakeMap(map[string]Value{"k": Number(1)}))
	orig := MakeMap(map[string]Value{"list": inner, "n": Number(2), "u": Absent{}})

	clone := Clone(orig).(Map)
	TestValue(t, clone).Equal(orig)

	// The clone shares no containers with the original.
	clonedList := clone.entries["list"].(List)
	if &clonedList.elems[0] == &inner.elems[0] {
		t.Errorf("cloned list shares its backing array with the original")
	}
	clone.entries["n"] = Number(42)
	clonedList.elems[1].(Map).entries["k"] = Number(42)
	TestValue(t, orig).Index("n", Number(2))
	TestValue(t, inner.At(1)).Index("k", Number(1))

	for _, v := range sampleValues {
		TestValue(t, Clone(v)).Equal(v)
	}
	TestValue(t, Clone(nil)).Equal(Absent{})
}
