package weak

import (
	"math"
	"testing"

	. "github.com/NilsRamstoeck/weakly-typed/pkg/tt"
)

func TestToString(t *testing.T) {
	Test(t, Fn("ToString", ToString), Table{
		// Text
		Args(Text("foo")).Rets(Text("foo")),
		Args(Text("")).Rets(Text("")),

		// Number
		Args(Number(5)).Rets(Text("5")),
		Args(Number(0.4)).Rets(Text("0.4")),
		Args(Number(-2)).Rets(Text("-2")),
		Args(Number(1.5)).Rets(Text("1.5")),
		Args(Number(0.1 + 0.2)).Rets(Text("0.30000000000000004")),
		// Never in scientific notation.
		Args(Number(1e21)).Rets(Text("1000000000000000000000")),
		Args(Number(1e-7)).Rets(Text("0.0000001")),
		Args(Number(math.Copysign(0, -1))).Rets(Text("-0")),
		Args(nan).Rets(Text("NaN")),
		Args(posInf).Rets(Text("inf")),
		Args(negInf).Rets(Text("-inf")),

		// Map
		Args(Map{}).Rets(Text("[object Object]")),
		Args(MakeMap(map[string]Value{"foo": Text("bar")})).Rets(Text("[object Object]")),

		// Absent
		Args(Absent{}).Rets(Text("undefined")),
		Args(nil).Rets(Text("undefined")),

		// List
		Args(MakeList(Text("a"), Number(1), Absent{})).Rets(Text("a, 1, undefined")),
		Args(MakeList(Text("a"))).Rets(Text("a")),
		Args(MakeList(Map{}, Map{})).Rets(Text("[object Object], [object Object]")),
		// Nested lists are flattened.
		Args(MakeList(Text("a"), MakeList(Text("b"), MakeList(Text("c"))), Text("d"))).
			Rets(Text("a, b, c, d")),
		// Empty lists convert to "".
		Args(List{}).Rets(Text("")),
		Args(MakeList()).Rets(Text("")),
		Args(MakeList(Text("a"), List{}, Text("b"))).Rets(Text("a, , b")),
	})
}

func TestDisplay(t *testing.T) {
	Test(t, Fn("Display", Display), Table{
		Args(Number(5)).Rets("5"),
		Args(MakeList(Number(1), Text("x"))).Rets("1, x"),
		Args(Absent{}).Rets("undefined"),
	})
}

var sampleValues = []Value{
	Text(""), Text("foo"), Text("5"),
	Number(0), Number(0.4), Number(-12), nan, posInf,
	Map{}, MakeMap(map[string]Value{"Earth": Number(1)}),
	List{}, MakeList(Text("a"), MakeList(Number(2), Map{})),
	Absent{},
}

func TestToString_Idempotent(t *testing.T) {
	for _, v := range sampleValues {
		once := ToString(v)
		if twice := ToString(once); twice != once {
			t.Errorf("ToString(ToString(%s)) = %q, want %q", Repr(v), twice, once)
		}
	}
}

func TestString_MatchesToString(t *testing.T) {
	for _, v := range sampleValues {
		if s, want := v.String(), string(ToString(v)); s != want {
			t.Errorf("(%s).String() = %q, want %q", Repr(v), s, want)
		}
	}
}
