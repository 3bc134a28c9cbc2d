package weak

import (
	"testing"

	. "github.com/NilsRamstoeck/weakly-typed/pkg/tt"
)

func TestKind(t *testing.T) {
	TestValue(t, Text("")).Kind(TextKind)
	TestValue(t, Number(1)).Kind(NumberKind)
	TestValue(t, nan).Kind(NumberKind)
	TestValue(t, Map{}).Kind(MapKind)
	TestValue(t, List{}).Kind(ListKind)
	TestValue(t, Absent{}).Kind(AbsentKind)
	TestValue(t, nil).Kind(AbsentKind)
}

func TestKind_String(t *testing.T) {
	Test(t, Fn("Kind.String", Kind.String), Table{
		Args(TextKind).Rets("string"),
		Args(NumberKind).Rets("number"),
		Args(MapKind).Rets("object"),
		Args(ListKind).Rets("array"),
		Args(AbsentKind).Rets("undefined"),
		Args(Kind(42)).Rets("!!invalid-kind"),
	})
}
