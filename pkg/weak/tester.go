package weak

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// CmpOptions makes cmp.Equal and cmp.Diff compare Values structurally. Unlike
// ==, it considers NaN equal to NaN, and an empty Map or List equal to its
// zero value.
var CmpOptions = cmp.Options{
	cmp.AllowUnexported(Map{}, List{}),
	cmpopts.EquateEmpty(),
	cmp.Comparer(func(a, b Number) bool { return a == b || a.IsNaN() && b.IsNaN() }),
}

// Tester is a helper for testing properties of a value.
type Tester struct {
	t *testing.T
	v Value
}

// TestValue returns a Tester.
func TestValue(t *testing.T, v Value) Tester {
	return Tester{t, v}
}

// Kind tests the Kind of the value.
func (vt Tester) Kind(wantKind Kind) Tester {
	vt.t.Helper()
	if kind := KindOf(vt.v); kind != wantKind {
		vt.t.Errorf("Kind(v) = %s, want %s", kind, wantKind)
	}
	return vt
}

// Display tests the result of ToString on the value.
func (vt Tester) Display(wantString string) Tester {
	vt.t.Helper()
	if s := ToString(vt.v); string(s) != wantString {
		vt.t.Errorf("ToString(v) = %q, want %q", s, wantString)
	}
	return vt
}

// Number tests the result of ToNumber on the value. NaN matches NaN.
func (vt Tester) Number(wantNumber float64) Tester {
	vt.t.Helper()
	if n := ToNumber(vt.v); !cmp.Equal(n, Number(wantNumber), CmpOptions) {
		vt.t.Errorf("ToNumber(v) = %v, want %v", n, wantNumber)
	}
	return vt
}

// Repr tests the Repr of the value.
func (vt Tester) Repr(wantRepr string) Tester {
	vt.t.Helper()
	if repr := Repr(vt.v); repr != wantRepr {
		vt.t.Errorf("Repr(v) = %s, want %s", repr, wantRepr)
	}
	return vt
}

// Equal tests that the value is structurally equal to every one of the given
// values.
func (vt Tester) Equal(others ...Value) Tester {
	vt.t.Helper()
	for _, other := range others {
		if diff := cmp.Diff(other, vt.v, CmpOptions); diff != "" {
			vt.t.Errorf("v differs from %s (-want +got):\n%s", Repr(other), diff)
		}
	}
	return vt
}

// Index tests that indexing the value with the given key returns the wanted
// value.
func (vt Tester) Index(key string, wantVal Value) Tester {
	vt.t.Helper()
	got := Index(vt.v, key)
	if !cmp.Equal(got, wantVal, CmpOptions) {
		vt.t.Errorf("Index(v, %q) -> %s, want %s", key, Repr(got), Repr(wantVal))
	}
	return vt
}

// Add tests that adding the value and rhs gives the wanted value.
func (vt Tester) Add(rhs, wantVal Value) Tester {
	vt.t.Helper()
	got := Add(vt.v, rhs)
	if !cmp.Equal(got, wantVal, CmpOptions) {
		vt.t.Errorf("Add(v, %s) -> %s, want %s", Repr(rhs), Repr(got), Repr(wantVal))
	}
	return vt
}
