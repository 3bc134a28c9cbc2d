package weak

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var planetsYAML = `
planets: &planets
  Mercury: 0.4
  Venus: 0.7
  Earth: 1
  Mars: 1.5
list:
  - "1"
  - 5
  - [*planets, "20"]
missing: ~
when: 2001-12-14
quoted: "5"
`

func TestFromYAML(t *testing.T) {
	doc, err := FromYAML([]byte(planetsYAML))
	if err != nil {
		t.Fatalf("FromYAML -> error %v", err)
	}
	planets := MakeMap(map[string]Value{
		"Mercury": Number(0.4), "Venus": Number(0.7), "Earth": Number(1), "Mars": Number(1.5)})
	TestValue(t, doc).
		Kind(MapKind).
		Index("planets", planets).
		Index("list", MakeList(Text("1"), Number(5), MakeList(planets, Text("20")))).
		Index("missing", Absent{}).
		Index("when", Text("2001-12-14")).
		Index("quoted", Text("5"))

	got := Add(Index(doc, "list"), Index(doc, "planets"))
	TestValue(t, got).Equal(Text("1, 5, [object Object], 20[object Object]"))
}

func TestFromYAML_Scalars(t *testing.T) {
	tests := []struct {
		src  string
		want Value
	}{
		{"", Absent{}},
		{"null", Absent{}},
		{"abc", Text("abc")},
		{"42", Number(42)},
		{"-0.5", Number(-0.5)},
		{"0x10", Number(16)},
		{".inf", posInf},
		{".nan", nan},
		{"[]", List{}},
		{"{}", Map{}},
		{"{1: one}", MakeMap(map[string]Value{"1": Text("one")})},
	}
	for _, test := range tests {
		got, err := FromYAML([]byte(test.src))
		if err != nil {
			t.Errorf("FromYAML(%q) -> error %v", test.src, err)
			continue
		}
		if diff := cmp.Diff(test.want, got, CmpOptions); diff != "" {
			t.Errorf("FromYAML(%q) (-want +got):\n%s", test.src, diff)
		}
	}
}

func TestFromYAML_Errors(t *testing.T) {
	_, err := FromYAML([]byte("a: [true]"))
	var liftErr *LiftError
	if !errors.As(err, &liftErr) {
		t.Fatalf("FromYAML -> error %v, want *LiftError", err)
	}
	if diff := cmp.Diff(&LiftError{GoType: "YAML !!bool", Path: []string{"a", "0"}}, liftErr); diff != "" {
		t.Errorf("LiftError (-want +got):\n%s", diff)
	}

	_, err = FromYAML([]byte("? [a]\n: b"))
	if !errors.As(err, &liftErr) {
		t.Errorf("FromYAML with non-scalar key -> error %v, want *LiftError", err)
	}

	_, err = FromYAML([]byte("a: [unclosed"))
	if err == nil || !strings.HasPrefix(err.Error(), "parse YAML: ") {
		t.Errorf("FromYAML with bad syntax -> error %v, want parse error", err)
	}
}

func TestFromYAML_Merge(t *testing.T) {
	doc, err := FromYAML([]byte(`
base: &base {a: 1, b: 2}
other: &other {b: 20, c: 30}
one:
  <<: *base
  b: 3
many:
  <<: [*other, *base]
  d: 4
quoted: {"<<": 5}
`))
	if err != nil {
		t.Fatalf("FromYAML -> error %v", err)
	}
	TestValue(t, doc).
		Index("one", MakeMap(map[string]Value{"a": Number(1), "b": Number(3)})).
		Index("many", MakeMap(map[string]Value{
			"a": Number(1), "b": Number(20), "c": Number(30), "d": Number(4)})).
		Index("quoted", MakeMap(map[string]Value{"<<": Number(5)}))

	_, err = FromYAML([]byte("a: {<<: 5}"))
	if err == nil || !strings.Contains(err.Error(), "merge at [a] requires") {
		t.Errorf("FromYAML with scalar merge value -> error %v", err)
	}
}

func TestFromYAML_SelfReferentialAnchor(t *testing.T) {
	_, err := FromYAML([]byte("a: &a [*a]\n"))
	if err == nil || err.Error() != `anchor "a" value contains itself` {
		t.Errorf("FromYAML -> error %v, want anchor error", err)
	}

	// Reusing an anchor without nesting it in itself is fine.
	doc, err := FromYAML([]byte("a: &a [x]\nb: [*a, *a]\n"))
	if err != nil {
		t.Fatalf("FromYAML -> error %v", err)
	}
	TestValue(t, doc).Index("b", MakeList(MakeList(Text("x")), MakeList(Text("x"))))
}

func TestFromYAML_ExcessiveAliasing(t *testing.T) {
	// Each level refers to the previous one ten times, so the last level
	// expands to 10^9 scalars.
	var sb strings.Builder
	sb.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i < 10; i++ {
		fmt.Fprintf(&sb, "l%d: &l%d [", i, i)
		for j := 0; j < 10; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "*l%d", i-1)
		}
		sb.WriteString("]\n")
	}
	_, err := FromYAML([]byte(sb.String()))
	if !errors.Is(err, errExcessiveAliasing) {
		t.Errorf("FromYAML -> error %v, want %v", err, errExcessiveAliasing)
	}
}

var planetsTOML = `
list = ["1", 5, ["20"]]
when = 1979-05-27T07:32:00Z

[planets]
Mercury = 0.4
Venus = 0.7
Earth = 1
Mars = 1.5
`

func TestFromTOML(t *testing.T) {
	doc, err := FromTOML([]byte(planetsTOML))
	if err != nil {
		t.Fatalf("FromTOML -> error %v", err)
	}
	TestValue(t, doc).
		Kind(MapKind).
		Index("list", MakeList(Text("1"), Number(5), MakeList(Text("20")))).
		Index("when", Text("1979-05-27T07:32:00Z")).
		Index("planets", MakeMap(map[string]Value{
			"Mercury": Number(0.4), "Venus": Number(0.7), "Earth": Number(1), "Mars": Number(1.5)}))
}

func TestFromTOML_Errors(t *testing.T) {
	_, err := FromTOML([]byte("ok = true"))
	var liftErr *LiftError
	if !errors.As(err, &liftErr) {
		t.Errorf("FromTOML -> error %v, want *LiftError", err)
	}

	_, err = FromTOML([]byte("a = "))
	if err == nil || !strings.HasPrefix(err.Error(), "parse TOML: ") {
		t.Errorf("FromTOML with bad syntax -> error %v, want parse error", err)
	}
}
