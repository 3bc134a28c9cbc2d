package weakprog

import "github.com/NilsRamstoeck/weakly-typed/pkg/weak"

var sgrForKind = map[weak.Kind]string{
	weak.TextKind:   "32",
	weak.NumberKind: "33",
	weak.MapKind:    "1;34",
	weak.ListKind:   "1;36",
	weak.AbsentKind: "2",
}

func sgrStyle(k weak.Kind, s string) string {
	return "\033[" + sgrForKind[k] + "m" + s + "\033[m"
}
