// Weakly demonstrates the implicit coercions of a weakly-typed language. Run
// without arguments, it prints the result of adding a list and an object; its
// commands lift YAML and TOML documents into values and apply the language's
// operators to them.
package main

import (
	"os"

	"github.com/NilsRamstoeck/weakly-typed/pkg/buildinfo"
	"github.com/NilsRamstoeck/weakly-typed/pkg/prog"
	"github.com/NilsRamstoeck/weakly-typed/pkg/weakprog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, weakprog.Program)))
}
