// Package progtest contains utilities for testing [prog.Program]
// implementations by running them with piped standard streams.
package progtest

import (
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/NilsRamstoeck/weakly-typed/pkg/must"
	"github.com/NilsRamstoeck/weakly-typed/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + quote(o.content)
	}
	return quote(o.content)
}

// ThatWeakly returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "weakly -bad-flag" exits with 2 reads
// like:
//
//	ThatWeakly("-bad-flag").ExitsWith(2)
func ThatWeakly(args ...string) Case {
	return Case{args: append([]string{"weakly"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to the
// program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatWeakly("-version").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.stdin, c.args...)
			if exit != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", exit, c.want.exitCode)
			}
			if !matchOutput(stdout, c.want.stdout) {
				t.Errorf("got stdout %v, want %v", quote(stdout), c.want.stdout)
			}
			if !matchOutput(stderr, c.want.stderr) {
				t.Errorf("got stderr %v, want %v", quote(stderr), c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given input and arguments, the first of which
// is the program name. It returns the exit code and the output written to
// stdout and stderr.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	// Write stdin in a goroutine, since the program may not read all of it.
	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	// Drain stdout and stderr while the program runs, so that it doesn't
	// block on a full pipe.
	stdoutCh := readAllAsync(r1)
	stderrCh := readAllAsync(r2)

	exit = prog.Run([3]*os.File{r0, w1, w2}, args, p)
	r0.Close()
	w1.Close()
	w2.Close()
	return exit, <-stdoutCh, <-stderrCh
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.ReadAllAndClose(r))
	}()
	return ch
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}

func quote(s string) string {
	if len(s) > 200 {
		return strconv.Quote(s[:200]) + "..."
	}
	return strconv.Quote(s)
}
