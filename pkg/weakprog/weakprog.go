// Package weakprog is the subprogram of weakly that lifts documents into
// values, operates on them and prints the result.
package weakprog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/NilsRamstoeck/weakly-typed/pkg/demo"
	"github.com/NilsRamstoeck/weakly-typed/pkg/logutil"
	"github.com/NilsRamstoeck/weakly-typed/pkg/prog"
	"github.com/NilsRamstoeck/weakly-typed/pkg/rc"
	"github.com/NilsRamstoeck/weakly-typed/pkg/sys"
	"github.com/NilsRamstoeck/weakly-typed/pkg/weak"
)

var logger = logutil.GetLogger("[weakprog] ")

// ExitDocumentError is the exit status when a document can't be read or
// lifted into a value.
const ExitDocumentError = 3

// Program is the weakprog subprogram. It is always suitable, so it should be
// the last one in a prog.Composite.
var Program prog.Program = program{}

type program struct{}

type command struct {
	minArgs, maxArgs int
	run              func(doc weak.Value, keys []string) weak.Value
}

// The first argument of every command is the file to read. A negative
// maxArgs means no limit.
var commands = map[string]command{
	"show": {1, 1, func(doc weak.Value, _ []string) weak.Value { return doc }},
	"add": {1, 1, func(doc weak.Value, _ []string) weak.Value {
		return weak.Add(weak.Index(doc, "left"), weak.Index(doc, "right"))
	}},
	"num": {1, 1, func(doc weak.Value, _ []string) weak.Value { return weak.ToNumber(doc) }},
	"index": {1, -1, func(doc weak.Value, keys []string) weak.Value {
		return weak.IndexPath(doc, keys...)
	}},
}

func (program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	opts, err := resolveOptions(fds[1], f)
	if err != nil {
		return err
	}

	var result weak.Value
	if len(args) == 0 {
		result = demo.Result()
	} else {
		name, rest := args[0], args[1:]
		cmd, ok := commands[name]
		if !ok {
			return prog.BadUsage("unknown command: " + name)
		}
		if len(rest) < cmd.minArgs || (cmd.maxArgs >= 0 && len(rest) > cmd.maxArgs) {
			return prog.BadUsage("wrong number of arguments to " + name)
		}
		doc, err := loadDocument(rest[0], fds[0])
		if err != nil {
			fmt.Fprintln(fds[2], err)
			return prog.Exit(ExitDocumentError)
		}
		result = cmd.run(doc, rest[1:])
	}

	fmt.Fprintln(fds[1], format(result, opts))
	return nil
}

type options struct {
	repr, color bool
}

func resolveOptions(out *os.File, f *prog.Flags) (options, error) {
	var cfg rc.Config
	if !f.NoRc {
		var err error
		if f.RC != "" {
			cfg, err = rc.Load(f.RC)
		} else {
			cfg, err = rc.LoadDefault()
		}
		if err != nil {
			return options{}, fmt.Errorf("cannot load rc file: %w", err)
		}
	}

	color := f.Color
	if color == "" {
		color = cfg.Color
	}
	opts := options{repr: f.Repr || cfg.Repr}
	switch color {
	case "", prog.ColorAuto:
		opts.color = sys.IsATTY(out)
	case prog.ColorAlways:
		opts.color = true
	case prog.ColorNever:
		opts.color = false
	default:
		return options{}, fmt.Errorf("invalid color setting in rc file: %q", color)
	}
	logger.Printf("options: %+v", opts)
	return opts, nil
}

// Loads a document from a file. The format is determined by the extension;
// "-" reads a YAML document from stdin.
func loadDocument(path string, stdin io.Reader) (weak.Value, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var doc weak.Value
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		logger.Println("reading", path, "as TOML")
		doc, err = weak.FromTOML(data)
	case "", ".yaml", ".yml", ".json":
		// JSON documents are also YAML documents.
		logger.Println("reading", path, "as YAML")
		doc, err = weak.FromYAML(data)
	default:
		return nil, fmt.Errorf("%s: unknown document format %s", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func format(v weak.Value, opts options) string {
	switch {
	case !opts.repr:
		return weak.Display(v)
	case opts.color:
		return weak.ReprStyled(v, sgrStyle)
	default:
		return weak.Repr(v)
	}
}
