// Package rc loads the rc file of weakly, a TOML file that supplies defaults
// for command-line flags.
//
// An rc file looks like this:
//
//	# Show values in their kind-tagged representation.
//	repr = true
//	# One of "auto", "always" and "never".
//	color = "auto"
package rc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/NilsRamstoeck/weakly-typed/pkg/logutil"
)

var logger = logutil.GetLogger("[rc] ")

// Config is the content of an rc file.
type Config struct {
	Repr  bool   `toml:"repr"`
	Color string `toml:"color"`
}

type unknownKeysError struct {
	path string
	keys []string
}

func (e unknownKeysError) Error() string {
	return fmt.Sprintf("%s: unknown keys: %s", e.path, strings.Join(e.keys, ", "))
}

// DefaultPath returns the path of the rc file used when none is specified,
// rc.toml in the weakly directory inside the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "weakly", "rc.toml"), nil
}

// Load reads the rc file at path. Keys that Config doesn't know about are an
// error.
func Load(path string) (Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, unknownKeysError{path, keys}
	}
	logger.Printf("loaded %s: %+v", path, c)
	return c, nil
}

// LoadDefault is like Load, but uses DefaultPath, and returns a zero Config
// if the file does not exist.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		logger.Println("cannot determine rc path:", err)
		return Config{}, nil
	}
	c, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Println("no rc file at", path)
		return Config{}, nil
	}
	return c, err
}
