package logutil

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NilsRamstoeck/weakly-typed/pkg/must"
)

func TestGetLogger_DiscardsByDefault(t *testing.T) {
	logger := GetLogger("[test] ")
	if logger.Writer() != io.Discard {
		t.Errorf("new logger writes to %v, want io.Discard", logger.Writer())
	}
}

func TestSetOutput(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	logger := GetLogger("[test] ")
	var buf bytes.Buffer
	SetOutput(&buf)
	logger.Print("hello")
	if !strings.Contains(buf.String(), "[test] ") || !strings.HasSuffix(buf.String(), "hello\n") {
		t.Errorf("log output is %q", buf.String())
	}
}

func TestSetOutputFile(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	fname := filepath.Join(t.TempDir(), "log")
	logger := GetLogger("[test] ")
	if err := SetOutputFile(fname); err != nil {
		t.Fatalf("SetOutputFile -> %v", err)
	}
	logger.Print("to file")
	SetOutputFile("")
	if content := must.ReadFileString(fname); !strings.HasSuffix(content, "to file\n") {
		t.Errorf("log file contains %q", content)
	}

	if err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir")); err == nil {
		t.Errorf("SetOutputFile in a non-existent dir -> nil error")
	}
}
