package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("io.Copy() error = %v", err)
	}
	return buf.String()
}

func TestRunTranspileWritesHeaderAndBody(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "script.py")
	if err := os.WriteFile(path, []byte("x + 1\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	usingQt = false
	var runErr error
	out := captureStdout(t, func() {
		runErr = runTranspile(rootCmd, []string{path})
	})
	if runErr != nil {
		t.Fatalf("runTranspile() error = %v", runErr)
	}

	wantPrefix := "// generate by py2cpp\n// original source code: " + path + "\n#include \"py2cpp/py2cpp.hpp\"\n"
	if !strings.HasPrefix(out, wantPrefix) {
		t.Fatalf("output %q does not start with %q", out, wantPrefix)
	}
	if !strings.Contains(out, "x + 1;") {
		t.Fatalf("output %q does not contain translated body", out)
	}
}

func TestRunTranspileMissingFileIsError(t *testing.T) {
	err := runTranspile(rootCmd, []string{filepath.Join(t.TempDir(), "missing.py")})
	if err == nil {
		t.Fatal("expected an error for a missing file, got nil")
	}
}

func TestRunTranspileUsingQtSeedsPointerType(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "widget.py")
	source := "def make(parent):\n    \"\"\":param QWidget parent:\"\"\"\n    pass\n"
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	usingQt = true
	defer func() { usingQt = false }()

	var runErr error
	out := captureStdout(t, func() {
		runErr = runTranspile(rootCmd, []string{path})
	})
	if runErr != nil {
		t.Fatalf("runTranspile() error = %v", runErr)
	}
	if !strings.Contains(out, "QWidget* parent") {
		t.Fatalf("output %q does not reflect the seeded QWidget pointer type", out)
	}
}
