package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testEnv returns an Environment writing to buffers, with no DOCMARK_*
// variables visible to the unknown-variable check.
func testEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:     func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdin:   strings.NewReader(stdin),
		Stdout:  &stdout,
		Stderr:  &stderr,
		Environ: func() []string { return nil },
	}
	return env, &stdout, &stderr
}

// writeTestFile writes content under dir and returns its path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// testManifest has a main module with examples and a second module with
// a class, so both page layouts are produced.
const testManifest = `package: "@test/pkg"
modules:
  - path: /mod.ts
    main: true
    symbols:
      - name: mod
        kind: module_doc
        doc: "Entry point of the package."
        tags:
          - kind: example
            doc: "Basic usage\n\nrun();"
      - name: run
        kind: function
        doc: "Runs with a {@link Point}."
        tags:
          - kind: deprecated
            doc: "Use *start* instead."
  - path: /util.ts
    symbols:
      - name: Point
        kind: class
        doc: "A point in space."
      - name: helpers
        kind: import
`
