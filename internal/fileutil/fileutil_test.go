package fileutil_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-docmark/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestSafeJoin - Output paths stay under the root
// ---------------------------------------------------------------------------

func TestSafeJoin(t *testing.T) {
	t.Parallel()

	root := filepath.Join("out", "docs")
	tests := []struct {
		name     string
		segments []string
		want     string
		wantErr  error
	}{
		{
			name:     "module index",
			segments: []string{"/mod.ts", "index.html"},
			want:     filepath.Join(root, "mod.ts", "index.html"),
		},
		{
			name:     "nested symbol page",
			segments: []string{"/lib/util.ts", "~", "Point.x.html"},
			want:     filepath.Join(root, "lib", "util.ts", "~", "Point.x.html"),
		},
		{
			name:     "inner dot dot stays inside",
			segments: []string{"/a/../b.ts", "index.html"},
			want:     filepath.Join(root, "b.ts", "index.html"),
		},
		{
			name:     "escape through parent",
			segments: []string{"/../../etc", "passwd"},
			wantErr:  fileutil.ErrPathEscape,
		},
		{
			name:     "escape to root itself parent",
			segments: []string{".."},
			wantErr:  fileutil.ErrPathEscape,
		},
		{
			name:     "empty segment",
			segments: []string{"", "index.html"},
			wantErr:  fileutil.ErrInvalidSegment,
		},
		{
			name:     "null byte",
			segments: []string{"a\x00b"},
			wantErr:  fileutil.ErrInvalidSegment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.SafeJoin(root, tt.segments...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SafeJoin() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SafeJoin() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SafeJoin() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Write through a temp file
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates parents and writes content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a", "b", "index.html")
		if err := fileutil.WriteFileAtomic(path, strings.NewReader("<p>hi</p>"), 0o750, 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "<p>hi</p>" {
			t.Errorf("content = %q", data)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o644 {
			t.Errorf("perm = %v, want 0644", info.Mode().Perm())
		}
	})

	t.Run("replaces existing file and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "styles.css")
		for _, content := range []string{"old", "new"} {
			if err := fileutil.WriteFileAtomic(path, bytes.NewBufferString(content), 0o750, 0o644); err != nil {
				t.Fatal(err)
			}
		}
		data, _ := os.ReadFile(path)
		if string(data) != "new" {
			t.Errorf("content = %q, want new", data)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("dir has %d entries, want 1", len(entries))
		}
	})
}

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "x.yaml")
	if err := os.WriteFile(file, []byte("a: 1"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true")
	}
}
