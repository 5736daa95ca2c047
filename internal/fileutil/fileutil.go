// Package fileutil writes generated pages under an output root.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrPathEscape     = errors.New("path escapes output directory")
	ErrInvalidSegment = errors.New("path segment is empty or contains a null byte")
)

// SafeJoin joins slash-separated segments under root and rejects results
// outside it. Leading slashes of a segment are ignored, so "/mod.ts"
// resolves to root/mod.ts.
func SafeJoin(root string, segments ...string) (string, error) {
	parts := []string{root}
	for _, seg := range segments {
		if seg == "" || strings.ContainsRune(seg, 0) {
			return "", fmt.Errorf("%w: %q", ErrInvalidSegment, seg)
		}
		parts = append(parts, filepath.FromSlash(strings.TrimLeft(seg, "/")))
	}
	joined := filepath.Join(parts...)

	rel, err := filepath.Rel(filepath.Clean(root), joined)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscape, strings.Join(segments, "/"))
	}
	return joined, nil
}

// WriteFileAtomic writes r to path through a temp file in the same
// directory, creating parent directories with dirPerm. Readers never see a
// partially written file.
func WriteFileAtomic(path string, r io.Reader, dirPerm, filePerm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".docmark-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
