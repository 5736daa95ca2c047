package assets

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed icons/*
var icons embed.FS

//go:embed styles/*
var styles embed.FS

// defaultLoader backs the built-in icon set.
var defaultLoader = NewEmbeddedLoader()

// EmbeddedLoader loads assets from embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadIcon loads an SVG icon from embedded assets by name.
// The name should not include the .svg extension.
func (e *EmbeddedLoader) LoadIcon(name string) (string, error) {
	if err := validateName("icon", name); err != nil {
		return "", err
	}

	content, err := icons.ReadFile("icons/" + name + ".svg")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrIconNotFound, name)
	}

	return strings.TrimSpace(string(content)), nil
}

// LoadStyle loads a CSS style from embedded assets by name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := validateName("style", name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
