package assets

import (
	"fmt"
	"sync"
)

// DefaultStyleName is the name of the built-in stylesheet.
const DefaultStyleName = "docmark"

// alertIconNames maps alert kinds to icon asset names.
var alertIconNames = map[string]string{
	"note":      "info-circle",
	"tip":       "bulb",
	"important": "warning-message",
	"warning":   "warning-triangle",
	"caution":   "warning-octagon",
}

// IconSet holds the inline SVG shown in front of each alert title.
// It is immutable once loaded and safe for concurrent use.
type IconSet struct {
	icons map[string]string
}

// NewIconSet loads the icon of every alert kind from loader.
// Returns ErrIncompleteIconSet if any icon cannot be loaded.
func NewIconSet(loader AssetLoader) (*IconSet, error) {
	set := &IconSet{icons: make(map[string]string, len(alertIconNames))}
	for kind, name := range alertIconNames {
		svg, err := loader.LoadIcon(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrIncompleteIconSet, kind, err)
		}
		set.icons[kind] = svg
	}
	return set, nil
}

// AlertIcon returns the SVG for kind, or "" for unknown kinds.
func (s *IconSet) AlertIcon(kind string) string {
	return s.icons[kind]
}

var defaultIconSet = sync.OnceValue(func() *IconSet {
	set, err := NewIconSet(defaultLoader)
	if err != nil {
		// embedded icons are part of the binary
		panic(err)
	}
	return set
})

// DefaultIconSet returns the icon set backed by the embedded icons.
func DefaultIconSet() *IconSet {
	return defaultIconSet()
}
