package assets

import (
	"errors"
	"strings"
	"testing"
)

// stubLoader serves icons from a map.
type stubLoader map[string]string

func (s stubLoader) LoadIcon(name string) (string, error) {
	if svg, ok := s[name]; ok {
		return svg, nil
	}
	return "", ErrIconNotFound
}

func (s stubLoader) LoadStyle(string) (string, error) {
	return "", ErrStyleNotFound
}

func TestNewIconSet(t *testing.T) {
	t.Parallel()

	t.Run("complete loader", func(t *testing.T) {
		t.Parallel()

		loader := stubLoader{}
		for _, name := range alertIconNames {
			loader[name] = "<svg>" + name + "</svg>"
		}

		set, err := NewIconSet(loader)
		if err != nil {
			t.Fatalf("NewIconSet() error = %v", err)
		}
		if got := set.AlertIcon("tip"); got != "<svg>bulb</svg>" {
			t.Errorf("AlertIcon(\"tip\") = %q, want <svg>bulb</svg>", got)
		}
		if got := set.AlertIcon("unknown"); got != "" {
			t.Errorf("AlertIcon(\"unknown\") = %q, want empty", got)
		}
	})

	t.Run("missing icon returns ErrIncompleteIconSet", func(t *testing.T) {
		t.Parallel()

		_, err := NewIconSet(stubLoader{"bulb": "<svg/>"})
		if !errors.Is(err, ErrIncompleteIconSet) {
			t.Errorf("NewIconSet() error = %v, want ErrIncompleteIconSet", err)
		}
	})
}

func TestDefaultIconSet(t *testing.T) {
	t.Parallel()

	set := DefaultIconSet()
	for kind := range alertIconNames {
		if got := set.AlertIcon(kind); !strings.HasPrefix(got, "<svg") {
			t.Errorf("AlertIcon(%q) = %q, want svg markup", kind, got)
		}
	}
	if DefaultIconSet() != set {
		t.Error("DefaultIconSet() should return the shared instance")
	}
}
