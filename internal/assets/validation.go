package assets

import "fmt"

// maxNameLength bounds icon and style names.
const maxNameLength = 64

// validateName checks that an icon or style name is a bare file stem made
// of ASCII letters, digits, '-' and '_'. kind names the asset in errors.
func validateName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty %s name", ErrInvalidAssetName, kind)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: %s name longer than %d bytes", ErrInvalidAssetName, kind, maxNameLength)
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return fmt.Errorf("%w: %s name %q has character %q", ErrInvalidAssetName, kind, name, c)
		}
	}
	return nil
}
