package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-docmark/internal/yamlutil"
)

// Sentinel errors for manifest operations.
var (
	ErrManifestNotFound = errors.New("manifest file not found")
	ErrManifestParse    = errors.New("failed to parse manifest")
	ErrManifestInvalid  = errors.New("invalid manifest")
)

// symbolKinds and tagKinds are the kind names a manifest may use.
var (
	symbolKinds = []any{
		"module_doc", "class", "enum", "function", "interface",
		"namespace", "type_alias", "variable", "import",
	}
	tagKinds = []any{
		"deprecated", "example", "category", "see", "since", "param", "return",
	}
)

// Manifest describes a documentation graph: the modules of a package and
// the doc comments of their symbols.
type Manifest struct {
	Package string           `yaml:"package" json:"package"`
	Modules []ManifestModule `yaml:"modules" json:"modules"`
}

// ManifestModule is one module of the graph.
type ManifestModule struct {
	Path    string           `yaml:"path" json:"path"`
	Name    string           `yaml:"name" json:"name"`
	Main    bool             `yaml:"main" json:"main"`
	Symbols []ManifestSymbol `yaml:"symbols" json:"symbols"`
}

// ManifestSymbol is a documented symbol. Name is the qualified name.
type ManifestSymbol struct {
	Name string        `yaml:"name" json:"name"`
	Kind string        `yaml:"kind" json:"kind"`
	Doc  string        `yaml:"doc" json:"doc"`
	Tags []ManifestTag `yaml:"tags" json:"tags"`
}

// ManifestTag is a block tag of a doc comment.
type ManifestTag struct {
	Kind string `yaml:"kind" json:"kind"`
	Name string `yaml:"name" json:"name"`
	Doc  string `yaml:"doc" json:"doc"`
}

// LoadManifest reads and validates the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- manifest path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates a manifest. Unknown fields are
// rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yamlutil.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}
	return &m, nil
}

// Validate checks that modules are present, unique and well formed.
func (m Manifest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Package, validation.Length(0, MaxPathLength)),
		validation.Field(&m.Modules, validation.Required, validation.By(uniqueModulePaths)),
	)
}

// Validate implements validation.Validatable.
func (m ManifestModule) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Path, validation.Required, validation.Length(1, MaxPathLength), validation.By(noWhitespace)),
		validation.Field(&m.Name, validation.Length(0, MaxPathLength), validation.By(noWhitespace)),
		validation.Field(&m.Symbols),
	)
}

// Validate implements validation.Validatable.
func (s ManifestSymbol) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.By(noWhitespace)),
		validation.Field(&s.Kind, validation.Required, validation.In(symbolKinds...)),
		validation.Field(&s.Tags),
	)
}

// Validate implements validation.Validatable.
func (t ManifestTag) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Kind, validation.Required, validation.In(tagKinds...)),
	)
}

func uniqueModulePaths(value any) error {
	modules, _ := value.([]ManifestModule)
	seen := make(map[string]bool, len(modules))
	for _, mod := range modules {
		if seen[mod.Path] {
			return validation.NewError("docmark.manifest.duplicate_module", "duplicate module path "+mod.Path)
		}
		seen[mod.Path] = true
	}
	return nil
}

// noWhitespace rejects identifiers that could not appear in a link.
// Module references are matched up to the first whitespace.
func noWhitespace(value any) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, " \t\r\n") {
		return validation.NewError("docmark.manifest.whitespace", "must not contain whitespace")
	}
	return nil
}
