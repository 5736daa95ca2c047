package main

import (
	"errors"
	"testing"

	docmark "github.com/alnah/go-docmark"
	"github.com/alnah/go-docmark/internal/config"
)

func TestGraphFromManifest(t *testing.T) {
	t.Parallel()

	m, err := config.ParseManifest([]byte(testManifest))
	if err != nil {
		t.Fatal(err)
	}
	g, err := graphFromManifest(m)
	if err != nil {
		t.Fatalf("graphFromManifest() error = %v", err)
	}

	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
	entry, ok := g.FindModule("/mod.ts")
	if !ok || !entry.Main {
		t.Fatalf("FindModule(/mod.ts) = %+v, %v", entry, ok)
	}
	symbols, err := g.Symbols(entry)
	if err != nil {
		t.Fatal(err)
	}
	run := symbols[1]
	if run.Name != "run" || run.Kind != docmark.KindFunction {
		t.Errorf("symbols[1] = %+v", run)
	}
	if len(run.Doc.Tags) != 1 || run.Doc.Tags[0].Kind != docmark.TagDeprecated {
		t.Errorf("run tags = %+v", run.Doc.Tags)
	}
	if !g.HasSymbol(docmark.ModulePath{Path: "/util.ts"}, "Point") {
		t.Error("HasSymbol(util.ts, Point) = false")
	}
}

func TestLoadGraph_NotFound(t *testing.T) {
	t.Parallel()

	_, err := loadGraph("/nonexistent/docs.yaml")
	if !errors.Is(err, config.ErrManifestNotFound) {
		t.Errorf("error = %v, want ErrManifestNotFound", err)
	}
}
