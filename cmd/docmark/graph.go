package main

import (
	"fmt"

	docmark "github.com/alnah/go-docmark"
	"github.com/alnah/go-docmark/internal/config"
)

// loadGraph reads the manifest at path and builds its documentation graph.
func loadGraph(path string) (*docmark.Graph, error) {
	m, err := config.LoadManifest(path)
	if err != nil {
		return nil, err
	}
	return graphFromManifest(m)
}

// graphFromManifest converts a validated manifest into a Graph.
func graphFromManifest(m *config.Manifest) (*docmark.Graph, error) {
	g := docmark.NewGraph()
	for _, mod := range m.Modules {
		symbols := make([]docmark.Symbol, 0, len(mod.Symbols))
		for _, s := range mod.Symbols {
			symbols = append(symbols, docmark.Symbol{
				Name: s.Name,
				Kind: docmark.SymbolKind(s.Kind),
				Doc:  commentFromManifest(s),
			})
		}
		mp := docmark.ModulePath{Path: mod.Path, Name: mod.Name, Main: mod.Main}
		if err := g.Add(mp, symbols...); err != nil {
			return nil, fmt.Errorf("adding module %s: %w", mod.Path, err)
		}
	}
	return g, nil
}

func commentFromManifest(s config.ManifestSymbol) docmark.Comment {
	c := docmark.Comment{Doc: s.Doc}
	for _, t := range s.Tags {
		c.Tags = append(c.Tags, docmark.Tag{
			Kind: docmark.TagKind(t.Kind),
			Name: t.Name,
			Doc:  t.Doc,
		})
	}
	return c
}
