package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	flag "github.com/spf13/pflag"

	docmark "github.com/alnah/go-docmark"
)

// renderFrontMatter selects where a rendered file lives in the graph.
type renderFrontMatter struct {
	Module string `yaml:"module" toml:"module" json:"module"`
	Symbol string `yaml:"symbol" toml:"symbol" json:"symbol"`
}

// runRenderCmd renders one markdown file, or stdin for "-", to HTML.
func runRenderCmd(args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) != 1 {
		printRenderUsage(env.Stderr)
		return fmt.Errorf("%w: render takes exactly one input", ErrNoInput)
	}

	cfg, err := loadSettings(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeStyleFlags(flags.style, cfg)
	mergeTOCFlags(flags.toc, cfg)
	if flags.rewriteBase != "" {
		cfg.Render.RewriteBase = flags.rewriteBase
	}
	if flags.noTOC {
		cfg.Render.NoTOC = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	start := env.Now()
	source, err := readInput(positional[0], env.Stdin)
	if err != nil {
		return err
	}

	var fm renderFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &fm)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	graph := docmark.NewGraph()
	if flags.manifest != "" {
		if graph, err = loadGraph(flags.manifest); err != nil {
			return err
		}
	}

	renderer, err := docmark.NewRenderer(rendererOptions(cfg)...)
	if err != nil {
		return err
	}

	rewriter, err := baseURLRewriter(cfg.Render.RewriteBase)
	if err != nil {
		return err
	}
	var opts []docmark.ContextOption
	if rewriter != nil {
		opts = append(opts, docmark.WithURLRewriter(rewriter))
	}
	var toc *docmark.TOC
	if cfg.TOC.Enabled && !cfg.Render.NoTOC && !flags.summary && !flags.strip {
		toc = docmark.NewTOC()
		opts = append(opts, docmark.WithHeadingAdapter(toc))
	}
	rc := docmark.NewRenderContext(graph, framePosition(graph, fm), opts...)

	out, err := renderDocument(renderer, rc, string(body), flags, cfg.Render.NoTOC)
	if err != nil {
		return err
	}
	if toc != nil {
		minDepth, maxDepth := tocDepths(cfg)
		out = toc.HTML(cfg.TOC.Title, minDepth, maxDepth) + out
	}

	if err := writeOutput(flags.output, out, env.Stdout); err != nil {
		return err
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Rendered %s (%v)\n", positional[0], env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// renderDocument renders md in the mode selected by flags.
func renderDocument(r *docmark.Renderer, rc *docmark.RenderContext, md string, flags *renderFlags, noTOC bool) (string, error) {
	switch {
	case flags.strip:
		return r.Strip(rc, md) + "\n", nil
	case flags.summary:
		out, err := r.MarkdownToHTML(rc, md, docmark.MarkdownOptions{TitleOnly: true})
		if err != nil {
			return "", err
		}
		return out + "\n", nil
	default:
		out, err := r.RenderMarkdown(rc, md, noTOC)
		if err != nil {
			return "", err
		}
		return out + "\n", nil
	}
}

// framePosition picks the render position named by the front matter.
// A module unknown to the graph is still used for relative hrefs.
func framePosition(g *docmark.Graph, fm renderFrontMatter) docmark.Position {
	if fm.Module == "" {
		return docmark.RootPosition()
	}
	m, ok := g.FindModule(fm.Module)
	if !ok {
		m = docmark.ModulePath{Path: fm.Module}
	}
	if fm.Symbol != "" {
		return docmark.SymbolPosition(m, fm.Symbol)
	}
	return docmark.ModulePosition(m)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- input path is user-provided
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return data, nil
}

func writeOutput(path, content string, stdout io.Writer) error {
	if path == "" || path == "-" {
		if _, err := io.WriteString(stdout, content); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	if err := writeFile(path, strings.NewReader(content)); err != nil {
		return err
	}
	return nil
}
