package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	docmark "github.com/alnah/go-docmark"
	"github.com/alnah/go-docmark/internal/config"
	"github.com/alnah/go-docmark/internal/fileutil"
)

// ErrBuildFailed reports that at least one page could not be written.
var ErrBuildFailed = errors.New("build failed")

// stylesheetName is the stylesheet written next to the pages.
const stylesheetName = "styles.css"

// pageJob is one page of a build. An empty symbol means the module page.
type pageJob struct {
	module     docmark.ModulePath
	symbol     docmark.Symbol
	outputPath string
}

func (j pageJob) label() string {
	if j.symbol.Name == "" {
		return j.module.DisplayName()
	}
	return j.module.DisplayName() + "." + j.symbol.Name
}

// PageResult holds the outcome of a single page.
type PageResult struct {
	Page       string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// pageBuilder renders pages of one graph with shared settings.
type pageBuilder struct {
	renderer *docmark.Renderer
	graph    *docmark.Graph
	cfg      *config.Config
	rewriter docmark.URLRewriter
}

// runBuildCmd renders every module and symbol page of a manifest.
func runBuildCmd(args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) != 1 {
		printBuildUsage(env.Stderr)
		return fmt.Errorf("%w: build takes exactly one manifest", ErrNoInput)
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
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.workers != 0 {
		cfg.Output.Workers = flags.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	outputDir := cfg.Output.DefaultDir
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	graph, err := loadGraph(positional[0])
	if err != nil {
		return err
	}
	renderer, err := docmark.NewRenderer(rendererOptions(cfg)...)
	if err != nil {
		return err
	}
	rewriter, err := baseURLRewriter(cfg.Render.RewriteBase)
	if err != nil {
		return err
	}

	jobs, err := planPages(graph, outputDir)
	if err != nil {
		return err
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	workers := resolvePoolSize(cfg.Output.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Building %d pages with %d workers\n", len(jobs), workers)
	}

	b := &pageBuilder{renderer: renderer, graph: graph, cfg: cfg, rewriter: rewriter}
	results := runPool(ctx, workers, jobs, b.build, func(j pageJob, err error) PageResult {
		return PageResult{Page: j.label(), OutputPath: j.outputPath, Err: err}
	})

	if !flags.noCSS {
		results = append(results, writeStylesheet(renderer, outputDir))
	}

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d outputs", ErrBuildFailed, failed, len(results))
	}
	return nil
}

// planPages lists the pages of g at the paths its default hrefs point to:
// <module>/index.html and <module>/~/<symbol>.html, with the main module
// at the root. Imports get no page; repeated names keep the first symbol.
func planPages(g *docmark.Graph, outputDir string) ([]pageJob, error) {
	var jobs []pageJob
	for m, symbols := range g.All() {
		dir := []string{}
		if !m.Main {
			dir = append(dir, m.Path)
		}

		path, err := fileutil.SafeJoin(outputDir, append(dir, "index.html")...)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", m.DisplayName(), err)
		}
		jobs = append(jobs, pageJob{module: m, outputPath: path})

		seen := make(map[string]bool, len(symbols))
		for _, s := range symbols {
			if s.Kind == docmark.KindModuleDoc || s.Kind == docmark.KindImport || seen[s.Name] {
				continue
			}
			seen[s.Name] = true

			path, err := fileutil.SafeJoin(outputDir, append(dir, "~", s.Name+".html")...)
			if err != nil {
				return nil, fmt.Errorf("symbol %s: %w", s.Name, err)
			}
			jobs = append(jobs, pageJob{module: m, symbol: s, outputPath: path})
		}
	}
	return jobs, nil
}

// build renders and writes one page.
func (b *pageBuilder) build(_ context.Context, j pageJob) PageResult {
	start := time.Now()
	result := PageResult{Page: j.label(), OutputPath: j.outputPath}

	var buf bytes.Buffer
	if j.symbol.Name == "" {
		result.Err = b.writeModule(&buf, j.module)
	} else {
		result.Err = b.writeSymbol(&buf, j.module, j.symbol)
	}
	if result.Err == nil {
		result.Err = writeFile(j.outputPath, &buf)
	}

	result.Duration = time.Since(start)
	return result
}

// renderContext returns a render context at pos and the page's TOC, if enabled.
func (b *pageBuilder) renderContext(pos docmark.Position) (*docmark.RenderContext, *docmark.TOC) {
	var opts []docmark.ContextOption
	if b.rewriter != nil {
		opts = append(opts, docmark.WithURLRewriter(b.rewriter))
	}
	var toc *docmark.TOC
	if b.cfg.TOC.Enabled && !b.cfg.Render.NoTOC {
		toc = docmark.NewTOC()
		opts = append(opts, docmark.WithHeadingAdapter(toc))
	}
	return docmark.NewRenderContext(b.graph, pos, opts...), toc
}

func (b *pageBuilder) tocHTML(toc *docmark.TOC) string {
	if toc == nil {
		return ""
	}
	minDepth, maxDepth := tocDepths(b.cfg)
	return toc.HTML(b.cfg.TOC.Title, minDepth, maxDepth)
}

func (b *pageBuilder) writeModule(w io.Writer, m docmark.ModulePath) error {
	rc, toc := b.renderContext(docmark.ModulePosition(m))
	doc, err := b.renderer.ModuleDoc(rc, m)
	if err != nil {
		return err
	}
	return writeModulePage(w, modulePage{
		Title: m.DisplayName(),
		TOC:   b.tocHTML(toc),
		Doc:   doc,
	})
}

func (b *pageBuilder) writeSymbol(w io.Writer, m docmark.ModulePath, s docmark.Symbol) error {
	rc, toc := b.renderContext(docmark.SymbolPosition(m, s.Name))

	page := symbolPage{Name: s.Name}
	for _, tag := range s.Doc.Tags {
		if tag.Kind != docmark.TagDeprecated {
			continue
		}
		html, err := b.renderer.RenderMarkdown(rc, tag.Doc, false)
		if err != nil {
			return fmt.Errorf("rendering deprecation notice: %w", err)
		}
		page.DeprecatedHTML = html
		break
	}

	var err error
	if page.BodyHTML, err = b.renderer.BodyToHTML(rc, s.Doc, false); err != nil {
		return err
	}
	if page.Examples, err = b.renderer.Examples(rc, s.Doc); err != nil {
		return err
	}
	page.TOC = b.tocHTML(toc)
	return writeSymbolPage(w, page)
}

func writeStylesheet(r *docmark.Renderer, outputDir string) PageResult {
	start := time.Now()
	result := PageResult{Page: stylesheetName}

	path, err := fileutil.SafeJoin(outputDir, stylesheetName)
	if err == nil {
		result.OutputPath = path
		var buf bytes.Buffer
		if err = r.WriteCSS(&buf); err == nil {
			err = writeFile(path, &buf)
		}
	}
	result.Err = err
	result.Duration = time.Since(start)
	return result
}

// writeFile atomically writes r to path, creating parent directories.
func writeFile(path string, r io.Reader) error {
	if err := fileutil.WriteFileAtomic(path, r, dirPermissions, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// printResults outputs page results and returns the failure count.
func printResults(results []PageResult, quiet, verbose bool, env *Environment) int {
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Page, r.Err)
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.Page, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}
	return failed
}
