package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// styleFlags holds asset and highlighting flags.
type styleFlags struct {
	assetPath      string
	highlightStyle string
	noHighlight    bool
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	enabled  bool
	title    string
	minDepth int
	maxDepth int
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common      commonFlags
	style       styleFlags
	toc         tocFlags
	output      string
	manifest    string
	summary     bool
	strip       bool
	noTOC       bool
	rewriteBase string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common      commonFlags
	style       styleFlags
	toc         tocFlags
	output      string
	workers     int
	noCSS       bool
	rewriteBase string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addStyleFlags adds asset and highlighting flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding icons and styles")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for fenced code")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "render fenced code without highlighting")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.BoolVar(&f.enabled, "toc", false, "prepend a table of contents")
	fs.StringVar(&f.title, "toc-title", "", "table of contents heading")
	fs.IntVar(&f.minDepth, "toc-min-depth", 0, "min heading depth for TOC (1-6, default: 1)")
	fs.IntVar(&f.maxDepth, "toc-max-depth", 0, "max heading depth for TOC (1-6, default: 3)")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, usage io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&f.manifest, "manifest", "m", "", "graph manifest used to resolve links")
	fs.BoolVarP(&f.summary, "summary", "s", false, "render the first block only")
	fs.BoolVar(&f.strip, "strip", false, "print plain text instead of HTML")
	fs.BoolVar(&f.noTOC, "no-toc", false, "render headings without anchors")
	fs.StringVar(&f.rewriteBase, "rewrite-base", "", "base URL prepended to relative links and images")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addTOCFlags(fs, &f.toc)

	fs.Usage = func() { printRenderUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, usage io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: docs)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.noCSS, "no-css", false, "skip writing the stylesheet")
	fs.StringVar(&f.rewriteBase, "rewrite-base", "", "base URL prepended to relative links and images")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addTOCFlags(fs, &f.toc)

	fs.Usage = func() { printBuildUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
