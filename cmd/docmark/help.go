package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docmark <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render a markdown doc comment to sanitized HTML")
	fmt.Fprintln(w, "  build      Render every page of a documentation manifest")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docmark help <command>' for details on a specific command.")
	fmt.Fprintln(w, "Run 'docmark help env' for environment variables.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docmark render <file|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one markdown file to sanitized HTML. Front matter keys")
	fmt.Fprintln(w, "'module' and 'symbol' select the page the output belongs to.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file (default: stdout)")
	fmt.Fprintln(w, "  -m, --manifest <path>       Manifest used to resolve {@link} targets")
	fmt.Fprintln(w, "  -s, --summary               Render the first block only")
	fmt.Fprintln(w, "      --strip                 Print plain text instead of HTML")
	fmt.Fprintln(w, "      --no-toc                Render headings without anchors")
	fmt.Fprintln(w, "      --rewrite-base <url>    Resolve relative URLs against url")
	printSharedUsage(w)
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docmark build <manifest> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the module and symbol pages of a manifest into a directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>          Output directory (default: docs)")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --no-css                Skip writing styles.css")
	fmt.Fprintln(w, "      --rewrite-base <url>    Resolve relative URLs against url")
	printSharedUsage(w)
}

func printSharedUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc                   Prepend a table of contents")
	fmt.Fprintln(w, "      --toc-title <s>         TOC heading text")
	fmt.Fprintln(w, "      --toc-min-depth <n>     Min heading depth (1-6)")
	fmt.Fprintln(w, "      --toc-max-depth <n>     Max heading depth (1-6)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --asset-path <dir>      Directory overriding icons and styles")
	fmt.Fprintln(w, "      --highlight-style <s>   Chroma style for fenced code")
	fmt.Fprintln(w, "      --no-highlight          Disable syntax highlighting")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed timing")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docmark config [-c <name>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after applying the config file and")
	fmt.Fprintln(w, "DOCMARK_* environment variables.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "build":
		printBuildUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "env":
		if err := printEnvUsage(env.Stdout); err != nil {
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
		}
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: docmark version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: docmark help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
