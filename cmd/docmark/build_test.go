package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	docmark "github.com/alnah/go-docmark"
)

// ---------------------------------------------------------------------------
// TestRunBuild - Build command end to end
// ---------------------------------------------------------------------------

func TestRunBuild(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifest := writeTestFile(t, dir, "docs.yaml", testManifest)
	out := filepath.Join(dir, "site")

	env, stdout, stderr := testEnv("")
	code := runMain([]string{"docmark", "build", manifest, "-o", out, "-w", "2"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}

	pages := map[string][]string{
		"index.html": {
			"<h1>mod.ts</h1>",
			`id="examples"`,
			`id="example_0"`,
			"Basic usage",
			"Entry point of the package.",
		},
		filepath.Join("~", "run.html"): {
			"<h1>run</h1>",
			`<div class="deprecated">`,
			"<em>start</em>",
			`href=".././/util.ts/~/Point.html"`,
		},
		filepath.Join("util.ts", "index.html"): {
			"<h1>util.ts</h1>",
			`<section id="Classes"><h2>Classes</h2>`,
			`<a href="../.././/util.ts/~/Point.html">Point</a>`,
			"A point in space.",
		},
		filepath.Join("util.ts", "~", "Point.html"): {
			"<h1>Point</h1>",
			"A point in space.",
		},
	}
	for name, wants := range pages {
		got := readTestFile(t, filepath.Join(out, name))
		for _, want := range wants {
			if !strings.Contains(got, want) {
				t.Errorf("%s missing %q, got:\n%s", name, want, got)
			}
		}
	}

	if _, err := os.Stat(filepath.Join(out, "util.ts", "~", "helpers.html")); !os.IsNotExist(err) {
		t.Error("imports must not get a page")
	}
	if css := readTestFile(t, filepath.Join(out, stylesheetName)); !strings.Contains(css, ".markdown") {
		t.Errorf("stylesheet missing .markdown rules")
	}
	if !strings.Contains(stdout.String(), "5 succeeded, 0 failed") {
		t.Errorf("summary missing, got:\n%s", stdout)
	}
}

func TestRunBuild_QuietNoCSS(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifest := writeTestFile(t, dir, "docs.yaml", testManifest)
	out := filepath.Join(dir, "site")

	env, stdout, stderr := testEnv("")
	if code := runMain([]string{"docmark", "build", manifest, "-o", out, "-q", "--no-css"}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet build wrote %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(out, stylesheetName)); !os.IsNotExist(err) {
		t.Error("--no-css must skip the stylesheet")
	}
}

func TestRunBuild_InvalidManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifest := writeTestFile(t, dir, "docs.yaml", "modules:\n  - path: /a.ts\n  - path: /a.ts\n")

	env, _, stderr := testEnv("")
	if code := runMain([]string{"docmark", "build", manifest, "-o", dir}, env); code != ExitUsage {
		t.Errorf("runMain() = %d, want %d (stderr: %s)", code, ExitUsage, stderr)
	}
}

// ---------------------------------------------------------------------------
// TestPlanPages - Page layout matches default hrefs
// ---------------------------------------------------------------------------

func TestPlanPages(t *testing.T) {
	t.Parallel()

	g := docmark.NewGraph()
	entry := docmark.ModulePath{Path: "/mod.ts", Main: true}
	lib := docmark.ModulePath{Path: "/lib/util.ts"}
	if err := g.Add(entry,
		docmark.Symbol{Name: "mod", Kind: docmark.KindModuleDoc},
		docmark.Symbol{Name: "run", Kind: docmark.KindFunction},
		docmark.Symbol{Name: "run", Kind: docmark.KindFunction},
	); err != nil {
		t.Fatal(err)
	}
	if err := g.Add(lib, docmark.Symbol{Name: "Point.x", Kind: docmark.KindVariable}); err != nil {
		t.Fatal(err)
	}

	jobs, err := planPages(g, "out")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join("out", "index.html"),
		filepath.Join("out", "~", "run.html"),
		filepath.Join("out", "lib", "util.ts", "index.html"),
		filepath.Join("out", "lib", "util.ts", "~", "Point.x.html"),
	}
	if len(jobs) != len(want) {
		t.Fatalf("planPages() = %d jobs, want %d", len(jobs), len(want))
	}
	for i, j := range jobs {
		if j.outputPath != want[i] {
			t.Errorf("jobs[%d].outputPath = %q, want %q", i, j.outputPath, want[i])
		}
	}
}

func TestPlanPages_PathEscape(t *testing.T) {
	t.Parallel()

	g := docmark.NewGraph()
	if err := g.Add(docmark.ModulePath{Path: "/../../etc"}); err != nil {
		t.Fatal(err)
	}
	if _, err := planPages(g, "out"); err == nil {
		t.Error("planPages() error = nil, want path escape")
	}
}
