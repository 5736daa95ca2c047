package pipeline

import (
	"strings"
	"testing"
)

func TestSanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "script removed with content",
			input:        "<p>hi</p><script>alert(1)</script>",
			wantContains: []string{"<p>hi</p>"},
			wantNot:      []string{"script", "alert(1)"},
		},
		{
			name:         "event handlers removed",
			input:        `<p onclick="evil()">x</p>`,
			wantContains: []string{"<p>x</p>"},
			wantNot:      []string{"onclick"},
		},
		{
			name:         "javascript urls removed",
			input:        `<a href="javascript:alert(1)">x</a>`,
			wantNot:      []string{"javascript"},
			wantContains: []string{"x"},
		},
		{
			name:         "links get nofollow",
			input:        `<a href="https://example.com">x</a>`,
			wantContains: []string{`href="https://example.com"`, `rel="nofollow"`},
		},
		{
			name:         "alert container classes kept",
			input:        `<div class="alert alert-note"><div>Note</div><div><p>x</p></div></div>`,
			wantContains: []string{`<div class="alert alert-note">`},
		},
		{
			name:         "unknown div class dropped",
			input:        `<div class="evil">x</div>`,
			wantContains: []string{"x"},
			wantNot:      []string{"evil"},
		},
		{
			name:         "code language class kept",
			input:        `<pre><code class="language-ts">let a;</code></pre>`,
			wantContains: []string{`<code class="language-ts">`},
		},
		{
			name:         "highlight classes kept",
			input:        `<pre class="chroma"><code><span class="line"><span class="kd">func</span></span></code></pre>`,
			wantContains: []string{`<pre class="chroma">`, `<span class="kd">func</span>`},
		},
		{
			name:         "mixed span classes dropped",
			input:        `<span class="kd evil">func</span>`,
			wantContains: []string{"func"},
			wantNot:      []string{"evil"},
		},
		{
			name:         "heading ids kept",
			input:        `<h2 id="usage">Usage</h2>`,
			wantContains: []string{`<h2 id="usage">Usage</h2>`},
		},
		{
			name:         "table alignment kept",
			input:        `<table><thead><tr><th align="right">a</th></tr></thead></table>`,
			wantContains: []string{`<th align="right">a</th>`},
		},
		{
			name:         "video player kept",
			input:        `<video src="./demo.mp4" controls></video>`,
			wantContains: []string{`<video src="./demo.mp4" controls`},
		},
		{
			name:         "svg icon kept",
			input:        `<svg width="16" height="16" fill="none"><path d="M0 0L1 1" stroke="currentColor" stroke-width="1.5"/></svg>`,
			wantContains: []string{`<svg width="16" height="16" fill="none">`, `d="M0 0L1 1"`, `stroke="currentColor"`},
		},
		{
			name:         "copy button kept",
			input:        `<button class="context_button" data-copy="npm i">copy</button>`,
			wantContains: []string{`class="context_button"`, `data-copy="npm i"`},
		},
		{
			name:         "task list checkbox removed",
			input:        `<ul><li><input checked="" disabled="" type="checkbox"> done</li></ul>`,
			wantContains: []string{"done"},
			wantNot:      []string{"<input"},
		},
		{
			name:         "style and iframe removed",
			input:        `<style>p{}</style><iframe src="https://evil"></iframe><p>ok</p>`,
			wantContains: []string{"<p>ok</p>"},
			wantNot:      []string{"<style", "<iframe"},
		},
	}

	s := NewSanitizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := s.Sanitize(tt.input, nil)
			if err != nil {
				t.Fatalf("Sanitize() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("output should not contain %q\ngot: %s", not, got)
				}
			}
		})
	}
}

func TestSanitizer_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`<p>a &amp; b &lt;c&gt;</p>`,
		`<a href="./x.html" title="t">x</a>`,
		`<div class="alert alert-tip"><div>Tip</div><div><p>body</p></div></div>`,
		`<pre class="chroma"><code><span class="line"><span class="kd">var</span></span></code></pre>`,
		`<video src="a.mov" controls></video>`,
		`<table><tr><td align="center">1</td></tr></table>`,
		`<p onclick="x()"><script>bad()</script>text</p>`,
	}

	s := NewSanitizer()
	for _, in := range inputs {
		once, err := s.Sanitize(in, nil)
		if err != nil {
			t.Fatalf("Sanitize(%q) error = %v", in, err)
		}
		twice, err := s.Sanitize(once, nil)
		if err != nil {
			t.Fatalf("Sanitize(%q) error = %v", once, err)
		}
		if once != twice {
			t.Errorf("not a fixed point:\nonce:  %s\ntwice: %s", once, twice)
		}
	}
}

func TestSanitizer_URLEvaluator(t *testing.T) {
	t.Parallel()

	eval := func(raw string) string {
		if IsRelativeURL(raw) {
			return "/docs/" + raw
		}
		return raw
	}

	got, err := NewSanitizer().Sanitize(
		`<p><a href="guide.html">g</a> <a href="https://example.com">e</a> <a href="#top">t</a> <img src="img/a.png" alt="a"></p>`,
		eval,
	)
	if err != nil {
		t.Fatalf("Sanitize() error = %v", err)
	}

	for _, want := range []string{
		`href="/docs/guide.html"`,
		`href="https://example.com"`,
		`href="#top"`,
		`src="/docs/img/a.png"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\ngot: %s", want, got)
		}
	}
}

func TestClassPattern(t *testing.T) {
	t.Parallel()

	re := classPattern(quoteAll("alert", "alert-note"))
	tests := []struct {
		value string
		want  bool
	}{
		{"alert", true},
		{"alert alert-note", true},
		{"  alert   alert-note ", true},
		{"alert-note alert", true},
		{"alert evil", false},
		{"alertx", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := re.MatchString(tt.value); got != tt.want {
			t.Errorf("classPattern match %q = %v, want %v", tt.value, got, tt.want)
		}
	}
}
