package main

import (
	"html/template"
	"io"

	docmark "github.com/alnah/go-docmark"
)

// Page templates wrap already sanitized fragments; only names and titles
// are escaped here.
var pageTemplates = template.Must(template.New("pages").
	Funcs(template.FuncMap{"safe": trusted}).
	Parse(pageLayout))

const pageLayout = `
{{- define "section" -}}
<section id="{{.ID}}"><h2>{{.Title}}</h2>
{{- range .Examples}}
<div class="example" id="{{.ID}}">{{safe .TitleHTML}}{{safe .BodyHTML}}</div>
{{- end}}
{{- if .Symbols}}
<ul>
{{- range .Symbols}}
<li{{if .Deprecated}} class="deprecated"{{end}}><a href="{{.Href}}">{{.Name}}</a>{{safe .SummaryHTML}}</li>
{{- end}}
</ul>
{{- end}}
</section>
{{- end -}}

{{- define "module" -}}
<article class="module">
<h1>{{.Title}}</h1>
{{- if .Doc.DeprecatedHTML}}
<div class="deprecated">{{safe .Doc.DeprecatedHTML}}</div>
{{- end}}
{{- if .TOC}}
{{safe .TOC}}
{{- end}}
{{- safe .Doc.DocsHTML}}
{{- range .Doc.Sections}}
{{template "section" .}}
{{- end}}
</article>
{{end -}}

{{- define "symbol" -}}
<article class="symbol">
<h1>{{.Name}}</h1>
{{- if .DeprecatedHTML}}
<div class="deprecated">{{safe .DeprecatedHTML}}</div>
{{- end}}
{{- if .TOC}}
{{safe .TOC}}
{{- end}}
{{- safe .BodyHTML}}
{{- with .Examples}}
{{template "section" .}}
{{- end}}
</article>
{{end -}}
`

// trusted marks a sanitized fragment as safe for the template.
func trusted(s string) template.HTML {
	return template.HTML(s) // #nosec G203 -- fragments come from the sanitizer
}

// modulePage is the data of a module index page.
type modulePage struct {
	Title string
	TOC   string
	Doc   *docmark.ModuleDoc
}

// symbolPage is the data of a symbol page.
type symbolPage struct {
	Name           string
	TOC            string
	DeprecatedHTML string
	BodyHTML       string
	Examples       *docmark.Section
}

func writeModulePage(w io.Writer, p modulePage) error {
	return pageTemplates.ExecuteTemplate(w, "module", p)
}

func writeSymbolPage(w io.Writer, p symbolPage) error {
	return pageTemplates.ExecuteTemplate(w, "symbol", p)
}
