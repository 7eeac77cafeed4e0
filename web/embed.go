package web

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var TemplatesFS embed.FS

//go:embed static/*
var StaticFS embed.FS

// Pages parses the page-level templates served by the HTTP handlers.
// The printable document template is parsed separately by the renderer.
func Pages() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(TemplatesFS, "templates/form.html"))
}

// Funcs are the helpers shared by the page and document templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"nl2br": NL2BR,
	}
}

// NL2BR escapes user text and turns its line breaks into <br> tags so
// multi-line fields survive HTML rendering.
func NL2BR(s string) template.HTML {
	esc := template.HTMLEscapeString(s)
	esc = strings.ReplaceAll(esc, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(esc, "\n", "<br>"))
}
