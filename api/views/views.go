// Package views embeds the HTML templates rendered by the list handlers.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Load parses every page template together with the shared layout.
func Load() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.tmpl")
}
