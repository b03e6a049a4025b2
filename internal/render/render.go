// Package render turns measured gallery entries and post metadata into
// HTML fragments for the blog editor.
package render

import (
	"embed"
	"html/template"
	"strings"

	"github.com/AnyUserName/chaosimg/internal/pipeline"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// HeaderFields describe the model and event a post is about.
type HeaderFields struct {
	Model        string
	ModelTwitter string
	Character    string
	ContentTitle string
	EventName    string
	EventDate    string
}

// Complete reports whether every field is set. Headers are only rendered
// for complete fields.
func (h HeaderFields) Complete() bool {
	for _, v := range []string{h.Model, h.ModelTwitter, h.Character, h.ContentTitle, h.EventName, h.EventDate} {
		if v == "" {
			return false
		}
	}
	return true
}

// Header renders the post header.
func Header(h HeaderFields) (string, error) {
	return execute("header.html.tmpl", h)
}

// Gallery renders one link-wrapped image block per entry, in order.
func Gallery(entries []pipeline.Entry) (string, error) {
	return execute("gallery.html.tmpl", entries)
}

// Footer renders the camera and lens credits.
func (c *Catalog) Footer(camera, lens string) (string, error) {
	return execute("footer.html.tmpl", struct {
		Camera Gear
		Lens   Gear
	}{c.Camera(camera), c.Lens(lens)})
}

func execute(name string, data any) (string, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
