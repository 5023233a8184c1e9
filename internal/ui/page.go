package ui

import (
	"embed"
	"html/template"
	"io"

	"github.com/mhpenta/sdprompt"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Page is the data rendered by RenderPage.
type Page struct {
	Keyword string
	Style   sdprompt.StyleVariant
	Styles  []sdprompt.StyleVariant
	Result  *Result
	Error   string
}

// RenderPage writes the HTML page. Styles defaults to every supported variant.
func RenderPage(w io.Writer, p Page) error {
	if len(p.Styles) == 0 {
		p.Styles = sdprompt.Styles()
	}
	p.Style = p.Style.Resolve()
	return pageTemplate.Execute(w, p)
}
