package render

import (
	"bytes"
	"html/template"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/thomiceli/gistindex/internal/gist"
	"github.com/thomiceli/gistindex/templates"
)

var fm = template.FuncMap{
	"bytes": func(size int64) string {
		if size < 0 {
			size = 0
		}
		return humanize.Bytes(uint64(size))
	},
}

// Parsed once, then only executed.
var pages = template.Must(template.New("t").Funcs(fm).ParseFS(templates.Files, "*/*.html"))

// IndexData is what the index page is rendered from.
type IndexData struct {
	User  string
	Gists []gist.Gist
}

func Page(w io.Writer, name string, data any) error {
	return pages.ExecuteTemplate(w, name, data)
}

// Index renders the gist table of data as UTF-8 encoded HTML.
func Index(data IndexData) ([]byte, error) {
	var buf bytes.Buffer
	if err := Page(&buf, "index", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
