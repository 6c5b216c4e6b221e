// Package summary renders the all-frames index page.
//
// Each frame gets one anchor, frame{i}, so another page can link to
// all_frames.html#frame{i}; the targeted line is highlighted through the
// CSS :target selector.
package summary

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/matzehuels/framemap/pkg/buildinfo"
	"github.com/matzehuels/framemap/pkg/errors"
	"github.com/matzehuels/framemap/pkg/frame"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="generator" content="{{.Generator}}" />
  <title>All Frames</title>
  <style>
    body { font-family: sans-serif; margin: 8px; }
    .frameRow { margin: 2px 0; }
    .frameLine { display: block; padding: 2px 4px; color: inherit; text-decoration: none; }
    .frameLine:target { background-color: yellow; }
  </style>
</head>
<body>
  <h3>All Frames (Events)</h3>
{{- range .Rows}}
  <div class="frameRow" title="{{.Hint}}"><a id="frame{{.Index}}" name="frame{{.Index}}" class="frameLine">Frame {{.Index}}: {{.Description}}</a></div>
{{- end}}
</body>
</html>
`

var tmpl = template.Must(template.New("summary").Parse(pageTemplate))

type page struct {
	Generator string
	Rows      []row
}

type row struct {
	Index       int
	Description string
	Hint        string
}

// Build renders the summary page for frames.
func Build(frames []frame.Frame) ([]byte, error) {
	p := page{Generator: buildinfo.Generator(), Rows: make([]row, len(frames))}
	for i, f := range frames {
		p.Rows[i] = row{Index: i, Description: f.Description, Hint: GeometryHint(f)}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render summary page")
	}
	return buf.Bytes(), nil
}

// WriteFile renders the summary page and writes it to path.
func WriteFile(path string, frames []frame.Frame) error {
	data, err := Build(frames)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "write summary page %s", path)
	}
	return nil
}

// GeometryHint describes what a frame draws, e.g. "2 markers, 1 line".
func GeometryHint(f frame.Frame) string {
	return fmt.Sprintf("%s, %s", plural(len(f.Tags), "marker"), plural(len(f.Lines), "line"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
