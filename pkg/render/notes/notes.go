// Package notes renders a Markdown digest of a frames document as HTML.
//
// The digest has one section per frame with its description and tables of
// the markers and lines it draws. Markdown is converted with goldmark using
// the GitHub-flavored extension, so tables render without extra markup. Raw
// HTML is never enabled and frame text is escaped before it is placed in the
// Markdown source.
package notes

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/matzehuels/framemap/pkg/buildinfo"
	"github.com/matzehuels/framemap/pkg/color"
	"github.com/matzehuels/framemap/pkg/errors"
	"github.com/matzehuels/framemap/pkg/frame"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="generator" content="{{.Generator}}" />
  <title>Frame Notes</title>
  <style>
    body { font-family: sans-serif; max-width: 960px; margin: 16px auto; padding: 0 16px; }
    table { border-collapse: collapse; margin: 8px 0; }
    th, td { border: 1px solid #ccc; padding: 2px 8px; text-align: left; }
  </style>
</head>
<body>
{{.Content}}
</body>
</html>
`

var (
	tmpl = template.Must(template.New("notes").Parse(pageTemplate))
	md   = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
)

// Markdown returns the digest source for frames.
func Markdown(frames []frame.Frame) []byte {
	var buf bytes.Buffer
	buf.WriteString("# Frame notes\n\n")
	fmt.Fprintf(&buf, "%d frames.\n", len(frames))

	for i, f := range frames {
		fmt.Fprintf(&buf, "\n## Frame %d\n\n", i)
		if f.Description != "" {
			buf.WriteString(escape(f.Description) + "\n\n")
		}
		if !f.HasGeometry() {
			buf.WriteString("_No geometry._\n")
			continue
		}
		if len(f.Tags) > 0 {
			buf.WriteString("| # | Position | Icon | Color | Description |\n")
			buf.WriteString("|---|---|---|---|---|\n")
			for j, m := range f.Tags {
				fmt.Fprintf(&buf, "| %d | %s | %s | %s | %s |\n", j,
					escape(m.Position.String()), escape(m.IconOrDefault()),
					escape(colorCell(m.ColorOrDefault())), escape(m.Description))
			}
			buf.WriteString("\n")
		}
		if len(f.Lines) > 0 {
			buf.WriteString("| # | Start | End | Color |\n")
			buf.WriteString("|---|---|---|---|\n")
			for j, l := range f.Lines {
				fmt.Fprintf(&buf, "| %d | %s | %s | %s |\n", j,
					escape(l.Start.String()), escape(l.End.String()), escape(l.Color))
			}
			buf.WriteString("\n")
		}
	}
	return buf.Bytes()
}

// Build renders the digest as a complete HTML page.
func Build(frames []frame.Frame) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert(Markdown(frames), &body); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "convert notes markdown")
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Generator string
		Content   template.HTML
	}{buildinfo.Generator(), template.HTML(body.String())})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render notes page")
	}
	return buf.Bytes(), nil
}

// WriteFile renders the notes page and writes it to path.
func WriteFile(path string, frames []frame.Frame) error {
	data, err := Build(frames)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "write notes page %s", path)
	}
	return nil
}

// colorCell shows the marker color next to the palette name it renders as.
func colorCell(hex string) string {
	return fmt.Sprintf("%s (%s)", color.Resolve(hex), hex)
}

// escape makes s inert in Markdown: HTML metacharacters become entities and
// Markdown punctuation is backslash-escaped.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		case '\n', '\r':
			b.WriteByte(' ')
		case '\\', '`', '*', '_', '{', '}', '[', ']', '(', ')', '#', '+', '-', '.', '!', '|', '~':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
