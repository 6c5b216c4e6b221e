package leaflet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"os"

	"github.com/matzehuels/framemap/pkg/buildinfo"
	"github.com/matzehuels/framemap/pkg/color"
	"github.com/matzehuels/framemap/pkg/errors"
	"github.com/matzehuels/framemap/pkg/frame"
	"github.com/matzehuels/framemap/pkg/geo"
)

// LineWeight is the stroke width of every line segment, in pixels.
const LineWeight = 4

const (
	leafletCSS        = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	leafletJS         = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
	awesomeMarkersCSS = "https://cdnjs.cloudflare.com/ajax/libs/Leaflet.awesome-markers/2.0.2/leaflet.awesome-markers.css"
	awesomeMarkersJS  = "https://cdnjs.cloudflare.com/ajax/libs/Leaflet.awesome-markers/2.0.2/leaflet.awesome-markers.js"
	fontAwesomeCSS    = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/4.7.0/css/font-awesome.min.css"
)

const pageCSS = `
    html, body { width: 100%; height: 100%; margin: 0; padding: 0; }
    #map { position: absolute; top: 0; bottom: 0; left: 0; right: 0; }`

// Option configures Build.
type Option func(*mapRenderer)

type mapRenderer struct {
	fallback *geo.BoundingBox
	tiles    TileProvider
	title    string
}

// WithFallback sets the box used when the frame has no geometry of its own.
func WithFallback(b *geo.BoundingBox) Option { return func(r *mapRenderer) { r.fallback = b } }

// WithTiles sets the base tile layer.
func WithTiles(t TileProvider) Option { return func(r *mapRenderer) { r.tiles = t } }

// WithTitle sets the document title.
func WithTitle(title string) Option { return func(r *mapRenderer) { r.title = title } }

func newMapRenderer(opts ...Option) mapRenderer {
	r := mapRenderer{tiles: DefaultTiles(), title: "Frame"}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Build renders f as a complete HTML document.
func Build(f frame.Frame, opts ...Option) []byte {
	r := newMapRenderer(opts...)
	box := geo.Select(geo.Box(geo.FrameBounds(f)), r.fallback)
	view := geo.InitialView(box)

	var buf bytes.Buffer
	renderHead(&buf, r.title)

	buf.WriteString("<body>\n  <div id=\"map\"></div>\n  <script>\n")
	fmt.Fprintf(&buf, "    var map = L.map(\"map\", {center: %s, zoom: %d});\n", view.Center, view.Zoom)
	fmt.Fprintf(&buf, "    L.tileLayer(%s, {attribution: %s, maxZoom: %d}).addTo(map);\n",
		jsString(r.tiles.URL), jsString(r.tiles.Attribution), r.tiles.MaxZoom)

	for _, m := range f.Tags {
		renderMarker(&buf, m)
	}
	for _, l := range f.Lines {
		renderLine(&buf, l)
	}
	if box != nil {
		fmt.Fprintf(&buf, "    map.fitBounds(%s);\n", box)
	}

	buf.WriteString("  </script>\n</body>\n</html>\n")
	return buf.Bytes()
}

// WritePage writes a page produced by Build to path. The page may come from
// a cache rather than a fresh Build.
func WritePage(path string, page []byte) error {
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "write map page %s", path)
	}
	return nil
}

func renderHead(buf *bytes.Buffer, title string) {
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	buf.WriteString("  <meta charset=\"utf-8\" />\n")
	buf.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\" />\n")
	fmt.Fprintf(buf, "  <meta name=\"generator\" content=\"%s\" />\n", html.EscapeString(buildinfo.Generator()))
	fmt.Fprintf(buf, "  <title>%s</title>\n", html.EscapeString(title))
	for _, href := range []string{leafletCSS, awesomeMarkersCSS, fontAwesomeCSS} {
		fmt.Fprintf(buf, "  <link rel=\"stylesheet\" href=\"%s\" />\n", href)
	}
	for _, src := range []string{leafletJS, awesomeMarkersJS} {
		fmt.Fprintf(buf, "  <script src=\"%s\"></script>\n", src)
	}
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", pageCSS)
	buf.WriteString("</head>\n")
}

func renderMarker(buf *bytes.Buffer, m frame.Marker) {
	fmt.Fprintf(buf,
		"    L.marker(%s, {icon: L.AwesomeMarkers.icon({icon: %s, markerColor: %s, prefix: \"fa\"})}).bindPopup(%s).addTo(map);\n",
		m.Position, jsString(m.IconOrDefault()), jsString(color.Resolve(m.ColorOrDefault())), jsString(m.Popup()))
}

func renderLine(buf *bytes.Buffer, l frame.LineSegment) {
	fmt.Fprintf(buf, "    L.polyline([%s, %s], {color: %s, weight: %d}).addTo(map);\n",
		l.Start, l.End, jsString(l.Color), LineWeight)
}

// jsString encodes s as a JavaScript string literal. encoding/json escapes
// <, > and & so the literal cannot close the surrounding script element.
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
