// Package gpx converts GPS tracks into frames documents.
//
// Every sampled track point becomes one frame showing the trail travelled so
// far as line segments, a marker at the current position and the file's
// waypoints. Routes are replayed the same way as tracks. Trails never connect
// points across segment, track or route boundaries.
package gpx

import (
	"io"
	"os"
	"time"

	gpxgo "github.com/tkrajina/gpxgo/gpx"

	"github.com/matzehuels/framemap/pkg/errors"
	"github.com/matzehuels/framemap/pkg/frame"
)

// Defaults for Options.
const (
	DefaultStep      = 1
	DefaultLineColor = "#FF0000"

	positionIcon = "car"
	waypointIcon = "flag"
)

// Options controls how a GPX file is replayed.
type Options struct {
	// Step emits a frame for every Step-th point. The last point always
	// gets a frame.
	Step int

	// LineColor colors the trail segments.
	LineColor string
}

// SetDefaults fills zero fields.
func (o *Options) SetDefaults() {
	if o.Step <= 0 {
		o.Step = DefaultStep
	}
	if o.LineColor == "" {
		o.LineColor = DefaultLineColor
	}
}

// Validate checks the options after defaults are applied.
func (o *Options) Validate() error {
	return errors.ValidateHexColor(o.LineColor)
}

// point is one replayed position and the run it belongs to.
type point struct {
	pos  frame.LatLng
	at   time.Time
	name string
	run  int
}

// ImportFile reads and converts the GPX file at path.
func ImportFile(path string, opts Options) (*frame.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Import(f, opts)
}

// Import converts a GPX stream into a frames document.
func Import(r io.Reader, opts Options) (*frame.Document, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputNotFound, err, "read gpx")
	}
	g, err := gpxgo.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "parse gpx")
	}

	points := collect(g)
	if len(points) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedInput, "gpx contains no track or route points")
	}

	waypoints := make([]frame.Marker, 0, len(g.Waypoints))
	for _, w := range g.Waypoints {
		waypoints = append(waypoints, frame.Marker{
			Position:    frame.LatLng{Lat: w.Latitude, Lng: w.Longitude},
			Icon:        waypointIcon,
			Description: w.Name,
		})
	}

	doc := &frame.Document{}
	var trail []frame.LineSegment
	for i, p := range points {
		if i > 0 && points[i-1].run == p.run {
			trail = append(trail, frame.LineSegment{Start: points[i-1].pos, End: p.pos, Color: opts.LineColor})
		}
		if i%opts.Step != 0 && i != len(points)-1 {
			continue
		}

		tags := make([]frame.Marker, 0, len(waypoints)+1)
		tags = append(tags, waypoints...)
		tags = append(tags, frame.Marker{Position: p.pos, Icon: positionIcon, Description: p.name})

		doc.Frames = append(doc.Frames, frame.Frame{
			Description: describe(p),
			Tags:        tags,
			Lines:       append([]frame.LineSegment(nil), trail...),
		})
	}
	return doc, nil
}

// collect flattens tracks then routes into one ordered point list. Each
// track segment and each route is its own run.
func collect(g *gpxgo.GPX) []point {
	var pts []point
	run := 0
	for _, t := range g.Tracks {
		name := nameOr(t.Name, g.Name)
		for _, s := range t.Segments {
			for _, p := range s.Points {
				pts = append(pts, point{
					pos:  frame.LatLng{Lat: p.Latitude, Lng: p.Longitude},
					at:   p.Timestamp,
					name: name,
					run:  run,
				})
			}
			run++
		}
	}
	for _, rt := range g.Routes {
		name := nameOr(rt.Name, g.Name)
		for _, p := range rt.Points {
			pts = append(pts, point{
				pos:  frame.LatLng{Lat: p.Latitude, Lng: p.Longitude},
				at:   p.Timestamp,
				name: name,
				run:  run,
			})
		}
		run++
	}
	return pts
}

func describe(p point) string {
	if p.at.IsZero() {
		return p.name
	}
	return p.name + " @ " + p.at.UTC().Format(time.RFC3339)
}

func nameOr(name, fallback string) string {
	switch {
	case name != "":
		return name
	case fallback != "":
		return fallback
	default:
		return "track"
	}
}
