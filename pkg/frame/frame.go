package frame

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Marker defaults applied when a tag omits the field.
const (
	DefaultIcon  = "info-sign"
	DefaultColor = "#0000FF"
)

// LatLng is a (latitude, longitude) pair in decimal degrees.
// It is encoded in JSON as a two-element array.
type LatLng struct {
	Lat float64
	Lng float64
}

// MarshalJSON encodes p as [lat, lng].
func (p LatLng) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Lat, p.Lng})
}

// UnmarshalJSON decodes a [lat, lng] array.
func (p *LatLng) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("want [lat, lng] array: %w", err)
	}
	if len(arr) != 2 {
		return fmt.Errorf("want [lat, lng] array, got %d values", len(arr))
	}
	p.Lat, p.Lng = arr[0], arr[1]
	return nil
}

// String formats p the way it appears in generated scripts: "[51.5, -0.1]".
func (p LatLng) String() string {
	return "[" + FormatDegrees(p.Lat) + ", " + FormatDegrees(p.Lng) + "]"
}

// FormatDegrees formats a coordinate with the shortest representation that
// round-trips, so 51.5 stays "51.5" rather than "51.500000".
func FormatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Marker is a point annotation on a frame.
type Marker struct {
	Position    LatLng `json:"position"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`

	// EmptyIcon records an icon given explicitly as "". Only an absent icon
	// takes DefaultIcon.
	EmptyIcon bool `json:"-"`
}

// IconOrDefault returns the marker icon, or DefaultIcon when the tag had none.
func (m Marker) IconOrDefault() string {
	if m.Icon == "" && !m.EmptyIcon {
		return DefaultIcon
	}
	return m.Icon
}

// ColorOrDefault returns the marker color, or DefaultColor when unset.
func (m Marker) ColorOrDefault() string {
	if m.Color == "" {
		return DefaultColor
	}
	return m.Color
}

// Popup returns the marker popup text: "{description} (icon: {icon})".
func (m Marker) Popup() string {
	return fmt.Sprintf("%s (icon: %s)", m.Description, m.IconOrDefault())
}

// LineSegment is a colored two-point line. Color is passed to the map
// verbatim and may be a hex value or a CSS color name.
type LineSegment struct {
	Start LatLng `json:"start"`
	End   LatLng `json:"end"`
	Color string `json:"color"`
}

// Frame is one visualized snapshot.
type Frame struct {
	Description string        `json:"description"`
	Tags        []Marker      `json:"tags,omitempty"`
	Lines       []LineSegment `json:"lines,omitempty"`
}

// Points returns every coordinate on the frame: marker positions first,
// then line start/end pairs, each in input order.
func (f Frame) Points() []LatLng {
	pts := make([]LatLng, 0, len(f.Tags)+2*len(f.Lines))
	for _, m := range f.Tags {
		pts = append(pts, m.Position)
	}
	for _, l := range f.Lines {
		pts = append(pts, l.Start, l.End)
	}
	return pts
}

// HasGeometry reports whether the frame contributes any coordinate.
func (f Frame) HasGeometry() bool {
	return len(f.Tags) > 0 || len(f.Lines) > 0
}

// Document is the top-level frames document.
type Document struct {
	Frames []Frame `json:"frames"`
}
