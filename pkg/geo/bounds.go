package geo

import (
	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/matzehuels/framemap/pkg/frame"
)

// BoundingBox is a rectangular lat/lng envelope.
// MinLat <= MaxLat and MinLng <= MaxLng for any box returned by this package.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// SouthWest returns the (MinLat, MinLng) corner.
func (b BoundingBox) SouthWest() frame.LatLng {
	return frame.LatLng{Lat: b.MinLat, Lng: b.MinLng}
}

// NorthEast returns the (MaxLat, MaxLng) corner.
func (b BoundingBox) NorthEast() frame.LatLng {
	return frame.LatLng{Lat: b.MaxLat, Lng: b.MaxLng}
}

// String formats b as a Leaflet bounds literal: [[minLat, minLng], [maxLat, maxLng]].
func (b BoundingBox) String() string {
	return "[" + b.SouthWest().String() + ", " + b.NorthEast().String() + "]"
}

// ComputeBounds returns the envelope of points. ok is false when points is
// empty or holds a non-finite coordinate, in which case the box is
// meaningless and callers fall back as if there were no geometry.
func ComputeBounds(points []frame.LatLng) (BoundingBox, bool) {
	var env geom.Envelope
	for _, p := range points {
		var err error
		env, err = env.ExtendToIncludeXY(geom.XY{X: p.Lng, Y: p.Lat})
		if err != nil {
			return BoundingBox{}, false
		}
	}
	lo, hi, ok := env.MinMaxXYs()
	if !ok {
		return BoundingBox{}, false
	}
	return BoundingBox{MinLat: lo.Y, MinLng: lo.X, MaxLat: hi.Y, MaxLng: hi.X}, true
}

// FrameBounds returns the envelope of a frame's marker positions and line
// endpoints.
func FrameBounds(f frame.Frame) (BoundingBox, bool) {
	return ComputeBounds(f.Points())
}

// DocumentBounds returns the envelope over every frame.
func DocumentBounds(frames []frame.Frame) (BoundingBox, bool) {
	var pts []frame.LatLng
	for _, f := range frames {
		pts = append(pts, f.Points()...)
	}
	return ComputeBounds(pts)
}

// Box returns a pointer to box when ok, nil otherwise. It adapts the
// two-value Compute* results to the optional-box parameters used by Select.
func Box(box BoundingBox, ok bool) *BoundingBox {
	if !ok {
		return nil
	}
	return &box
}

// Select picks the box a map should be fitted to: own if present, else
// fallback, else nil (keep the default view).
func Select(own, fallback *BoundingBox) *BoundingBox {
	if own != nil {
		return own
	}
	return fallback
}
