package geo

import (
	"math"

	"github.com/wroge/wgs84"

	"github.com/matzehuels/framemap/pkg/frame"
)

const (
	// DefaultZoom is used when there is nothing to fit.
	DefaultZoom = 1

	// PointZoom is used when the box collapses to a single point.
	PointZoom = 15

	// MaxZoom is the highest zoom level InitialView returns.
	MaxZoom = 18

	// maxMercatorLat is the latitude limit of the Web Mercator projection.
	maxMercatorLat = 85.05112878

	// mercatorWorldWidth is the width of the EPSG:3857 plane in meters.
	mercatorWorldWidth = 2 * 20037508.342789244

	// Nominal viewport the initial zoom is chosen for.
	viewportWidth  = 800.0
	viewportHeight = 600.0
	tileSize       = 256.0
)

var (
	toMercator   = wgs84.EPSG().Transform(4326, 3857)
	fromMercator = wgs84.EPSG().Transform(3857, 4326)
)

// View is a map center and zoom level.
type View struct {
	Center frame.LatLng
	Zoom   int
}

// InitialView returns the view a map is constructed with before any
// fitBounds call: the Mercator midpoint of b and the largest zoom at which b
// fits a nominal 800x600 viewport. A nil box gives the whole world.
func InitialView(b *BoundingBox) View {
	if b == nil {
		return View{Center: frame.LatLng{}, Zoom: DefaultZoom}
	}

	x0, y0 := Mercator(b.SouthWest())
	x1, y1 := Mercator(b.NorthEast())
	center := FromMercator((x0+x1)/2, (y0+y1)/2)

	spanX, spanY := math.Abs(x1-x0), math.Abs(y1-y0)
	if spanX == 0 && spanY == 0 {
		return View{Center: center, Zoom: PointZoom}
	}

	zoom := MaxZoom
	if spanX > 0 {
		zoom = min(zoom, fitZoom(spanX, viewportWidth))
	}
	if spanY > 0 {
		zoom = min(zoom, fitZoom(spanY, viewportHeight))
	}
	return View{Center: center, Zoom: max(zoom, DefaultZoom)}
}

// fitZoom returns the largest z with span/(metersPerPixel at z) <= pixels.
func fitZoom(span, pixels float64) int {
	return int(math.Floor(math.Log2(pixels * mercatorWorldWidth / (tileSize * span))))
}

// Mercator projects p to EPSG:3857 meters. Latitudes beyond the projection
// limit are clamped.
func Mercator(p frame.LatLng) (x, y float64) {
	lat := math.Max(-maxMercatorLat, math.Min(maxMercatorLat, p.Lat))
	x, y, _ = toMercator(p.Lng, lat, 0)
	return x, y
}

// FromMercator converts EPSG:3857 meters back to a lat/lng pair.
func FromMercator(x, y float64) frame.LatLng {
	lng, lat, _ := fromMercator(x, y, 0)
	return frame.LatLng{Lat: lat, Lng: lng}
}
