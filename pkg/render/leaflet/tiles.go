package leaflet

import "strings"

// TileProvider describes the base layer of a map page.
type TileProvider struct {
	URL         string
	Attribution string
	MaxZoom     int
}

const googleTileURL = "https://mt1.google.com/vt/lyrs=m&x={x}&y={y}&z={z}&key="

// DefaultTiles returns the OpenStreetMap standard layer.
func DefaultTiles() TileProvider {
	return TileProvider{
		URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
		MaxZoom:     19,
	}
}

// KeyedTiles returns the Google Maps roadmap layer authenticated with key.
func KeyedTiles(key string) TileProvider {
	return TileProvider{
		URL:         googleTileURL + key,
		Attribution: "Google Maps",
		MaxZoom:     20,
	}
}

// TilesFor picks KeyedTiles when key is non-empty and DefaultTiles otherwise.
func TilesFor(key string) TileProvider {
	if strings.TrimSpace(key) == "" {
		return DefaultTiles()
	}
	return KeyedTiles(key)
}
