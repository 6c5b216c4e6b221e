// Package leaflet renders a single frame as a standalone Leaflet map page.
//
// A page carries one map filling the viewport: a tile layer, one
// awesome-markers pin per frame tag and one polyline per line segment, all in
// input order. Leaflet, Leaflet.awesome-markers and Font Awesome are loaded
// from public CDNs, so the file works when opened straight from disk.
//
// # Bounds
//
// The map is fitted with fitBounds to the frame's own bounding box. A frame
// without geometry falls back to the box passed via [WithFallback] (the
// pipeline passes the whole document's box). With neither, no fitBounds call
// is emitted and the initial view from [geo.InitialView] stays in place.
//
// # Tiles
//
// [DefaultTiles] uses OpenStreetMap. [KeyedTiles] uses the Google Maps
// roadmap endpoint with an API key; the key always comes from the caller
// and is never read from the environment here.
//
// Output is deterministic: the same frame and options give the same bytes.
package leaflet
