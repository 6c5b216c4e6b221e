// Package geo computes bounding boxes and initial map views for frames.
//
// Boxes are flat min/max envelopes in decimal degrees, built on
// simplefeatures envelopes with X as longitude and Y as latitude. There is
// no outlier rejection and no antimeridian handling: a frame spanning
// 179°E and 179°W gets a box covering almost the whole globe.
//
// The fit policy used by every map page is expressed by [Select]: the
// frame's own box, else a fallback (usually the whole document's box), else
// nothing, in which case the page keeps its default view.
package geo
