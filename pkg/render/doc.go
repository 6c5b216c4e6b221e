// Package render groups the HTML page generators.
//
// Every generator is a pure function from frames to bytes, plus a WriteFile
// helper that maps filesystem failures to OUTPUT_WRITE errors:
//
//   - [leaflet]: one interactive map page per frame
//   - [summary]: the all-frames list with :target highlighting
//   - [navigator]: the two-pane page with Previous/Next controls
//   - [notes]: Markdown frame notes rendered through goldmark
//
// Output is deterministic. The same frames always produce the same bytes,
// which is what makes the page cache sound.
//
// [leaflet]: github.com/matzehuels/framemap/pkg/render/leaflet
// [summary]: github.com/matzehuels/framemap/pkg/render/summary
// [navigator]: github.com/matzehuels/framemap/pkg/render/navigator
// [notes]: github.com/matzehuels/framemap/pkg/render/notes
package render
