// Package pkg provides the libraries behind framemap.
//
// # Overview
//
// framemap turns a frames document, an ordered list of map snapshots, into
// a directory of static HTML pages: one interactive Leaflet map per frame,
// a summary listing every frame's description, and a navigator page that
// shows both side by side with Previous/Next controls.
//
// # Architecture
//
//	frames JSON (or a GPX track via [gpx])
//	         ↓
//	    [frame] package (load + normalize)
//	         ↓
//	    [geo] package (bounds + initial view)
//	         ↓
//	    [render/leaflet], [render/summary], [render/navigator], [render/notes]
//	         ↓
//	    event_{i}.html, all_frames.html, _master.html
//
// [pipeline] ties these together and adds the page [cache].
//
// # Quick Start
//
//	r := pipeline.NewRunner(nil, nil, nil)
//	defer r.Close()
//	res, err := r.Execute(ctx, pipeline.Options{
//	    Input:     "route.json",
//	    OutputDir: "route_output",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println("open", res.NavigatorPath)
//
// # Main Packages
//
//   - [frame]: frames document model, lenient loader, encoder
//   - [geo]: bounding boxes, box selection, initial center and zoom
//   - [color]: hex to marker palette mapping
//   - [gpx]: GPX track import into a frames document
//   - [render/leaflet]: per-frame map pages
//   - [render/summary]: the all-frames summary page
//   - [render/navigator]: the two-pane navigator page
//   - [render/notes]: optional Markdown frame notes rendered to HTML
//   - [pipeline]: end-to-end orchestration
//   - [cache]: content-addressed page cache
//   - [errors]: error codes and exit codes
//   - [observability]: pipeline and cache hooks
//   - [buildinfo]: version information
//
// [frame]: github.com/matzehuels/framemap/pkg/frame
// [geo]: github.com/matzehuels/framemap/pkg/geo
// [color]: github.com/matzehuels/framemap/pkg/color
// [gpx]: github.com/matzehuels/framemap/pkg/gpx
// [render/leaflet]: github.com/matzehuels/framemap/pkg/render/leaflet
// [render/summary]: github.com/matzehuels/framemap/pkg/render/summary
// [render/navigator]: github.com/matzehuels/framemap/pkg/render/navigator
// [render/notes]: github.com/matzehuels/framemap/pkg/render/notes
// [pipeline]: github.com/matzehuels/framemap/pkg/pipeline
// [cache]: github.com/matzehuels/framemap/pkg/cache
// [errors]: github.com/matzehuels/framemap/pkg/errors
// [observability]: github.com/matzehuels/framemap/pkg/observability
// [buildinfo]: github.com/matzehuels/framemap/pkg/buildinfo
package pkg
