// Package navigator renders the two-pane frame navigator page.
//
// The left pane shows the current frame's map page and the right pane shows
// the summary page scrolled to the current frame's anchor. Previous/Next
// buttons (and the arrow keys) move through frames and stop at either end.
package navigator

import (
	"bytes"
	"html/template"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/framemap/pkg/buildinfo"
	"github.com/matzehuels/framemap/pkg/errors"
)

// Default file names, matching what the pipeline writes.
const (
	DefaultMapPattern  = "event_%d.html"
	DefaultSummaryFile = "all_frames.html"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="generator" content="{{.Generator}}" />
  <title>Frame Navigator</title>
  <style>
    html, body { height: 100%; margin: 0; }
    body { display: flex; flex-direction: column; font-family: sans-serif; }
    #controls { padding: 6px; background: #eee; display: flex; align-items: center; gap: 8px; }
    #panes { flex: 1; display: flex; min-height: 0; }
    #leftPane { flex: 2; border: none; border-right: 1px solid #ccc; }
    #rightPane { flex: 1; border: none; }
  </style>
</head>
<body>
  <div id="controls">
    <button id="prevBtn"{{if .Empty}} disabled{{end}}>Previous</button>
    <span id="info">{{.Label}}</span>
    <button id="nextBtn"{{if .Empty}} disabled{{end}}>Next</button>
  </div>
  <div id="panes">
    <iframe id="leftPane" name="leftPane"{{if not .Empty}} src="{{.FirstMap}}"{{end}}></iframe>
    <iframe id="rightPane" name="rightPane"{{if not .Empty}} src="{{.FirstSummary}}"{{end}}></iframe>
  </div>
  <script>
    var current = 0;
    var maxIndex = {{.MaxIndex}};
    var mapPrefix = {{.MapPrefix}};
    var mapSuffix = {{.MapSuffix}};
    var summaryFile = {{.SummaryFile}};

    function updateView() {
      if (maxIndex < 0) {
        return;
      }
      document.getElementById("leftPane").src = mapPrefix + current + mapSuffix;
      document.getElementById("rightPane").src = summaryFile + "#frame" + current;
      document.getElementById("info").textContent = "Frame " + current + " / " + maxIndex;
    }
    function prevFrame() {
      if (current > 0) { current--; updateView(); }
    }
    function nextFrame() {
      if (current < maxIndex) { current++; updateView(); }
    }

    document.getElementById("prevBtn").addEventListener("click", prevFrame);
    document.getElementById("nextBtn").addEventListener("click", nextFrame);
    document.addEventListener("keydown", function (e) {
      if (e.key === "ArrowLeft") { prevFrame(); }
      if (e.key === "ArrowRight") { nextFrame(); }
    });
  </script>
</body>
</html>
`

var tmpl = template.Must(template.New("navigator").Parse(pageTemplate))

// Option configures Build.
type Option func(*navigator)

type navigator struct {
	mapPattern  string
	summaryFile string
}

// WithMapPattern sets the per-frame file name pattern. It must contain
// exactly one %d verb, replaced by the frame index.
func WithMapPattern(p string) Option { return func(n *navigator) { n.mapPattern = p } }

// WithSummaryFile sets the summary page file name.
func WithSummaryFile(name string) Option { return func(n *navigator) { n.summaryFile = name } }

type page struct {
	Generator    string
	Empty        bool
	Label        string
	MaxIndex     int
	MapPrefix    string
	MapSuffix    string
	SummaryFile  string
	FirstMap     string
	FirstSummary string
}

// Build renders the navigator for frameCount frames. Negative counts are
// treated as zero; a zero-frame navigator has both buttons disabled, blank
// panes and the label "No frames".
func Build(frameCount int, opts ...Option) ([]byte, error) {
	n := navigator{mapPattern: DefaultMapPattern, summaryFile: DefaultSummaryFile}
	for _, opt := range opts {
		opt(&n)
	}

	prefix, suffix, ok := strings.Cut(n.mapPattern, "%d")
	if !ok || strings.Contains(suffix, "%d") {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "map pattern %q must contain exactly one %%d", n.mapPattern)
	}

	frameCount = max(frameCount, 0)
	p := page{
		Generator:    buildinfo.Generator(),
		Empty:        frameCount == 0,
		Label:        "No frames",
		MaxIndex:     frameCount - 1,
		MapPrefix:    prefix,
		MapSuffix:    suffix,
		SummaryFile:  n.summaryFile,
		FirstMap:     prefix + "0" + suffix,
		FirstSummary: n.summaryFile + "#frame0",
	}
	if !p.Empty {
		p.Label = "Frame 0 / " + strconv.Itoa(p.MaxIndex)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render navigator page")
	}
	return buf.Bytes(), nil
}

// WriteFile renders the navigator and writes it to path.
func WriteFile(path string, frameCount int, opts ...Option) error {
	data, err := Build(frameCount, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "write navigator page %s", path)
	}
	return nil
}
