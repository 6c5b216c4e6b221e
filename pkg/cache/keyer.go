package cache

import (
	"github.com/matzehuels/framemap/pkg/buildinfo"
	"github.com/matzehuels/framemap/pkg/frame"
	"github.com/matzehuels/framemap/pkg/geo"
)

// PageKeyOpts are the non-frame inputs that change a rendered map page.
type PageKeyOpts struct {
	Fallback *geo.BoundingBox
	TileURL  string
	Title    string
}

// Keyer builds cache keys.
type Keyer interface {
	// PageKey returns the key of the map page for f rendered with opts.
	PageKey(f frame.Frame, opts PageKeyOpts) string
}

// DefaultKeyer derives keys from a hash of the inputs and the renderer
// fingerprint, so a different framemap binary never reuses a page.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PageKey implements Keyer.
func (DefaultKeyer) PageKey(f frame.Frame, opts PageKeyOpts) string {
	icons := make([]string, len(f.Tags))
	for i, m := range f.Tags {
		icons[i] = m.IconOrDefault()
	}
	return hashKey("page", buildinfo.Fingerprint(), f, icons, opts)
}
