// Package color maps arbitrary hex colors onto the small set of named marker
// colors the map icons support.
//
// Marker pins come in a fixed palette; frame data may ask for any hex color.
// [Resolve] picks the palette entry nearest in RGB space. Anything that does
// not parse falls back to [Fallback] rather than failing the run.
package color

import (
	"strconv"
	"strings"
)

// Fallback is returned for missing or unparseable colors.
const Fallback = "blue"

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Named is a palette entry.
type Named struct {
	Name string
	RGB  RGB
}

// palette is searched in order; on equal distance the earlier entry wins.
var palette = [...]Named{
	{"red", RGB{255, 0, 0}},
	{"blue", RGB{0, 0, 255}},
	{"green", RGB{0, 255, 0}},
	{"purple", RGB{128, 0, 128}},
	{"orange", RGB{255, 165, 0}},
	{"darkred", RGB{139, 0, 0}},
	{"lightred", RGB{255, 102, 102}},
	{"beige", RGB{245, 245, 220}},
	{"darkblue", RGB{0, 0, 139}},
	{"darkgreen", RGB{0, 100, 0}},
	{"cadetblue", RGB{95, 158, 160}},
	{"darkpurple", RGB{48, 25, 52}},
	{"white", RGB{255, 255, 255}},
	{"pink", RGB{255, 192, 203}},
	{"lightblue", RGB{173, 216, 230}},
	{"lightgreen", RGB{144, 238, 144}},
	{"gray", RGB{128, 128, 128}},
	{"black", RGB{0, 0, 0}},
	{"lightgray", RGB{211, 211, 211}},
}

// Palette returns a copy of the named marker palette in search order.
func Palette() []Named {
	out := make([]Named, len(palette))
	copy(out, palette[:])
	return out
}

// Resolve returns the palette name closest to a hex color such as "#FF0000",
// "ff0000" or "f00". Unparseable input yields Fallback.
func Resolve(hex string) string {
	rgb, ok := ParseHex(hex)
	if !ok {
		return Fallback
	}
	return Nearest(rgb)
}

// ResolveAny is Resolve for loosely typed values: nil and non-strings yield
// Fallback.
func ResolveAny(v any) string {
	s, ok := v.(string)
	if !ok {
		return Fallback
	}
	return Resolve(s)
}

// ParseHex parses "#RRGGBB" or "#RGB" (the "#" is optional, case and
// surrounding whitespace are ignored).
func ParseHex(s string) (RGB, bool) {
	c := strings.ToLower(strings.TrimSpace(s))
	c = strings.TrimPrefix(c, "#")
	if len(c) == 3 {
		c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
	}
	if len(c) != 6 {
		return RGB{}, false
	}

	var out [3]uint8
	for i := range out {
		v, err := strconv.ParseUint(c[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		out[i] = uint8(v)
	}
	return RGB{out[0], out[1], out[2]}, true
}

// Nearest returns the palette name with the smallest squared Euclidean
// distance to c.
func Nearest(c RGB) string {
	best := Fallback
	bestDist := -1
	for _, p := range palette {
		d := distSq(c, p.RGB)
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.Name, d
		}
	}
	return best
}

func distSq(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
