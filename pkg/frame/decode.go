package frame

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/framemap/pkg/color"
	"github.com/matzehuels/framemap/pkg/errors"
)

// Load reads and decodes the frames document at path.
// A missing or unreadable file is an INPUT_NOT_FOUND error; anything wrong
// with the content is MALFORMED_INPUT.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputNotFound, err, "read %s", path)
	}
	return DecodeBytes(data)
}

// Decode reads a frames document from r.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputNotFound, err, "read frames document")
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes and validates a frames document.
func DecodeBytes(data []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "frames document must be a JSON object")
	}

	raw, ok := top["frames"]
	if !ok || isNull(raw) {
		return nil, errors.New(errors.ErrCodeMalformedInput, "frames is required")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.New(errors.ErrCodeMalformedInput, "frames must be an array")
	}

	doc := &Document{Frames: make([]Frame, 0, len(items))}
	for i, item := range items {
		f, err := decodeFrame(item, fmt.Sprintf("frames[%d]", i))
		if err != nil {
			return nil, err
		}
		doc.Frames = append(doc.Frames, f)
	}
	return doc, nil
}

// Encode writes doc as indented JSON.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

type rawFrame struct {
	Description json.RawMessage   `json:"description"`
	Tags        []json.RawMessage `json:"tags"`
	Lines       []json.RawMessage `json:"lines"`
}

type rawMarker struct {
	Position    json.RawMessage `json:"position"`
	Icon        json.RawMessage `json:"icon"`
	Color       json.RawMessage `json:"color"`
	Description json.RawMessage `json:"description"`
}

type rawLine struct {
	Start json.RawMessage `json:"start"`
	End   json.RawMessage `json:"end"`
	Color json.RawMessage `json:"color"`
}

func decodeFrame(data json.RawMessage, path string) (Frame, error) {
	var rf rawFrame
	if err := json.Unmarshal(data, &rf); err != nil {
		return Frame{}, malformed(path, err)
	}

	var f Frame
	desc, err := optionalString(rf.Description, path+".description")
	if err != nil {
		return Frame{}, err
	}
	f.Description = desc

	for j, t := range rf.Tags {
		m, err := decodeMarker(t, fmt.Sprintf("%s.tags[%d]", path, j))
		if err != nil {
			return Frame{}, err
		}
		f.Tags = append(f.Tags, m)
	}
	for j, l := range rf.Lines {
		seg, err := decodeLine(l, fmt.Sprintf("%s.lines[%d]", path, j))
		if err != nil {
			return Frame{}, err
		}
		f.Lines = append(f.Lines, seg)
	}
	return f, nil
}

func decodeMarker(data json.RawMessage, path string) (Marker, error) {
	var rm rawMarker
	if err := json.Unmarshal(data, &rm); err != nil {
		return Marker{}, malformed(path, err)
	}

	var m Marker
	var err error
	if m.Position, err = requiredLatLng(rm.Position, path+".position"); err != nil {
		return Marker{}, err
	}
	if m.Icon, err = optionalString(rm.Icon, path+".icon"); err != nil {
		return Marker{}, err
	}
	m.EmptyIcon = m.Icon == "" && len(rm.Icon) > 0 && !isNull(rm.Icon)
	if m.Description, err = optionalString(rm.Description, path+".description"); err != nil {
		return Marker{}, err
	}
	m.Color = markerColor(rm.Color)
	return m, nil
}

// markerColor never fails: a color that is not a string is resolved to its
// palette fallback here, the way an unparseable hex value is at render time.
func markerColor(data json.RawMessage) string {
	if len(data) == 0 || isNull(data) {
		return ""
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return color.Fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return color.ResolveAny(v)
}

func decodeLine(data json.RawMessage, path string) (LineSegment, error) {
	var rl rawLine
	if err := json.Unmarshal(data, &rl); err != nil {
		return LineSegment{}, malformed(path, err)
	}

	var l LineSegment
	var err error
	if l.Start, err = requiredLatLng(rl.Start, path+".start"); err != nil {
		return LineSegment{}, err
	}
	if l.End, err = requiredLatLng(rl.End, path+".end"); err != nil {
		return LineSegment{}, err
	}
	if len(rl.Color) == 0 || isNull(rl.Color) {
		return LineSegment{}, errors.New(errors.ErrCodeMalformedInput, "%s.color is required", path)
	}
	if err := json.Unmarshal(rl.Color, &l.Color); err != nil {
		return LineSegment{}, errors.New(errors.ErrCodeMalformedInput, "%s.color must be a string", path)
	}
	return l, nil
}

func requiredLatLng(data json.RawMessage, path string) (LatLng, error) {
	if len(data) == 0 || isNull(data) {
		return LatLng{}, errors.New(errors.ErrCodeMalformedInput, "%s is required", path)
	}
	var p LatLng
	if err := p.UnmarshalJSON(data); err != nil {
		return LatLng{}, malformed(path, err)
	}
	return p, nil
}

func optionalString(data json.RawMessage, path string) (string, error) {
	if len(data) == 0 || isNull(data) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", errors.New(errors.ErrCodeMalformedInput, "%s must be a string", path)
	}
	return s, nil
}

func malformed(path string, err error) error {
	return errors.Wrap(errors.ErrCodeMalformedInput, err, "%s", path)
}

func isNull(data json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
