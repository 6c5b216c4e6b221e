package navigator

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/matzehuels/framemap/pkg/errors"
)

func TestBuild(t *testing.T) {
	out, err := Build(3)
	if err != nil {
		t.Fatalf("Build(3): %v", err)
	}
	s := string(out)

	for _, want := range []string{
		`id="prevBtn"`,
		`id="nextBtn"`,
		`<span id="info">Frame 0 / 2</span>`,
		`id="leftPane" name="leftPane" src="event_0.html"`,
		`id="rightPane" name="rightPane" src="all_frames.html#frame0"`,
		`"event_"`,
		`".html"`,
		`"all_frames.html"`,
		`"#frame"`,
		"ArrowLeft",
		"ArrowRight",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(s, "disabled") {
		t.Error("buttons disabled for non-empty navigator")
	}
}

// script returns the inline script of a navigator page.
func script(t *testing.T, page []byte) string {
	t.Helper()
	s := string(page)
	start := strings.Index(s, "<script>")
	end := strings.Index(s, "</script>")
	if start < 0 || end < start {
		t.Fatal("navigator page has no inline script")
	}
	return s[start:end]
}

func TestBuildStepsSaturate(t *testing.T) {
	tests := []struct {
		frames   int
		maxIndex string
	}{
		{1, "0"},
		{3, "2"},
		{0, "-1"},
	}

	for _, tt := range tests {
		out, err := Build(tt.frames)
		if err != nil {
			t.Fatalf("Build(%d): %v", tt.frames, err)
		}
		js := script(t, out)

		re := regexp.MustCompile(`var maxIndex =\s*(-?\d+)\s*;`)
		m := re.FindStringSubmatch(js)
		if m == nil || m[1] != tt.maxIndex {
			t.Errorf("Build(%d): maxIndex = %v, want %s", tt.frames, m, tt.maxIndex)
		}
		if !strings.Contains(js, "var current = 0;") {
			t.Errorf("Build(%d): navigation should start at frame 0", tt.frames)
		}
		if !strings.Contains(js, "if (current > 0) { current--;") {
			t.Errorf("Build(%d): Previous is not guarded at 0", tt.frames)
		}
		if !strings.Contains(js, "if (current < maxIndex) { current++;") {
			t.Errorf("Build(%d): Next is not guarded at maxIndex", tt.frames)
		}
		if strings.Contains(js, "%") || strings.Count(js, "current = ") != 1 {
			t.Errorf("Build(%d): navigation must clamp, not wrap", tt.frames)
		}
	}
}

func TestBuildSingleFrame(t *testing.T) {
	out, err := Build(1)
	if err != nil {
		t.Fatalf("Build(1): %v", err)
	}
	if !strings.Contains(string(out), "Frame 0 / 0") {
		t.Error("label for single frame should be Frame 0 / 0")
	}
}

func TestBuildZeroFrames(t *testing.T) {
	for _, n := range []int{0, -4} {
		out, err := Build(n)
		if err != nil {
			t.Fatalf("Build(%d): %v", n, err)
		}
		s := string(out)
		if !strings.Contains(s, `<button id="prevBtn" disabled>`) || !strings.Contains(s, `<button id="nextBtn" disabled>`) {
			t.Errorf("Build(%d): buttons not disabled", n)
		}
		if !strings.Contains(s, "No frames") {
			t.Errorf("Build(%d): missing No frames label", n)
		}
		if strings.Contains(s, "event_0.html") {
			t.Errorf("Build(%d): pane points at a frame page", n)
		}
	}
}

func TestBuildOptions(t *testing.T) {
	out, err := Build(2, WithMapPattern("map-%d.htm"), WithSummaryFile("index.html"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `src="map-0.htm"`) || !strings.Contains(s, `src="index.html#frame0"`) {
		t.Error("custom file names not applied")
	}

	for _, bad := range []string{"event.html", "event_%d_%d.html"} {
		if _, err := Build(2, WithMapPattern(bad)); !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("WithMapPattern(%q) err = %v, want INVALID_CONFIG", bad, err)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "_master.html")
	if err := WriteFile(path, 2); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("navigator not written: %v", err)
	}
}
