package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir("")
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", "framemap"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")

	dir, err := cacheDir("")
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg", "framemap") {
		t.Errorf("cacheDir() = %q", dir)
	}
}

func TestCacheDirOverride(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")

	dir, err := cacheDir("/srv/pages")
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/srv/pages" {
		t.Errorf("cacheDir(override) = %q", dir)
	}
}

func TestCachePathCommand(t *testing.T) {
	t.Setenv("FRAMEMAP_CACHE_DIR", "")
	c := testCLI(t)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"cache", "path", "--cache-dir", "/srv/pages"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "/srv/pages" {
		t.Errorf("cache path printed %q", got)
	}
}
