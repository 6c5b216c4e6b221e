package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/framemap/pkg/errors"
)

// clearEnv isolates a test from the caller's environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		TileKeyEnv, "FRAMEMAP_TILES_APIKEY", "FRAMEMAP_INPUT", "FRAMEMAP_OUTPUT",
		"FRAMEMAP_WORKERS", "FRAMEMAP_NOTES", "FRAMEMAP_REFRESH", "FRAMEMAP_VERBOSE",
		"FRAMEMAP_CACHE_ENABLED", "FRAMEMAP_CACHE_DIR",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("input", "route.json", "")
	fs.String("output", "route_output", "")
	fs.Int("workers", 0, "")
	fs.Bool("notes", false, "")
	fs.Bool("cache", false, "")
	fs.Bool("refresh", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, "route.json", cfg.Input)
	assert.Equal(t, "route_output", cfg.OutputDir)
	assert.Equal(t, 0, cfg.Workers)
	assert.False(t, cfg.Notes)
	assert.False(t, cfg.Cache, "page cache is opt-in")
	assert.False(t, cfg.Refresh)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "", cfg.TileKey)
	assert.Equal(t, "", cfg.File)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	yaml := "input: trips.json\noutput: maps\nworkers: 3\nnotes: true\ntiles:\n  apiKey: from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "framemap.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, "trips.json", cfg.Input)
	assert.Equal(t, "maps", cfg.OutputDir)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.Notes)
	assert.Equal(t, "from-file", cfg.TileKey)
	assert.Equal(t, filepath.Join(dir, "framemap.yaml"), cfg.File)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "framemap.yaml"), []byte("output: from-file\ninput: from-file.json\n"), 0o644))
	t.Setenv("FRAMEMAP_OUTPUT", "from-env")
	t.Setenv("FRAMEMAP_INPUT", "from-env.json")

	cfg, err := Load(dir, testFlags(t, "--input", "from-flag.json"))
	require.NoError(t, err)

	assert.Equal(t, "from-flag.json", cfg.Input, "flag beats env")
	assert.Equal(t, "from-env", cfg.OutputDir, "env beats file")
}

func TestLoad_TileKeyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(TileKeyEnv, "abc123")

	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.TileKey)
	assert.Equal(t, "abc123", cfg.PipelineOptions().TileKey)
}

func TestLoad_Flags(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir(), testFlags(t, "--cache", "--refresh", "--notes", "--workers", "4", "--output", "out"))
	require.NoError(t, err)

	assert.True(t, cfg.Cache)
	assert.True(t, cfg.Refresh)
	assert.True(t, cfg.Notes)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "out", cfg.OutputDir)

	opts := cfg.PipelineOptions()
	assert.Equal(t, "out", opts.OutputDir)
	assert.Equal(t, 4, opts.Workers)
	assert.True(t, opts.Notes)
	assert.True(t, opts.Refresh)
}

func TestLoad_CacheFromEnvAndFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "framemap.yaml"), []byte("cache:\n  enabled: true\n  dir: /srv/pages\n"), 0o644))
	cfg, err := Load(dir, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Cache)
	assert.Equal(t, "/srv/pages", cfg.CacheDir)

	clearEnv(t)
	t.Setenv("FRAMEMAP_CACHE_ENABLED", "true")
	t.Setenv("FRAMEMAP_VERBOSE", "true")
	cfg, err = Load(t.TempDir(), nil)
	require.NoError(t, err)
	assert.True(t, cfg.Cache)
	assert.True(t, cfg.Verbose)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) (string, *pflag.FlagSet)
	}{
		{
			name: "negative workers",
			setup: func(t *testing.T) (string, *pflag.FlagSet) {
				return t.TempDir(), testFlags(t, "--workers", "-2")
			},
		},
		{
			name: "bad tile key",
			setup: func(t *testing.T) (string, *pflag.FlagSet) {
				t.Setenv(TileKeyEnv, "abc<script>")
				return t.TempDir(), nil
			},
		},
		{
			name: "broken yaml",
			setup: func(t *testing.T) (string, *pflag.FlagSet) {
				dir := t.TempDir()
				require.NoError(t, os.WriteFile(filepath.Join(dir, "framemap.yaml"), []byte("input: [unclosed"), 0o644))
				return dir, nil
			},
		},
		{
			name: "blank output",
			setup: func(t *testing.T) (string, *pflag.FlagSet) {
				return t.TempDir(), testFlags(t, "--output", "  ")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir, flags := tt.setup(t)
			_, err := Load(dir, flags)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "err = %v", err)
		})
	}
}
