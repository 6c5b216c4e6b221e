// Package config resolves process configuration for the framemap CLI.
//
// Values come from, in increasing precedence: built-in defaults, an
// optional framemap.yaml in the working directory, environment variables
// and command-line flags. The map tile key is read from GOOGLE_MAPS_API_KEY
// (or FRAMEMAP_TILES_APIKEY); every other key maps to FRAMEMAP_<KEY>, for
// example FRAMEMAP_OUTPUT, FRAMEMAP_WORKERS or FRAMEMAP_CACHE_ENABLED.
//
// The page cache is off unless cache.enabled is set: by default a run writes
// nothing outside its output directory.
//
// Load runs once at startup. The returned Config is a plain value handed to
// the pipeline; nothing reads viper or the environment after that.
package config

import (
	stderrors "errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matzehuels/framemap/pkg/errors"
	"github.com/matzehuels/framemap/pkg/pipeline"
)

// Sources.
const (
	FileName   = "framemap"
	EnvPrefix  = "FRAMEMAP"
	TileKeyEnv = "GOOGLE_MAPS_API_KEY"
)

// Keys.
const (
	KeyInput    = "input"
	KeyOutput   = "output"
	KeyWorkers  = "workers"
	KeyNotes    = "notes"
	KeyRefresh  = "refresh"
	KeyVerbose  = "verbose"
	KeyCache    = "cache.enabled"
	KeyCacheDir = "cache.dir"
	KeyTileKey  = "tiles.apiKey"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"input":     KeyInput,
	"output":    KeyOutput,
	"workers":   KeyWorkers,
	"notes":     KeyNotes,
	"refresh":   KeyRefresh,
	"verbose":   KeyVerbose,
	"cache":     KeyCache,
	"cache-dir": KeyCacheDir,
}

// Config is the resolved configuration.
type Config struct {
	Input     string
	OutputDir string
	Workers   int
	Notes     bool
	Refresh   bool
	Verbose   bool
	Cache     bool
	CacheDir  string
	TileKey   string

	// File is the config file that was read, empty when none was found.
	File string
}

// PipelineOptions converts the configuration into run options.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Input:     c.Input,
		OutputDir: c.OutputDir,
		TileKey:   c.TileKey,
		Workers:   c.Workers,
		Notes:     c.Notes,
		Refresh:   c.Refresh,
	}
}

// Load resolves configuration, looking for framemap.yaml in dir. flags may
// be nil; flags that exist and were set on the command line win over every
// other source.
func Load(dir string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault(KeyInput, pipeline.DefaultInput)
	v.SetDefault(KeyOutput, pipeline.DefaultOutputDir)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyNotes, false)
	v.SetDefault(KeyRefresh, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyCache, false)
	v.SetDefault(KeyCacheDir, "")
	v.SetDefault(KeyTileKey, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(KeyTileKey, EnvPrefix+"_TILES_APIKEY", TileKeyEnv); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInternal, err, "bind %s", TileKeyEnv)
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, errors.Wrap(errors.ErrCodeInternal, err, "bind flag --%s", name)
			}
		}
	}

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config file")
		}
	}

	cfg := Config{
		Input:     v.GetString(KeyInput),
		OutputDir: v.GetString(KeyOutput),
		Workers:   v.GetInt(KeyWorkers),
		Notes:     v.GetBool(KeyNotes),
		Refresh:   v.GetBool(KeyRefresh),
		Verbose:   v.GetBool(KeyVerbose),
		Cache:     v.GetBool(KeyCache),
		CacheDir:  v.GetString(KeyCacheDir),
		TileKey:   strings.TrimSpace(v.GetString(KeyTileKey)),
		File:      v.ConfigFileUsed(),
	}
	return cfg, cfg.Validate()
}

// Validate checks values that cannot be fixed up later.
func (c Config) Validate() error {
	if err := errors.ValidatePath("input", c.Input); err != nil {
		return err
	}
	if err := errors.ValidatePath("output", c.OutputDir); err != nil {
		return err
	}
	if c.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	return errors.ValidateTileKey(c.TileKey)
}
