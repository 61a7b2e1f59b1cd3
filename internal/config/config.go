// Package config loads the game configuration from the environment, with
// optional command-line overrides.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"
	"github.com/spf13/pflag"
)

// Config holds everything the game binary reads at startup. Every field can be
// set through the environment variable named in its tag.
type Config struct {
	// Frames per second of the fixed-timestep loop.
	FPS int `env:"STABBY_FPS" envDefault:"60"`

	// Tile map to build the world from.
	MapPath string `env:"STABBY_MAP" envDefault:"assets/maps/jungle.json"`

	// Sprite manifest.
	AssetsPath string `env:"STABBY_ASSETS" envDefault:"assets/assets.json"`

	// One of zerolog's level names.
	LogLevel string `env:"STABBY_LOG_LEVEL" envDefault:"info"`

	// Log destination. The terminal belongs to the renderer, so logs go to a file.
	LogFile string `env:"STABBY_LOG_FILE" envDefault:"stabby.log"`

	// Play a sound when an entity is destroyed.
	Audio bool `env:"STABBY_AUDIO" envDefault:"false"`

	// Initial slot count of component pools.
	PoolCapacity int `env:"STABBY_POOL_CAPACITY" envDefault:"64"`
}

// Load parses and validates the configuration.
func Load() (Config, error) {
	return LoadArgs(nil)
}

// LoadArgs parses the environment, applies the command-line flags in args on
// top of it and validates the result.
func LoadArgs(args []string) (Config, error) {
	cfg := Config{}

	if err := env.Parse(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to parse config")
	}

	fs := pflag.NewFlagSet("stabby", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, eris.Wrap(err, "failed to parse flags")
	}

	if err := cfg.validate(); err != nil {
		return cfg, eris.Wrap(err, "failed to validate config")
	}

	return cfg, nil
}

// BindFlags registers a flag for every field on fs, defaulting to the current
// values.
func (cfg *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	fs.StringVar(&cfg.MapPath, "map", cfg.MapPath, "tile map to load (.json or .toml)")
	fs.StringVar(&cfg.AssetsPath, "assets", cfg.AssetsPath, "sprite manifest")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "play a sound when an entity is destroyed")
	fs.IntVar(&cfg.PoolCapacity, "pool-capacity", cfg.PoolCapacity, "initial component pool capacity")
}

// FrameDuration is the target wall time of one frame.
func (cfg Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(cfg.FPS)
}

func (cfg *Config) validate() error {
	if cfg.FPS <= 0 || cfg.FPS > 1000 {
		return eris.Errorf("fps must be within 1..1000, got %d", cfg.FPS)
	}
	if cfg.MapPath == "" {
		return eris.New("map path cannot be empty")
	}
	if cfg.AssetsPath == "" {
		return eris.New("assets path cannot be empty")
	}
	if cfg.LogFile == "" {
		return eris.New("log file cannot be empty")
	}
	if cfg.PoolCapacity <= 0 {
		return eris.Errorf("pool capacity must be positive, got %d", cfg.PoolCapacity)
	}
	return nil
}
