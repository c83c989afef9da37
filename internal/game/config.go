package game

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by LoadConfig.
const (
	EnvRoom      = "SHADOWROOM_ROOM"
	EnvSeed      = "SHADOWROOM_SEED"
	EnvFPS       = "SHADOWROOM_FPS"
	EnvDataDir   = "SHADOWROOM_DATA_DIR"
	EnvLang      = "SHADOWROOM_LANG"
	EnvLocaleDir = "SHADOWROOM_LOCALE_DIR"
)

// DefaultFrameRate is how many frames per second are drawn when unset.
const DefaultFrameRate = 60

// Config holds game configuration options.
type Config struct {
	// RoomID selects the room to load. Empty means the first room in the data
	// set; "generated" builds a fresh layout from Seed.
	RoomID string

	// Seed for random number generation. Used for reproducible generated rooms.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// FrameRate is the number of frames drawn per second.
	FrameRate int

	// DataDir, when set, is a directory holding atlas.json and rooms.json that
	// replace the embedded data.
	DataDir string

	// Locale and LocaleDir select a gettext catalogue for on-screen text.
	Locale    string
	LocaleDir string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{FrameRate: DefaultFrameRate}
}

// LoadConfig builds a Config from environment variables on top of the defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	cfg.RoomID = os.Getenv(EnvRoom)
	cfg.DataDir = os.Getenv(EnvDataDir)
	cfg.Locale = os.Getenv(EnvLang)
	cfg.LocaleDir = os.Getenv(EnvLocaleDir)

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvFPS, v, err)
		}
		if fps <= 0 {
			return cfg, fmt.Errorf("invalid %s %q: must be positive", EnvFPS, v)
		}
		cfg.FrameRate = fps
	}

	return cfg, nil
}
