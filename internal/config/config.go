package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvSeed  = "AGARIO_SEED"
	EnvVSync = "AGARIO_VSYNC"
	EnvDebug = "AGARIO_DEBUG"
)

// Options are the runtime knobs of the desktop build.
type Options struct {
	Seed  uint64
	VSync bool
	Debug bool // log session events to stderr
}

// Default seeds from the clock with vsync on.
func Default() Options {
	return Options{
		Seed:  uint64(time.Now().UnixNano()),
		VSync: true,
	}
}

// Load reads options from the environment, after merging any of the given
// .env files. Missing files are skipped; existing process variables win.
func Load(envFiles ...string) (Options, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Options{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds Options from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (Options, error) {
	opts := Default()
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Options{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		opts.Seed = seed
	}
	if v, ok := lookup(EnvVSync); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Options{}, fmt.Errorf("%s: %w", EnvVSync, err)
		}
		opts.VSync = b
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Options{}, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		opts.Debug = b
	}
	return opts, nil
}
