package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadRuntime
const (
	EnvAssets      = "DEFENDER_ASSETS"
	EnvSeed        = "DEFENDER_SEED"
	EnvMetricsAddr = "DEFENDER_METRICS_ADDR"
	EnvTelemetry   = "DEFENDER_TELEMETRY"
	EnvDebug       = "DEFENDER_DEBUG"
)

// Runtime holds per-launch settings from the environment and command line
type Runtime struct {
	AssetsDir   string
	Seed        int64
	MetricsAddr string
	Telemetry   bool
	Debug       bool
	Record      string
	Replay      string
}

// DefaultRuntime returns settings used when nothing is configured
func DefaultRuntime() *Runtime {
	return &Runtime{
		AssetsDir: "assets",
	}
}

// LoadRuntime reads .env files (missing files are ignored) and then the
// process environment. Variables already set in the environment win.
func LoadRuntime(envFiles ...string) (*Runtime, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return RuntimeFromEnv(os.LookupEnv)
}

// RuntimeFromEnv builds settings from a lookup function such as os.LookupEnv
func RuntimeFromEnv(lookup func(string) (string, bool)) (*Runtime, error) {
	rt := DefaultRuntime()

	if v, ok := lookup(EnvAssets); ok && v != "" {
		rt.AssetsDir = v
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", EnvSeed, v, err)
		}
		rt.Seed = seed
	}
	if v, ok := lookup(EnvMetricsAddr); ok {
		rt.MetricsAddr = v
	}
	if v, ok := lookup(EnvTelemetry); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", EnvTelemetry, v, err)
		}
		rt.Telemetry = b
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", EnvDebug, v, err)
		}
		rt.Debug = b
	}
	return rt, nil
}

// BindFlags registers command-line overrides on fs
func (r *Runtime) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&r.AssetsDir, "assets", r.AssetsDir, "Directory with sprite sheets, background and font")
	fs.Int64Var(&r.Seed, "seed", r.Seed, "Random seed (0 picks one from the clock)")
	fs.StringVar(&r.Record, "record", r.Record, "Record commands to file (e.g., -record replay.json or replay.json.zst)")
	fs.StringVar(&r.Replay, "replay", r.Replay, "Play back a recorded session")
	fs.StringVar(&r.MetricsAddr, "metrics-addr", r.MetricsAddr, "Serve Prometheus metrics on this address (e.g., :9090)")
	fs.BoolVar(&r.Debug, "debug", r.Debug, "Enable debug keys (H hurt, S charge, L force turn)")
}

// ResolveSeed returns the configured seed, or a clock-based one when unset
func (r *Runtime) ResolveSeed() int64 {
	if r.Seed != 0 {
		return r.Seed
	}
	return time.Now().UnixNano()
}
