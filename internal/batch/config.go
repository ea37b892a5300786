package batch

import (
	"fmt"
	"os"

	"github.com/ironsheep/sprite-cutout/internal/background"
)

const (
	DefaultInputDir  = "attached_assets"
	DefaultOutputDir = "client/public/characters"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvInputDir   = "SPRITE_CUTOUT_INPUT_DIR"
	EnvOutputDir  = "SPRITE_CUTOUT_OUTPUT_DIR"
	EnvStrategies = "SPRITE_CUTOUT_STRATEGIES"
)

// Job is one (source filename, destination filename) pair. Source is
// relative to the input directory, Dest to the output directory.
type Job struct {
	Source string
	Dest   string
}

// DefaultJobs returns the character sprites processed by a default run.
func DefaultJobs() []Job {
	return []Job{
		{Source: "Ivy_1753996705463.png", Dest: "ivy.png"},
		{Source: "Winter_1753996720672.png", Dest: "winter.png"},
		{Source: "Scal_1753996713989.png", Dest: "scal.png"},
		{Source: "Lightren_1753996709305.png", Dest: "lightren.png"},
	}
}

// DefaultStrategies is the fallback chain of a default run: edge sampling
// first, the fixed white/gray thresholds if that fails.
func DefaultStrategies() []background.Strategy {
	return []background.Strategy{background.EdgeSampled, background.FixedThreshold}
}

// Config describes a run.
type Config struct {
	InputDir   string
	OutputDir  string
	Jobs       []Job
	Strategies []background.Strategy
}

// DefaultConfig returns the built-in directories, jobs and strategy chain.
func DefaultConfig() Config {
	return Config{
		InputDir:   DefaultInputDir,
		OutputDir:  DefaultOutputDir,
		Jobs:       DefaultJobs(),
		Strategies: DefaultStrategies(),
	}
}

// ConfigFromEnv returns DefaultConfig with directory and strategy overrides
// taken from the environment. An unparsable strategy list is an error.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if v := os.Getenv(EnvInputDir); v != "" {
		cfg.InputDir = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvStrategies); v != "" {
		strategies, err := background.ParseStrategyList(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvStrategies, err)
		}
		cfg.Strategies = strategies
	}
	return cfg, nil
}
