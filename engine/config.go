package engine

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/pelletier/go-toml/v2"

	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/interpolation"
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/animator"
	"github.com/Carmen-Shannon/oxy-foliage/engine/scene"
)

// Config holds the engine and scene settings read from a TOML file. Zero fields take defaults.
type Config struct {
	TickRate          float64    `toml:"tick_rate"`
	Profiling         bool       `toml:"profiling"`
	ProfileIntervalMs int        `toml:"profile_interval_ms"`
	ComputeWorkers    int        `toml:"compute_workers"`
	Wind              WindConfig `toml:"wind"`
}

// WindConfig holds the wind animator settings.
type WindConfig struct {
	Enabled        bool       `toml:"enabled"`
	Backend        string     `toml:"backend"` // "sine" or "curve"
	Curve          string     `toml:"curve"`   // interpolation curve name for the curve backend
	Direction      [2]float32 `toml:"direction"`
	TrunkAmplitude float32    `toml:"trunk_amplitude"`
	TrunkFrequency float32    `toml:"trunk_frequency"`
	LeafAmplitude  float32    `toml:"leaf_amplitude"`
	LeafFrequency  float32    `toml:"leaf_frequency"`
}

// DefaultConfig returns the configuration used when no file is given.
//
// Returns:
//   - Config: the defaults
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	c.TickRate = common.Coalesce(c.TickRate, 60)
	c.ProfileIntervalMs = common.Coalesce(c.ProfileIntervalMs, 1000)
	c.ComputeWorkers = common.Coalesce(c.ComputeWorkers, max(runtime.NumCPU()-1, 1))
	c.Wind.Backend = common.Coalesce(c.Wind.Backend, "sine")
	c.Wind.Curve = common.Coalesce(c.Wind.Curve, interpolation.SineInSineOut.String())
	c.Wind.Direction = common.Coalesce(c.Wind.Direction, [2]float32{1, 0})
	c.Wind.TrunkAmplitude = common.Coalesce(c.Wind.TrunkAmplitude, 0.05)
	c.Wind.TrunkFrequency = common.Coalesce(c.Wind.TrunkFrequency, 0.25)
	c.Wind.LeafAmplitude = common.Coalesce(c.Wind.LeafAmplitude, 0.15)
	c.Wind.LeafFrequency = common.Coalesce(c.Wind.LeafFrequency, 1.5)
	return c
}

// LoadConfig decodes a TOML config. Unknown keys are rejected.
//
// Parameters:
//   - r: the TOML document
//
// Returns:
//   - Config: the decoded config with defaults filled in
//   - error: error if the document is malformed or names an unknown key
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode engine config: %w", err)
	}
	c = c.withDefaults()
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfigFile decodes the TOML config at path.
//
// Parameters:
//   - path: the config file
//
// Returns:
//   - Config: the decoded config with defaults filled in
//   - error: error if the file cannot be read or decoded
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open engine config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

func (c Config) validate() error {
	switch c.Wind.Backend {
	case "sine", "curve":
	default:
		return fmt.Errorf("engine config: unknown wind backend %q", c.Wind.Backend)
	}
	if _, ok := interpolation.ParseFuncType(c.Wind.Curve); !ok {
		return fmt.Errorf("engine config: unknown wind curve %q", c.Wind.Curve)
	}
	if c.TickRate < 0 || c.ComputeWorkers < 0 || c.ProfileIntervalMs < 0 {
		return fmt.Errorf("engine config: negative rate, worker count or interval")
	}
	return nil
}

// NewAnimator builds the wind animator described by the config.
//
// Returns:
//   - animator.Animator: the configured animator
func (w WindConfig) NewAnimator() animator.Animator {
	backend := animator.BackendTypeSine
	if w.Backend == "curve" {
		backend = animator.BackendTypeCurve
	}
	curve, _ := interpolation.ParseFuncType(w.Curve)
	return animator.NewAnimator(backend,
		animator.WithEnabled(w.Enabled),
		animator.WithWindDirection(w.Direction),
		animator.WithTrunkOscillation(w.TrunkAmplitude, w.TrunkFrequency),
		animator.WithLeafOscillation(w.LeafAmplitude, w.LeafFrequency),
		animator.WithCurve(curve),
	)
}

// SceneOptions returns the scene options described by the config. Each call builds a
// fresh animator, so scenes created from the same config do not share one.
//
// Returns:
//   - []scene.SceneBuilderOption: options for scene.NewScene
func (c Config) SceneOptions() []scene.SceneBuilderOption {
	c = c.withDefaults()
	return []scene.SceneBuilderOption{
		scene.WithComputeWorkers(c.ComputeWorkers),
		scene.WithAnimator(c.Wind.NewAnimator()),
	}
}
