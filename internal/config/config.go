package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full set of tunables for building a reef world.
type Config struct {
	Seed     int64         `yaml:"seed"`
	LogLevel string        `yaml:"log_level"`
	World    WorldConfig   `yaml:"world"`
	Terrain  TerrainConfig `yaml:"terrain"`
	Life     LifeConfig    `yaml:"life"`
	Growth   GrowthConfig  `yaml:"growth"`
}

// WorldConfig sizes the chunk lattice.
type WorldConfig struct {
	RenderDistance         int  `yaml:"render_distance"`          // lateral half-extent in chunks
	RenderDistanceVertical int  `yaml:"render_distance_vertical"` // vertical half-extent in chunks
	ResolutionPerChunk     int  `yaml:"resolution_per_chunk"`     // voxels per chunk edge
	PopulateLife           bool `yaml:"populate_life"`
}

// TerrainConfig is handed untouched to the surface extractor.
type TerrainConfig struct {
	Zoom           float32 `yaml:"zoom"`
	ThresholdBias  float32 `yaml:"threshold_bias"`
	FlattenAmount  float32 `yaml:"flatten_amount"`
	VerticalOffset float32 `yaml:"vertical_offset"`
}

// LifeConfig bounds how many growth objects each chunk attempts to place.
type LifeConfig struct {
	AmountMin int `yaml:"amount_min"`
	AmountMax int `yaml:"amount_max"`
}

// GrowthConfig holds the coral crystal parameters. Angles are degrees.
// With Randomize set, angles, scalar, branch offset and branch scale are
// redrawn for every node and the configured values are ignored.
type GrowthConfig struct {
	Randomize    bool    `yaml:"randomize"`
	Iterations   int     `yaml:"iterations"`
	Angle1       float32 `yaml:"angle1"`
	Angle2       float32 `yaml:"angle2"`
	Angle3       float32 `yaml:"angle3"`
	Scalar       float32 `yaml:"scalar"`
	BranchOffset float32 `yaml:"branch_offset"`
	HueMin       float32 `yaml:"hue_min"`
}

// Bounds for the configuration ranges.
const (
	MaxRenderDistance         = 8
	MaxRenderDistanceVertical = 3
	MaxResolutionPerChunk     = 20

	MinIterations = 2
	MaxIterations = 8
	MaxAngle      = 45

	MinScalar       = 0.1
	MaxScalar       = 0.85
	MinBranchOffset = 0.25
	MaxBranchOffset = 0.8
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Seed:     1,
		LogLevel: "info",
		World: WorldConfig{
			RenderDistance:         3,
			RenderDistanceVertical: 1,
			ResolutionPerChunk:     10,
			PopulateLife:           true,
		},
		Terrain: TerrainConfig{
			Zoom:           20,
			ThresholdBias:  0,
			FlattenAmount:  0.3,
			VerticalOffset: 0,
		},
		Life: LifeConfig{
			AmountMin: 1,
			AmountMax: 5,
		},
		Growth: GrowthConfig{
			Randomize:    true,
			Iterations:   3,
			Angle1:       25,
			Angle2:       25,
			Angle3:       25,
			Scalar:       0.5,
			BranchOffset: 0.5,
			HueMin:       0.4,
		},
	}
}

// Load reads configuration from a YAML file. An empty path returns defaults.
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q must be one of debug, info, warn, error", c.LogLevel)
	}
	if err := c.World.Validate(); err != nil {
		return err
	}
	if err := c.Terrain.Validate(); err != nil {
		return err
	}
	if err := c.Life.Validate(); err != nil {
		return err
	}
	return c.Growth.Validate()
}

// Validate checks the lattice extents.
func (w WorldConfig) Validate() error {
	if w.RenderDistance < 0 || w.RenderDistance > MaxRenderDistance {
		return fmt.Errorf("world.render_distance must be within [0,%d]", MaxRenderDistance)
	}
	if w.RenderDistanceVertical < 0 || w.RenderDistanceVertical > MaxRenderDistanceVertical {
		return fmt.Errorf("world.render_distance_vertical must be within [0,%d]", MaxRenderDistanceVertical)
	}
	if w.ResolutionPerChunk < 1 || w.ResolutionPerChunk > MaxResolutionPerChunk {
		return fmt.Errorf("world.resolution_per_chunk must be within [1,%d]", MaxResolutionPerChunk)
	}
	return nil
}

// Validate checks the pass-through terrain ranges.
func (t TerrainConfig) Validate() error {
	if t.Zoom < 1 || t.Zoom > 100 {
		return errors.New("terrain.zoom must be within [1,100]")
	}
	if t.ThresholdBias < -1 || t.ThresholdBias > 1 {
		return errors.New("terrain.threshold_bias must be within [-1,1]")
	}
	if t.FlattenAmount < 0 || t.FlattenAmount > 1 {
		return errors.New("terrain.flatten_amount must be within [0,1]")
	}
	if t.VerticalOffset < -100 || t.VerticalOffset > 100 {
		return errors.New("terrain.vertical_offset must be within [-100,100]")
	}
	return nil
}

// Validate checks the placement amount range.
func (l LifeConfig) Validate() error {
	if l.AmountMin < 0 {
		return errors.New("life.amount_min cannot be negative")
	}
	if l.AmountMax < l.AmountMin {
		return errors.New("life.amount_max must be >= amount_min")
	}
	return nil
}

// Validate bounds the recursion depth and branch parameters. Depth is the
// only guard against the exponential node count, so it is enforced here
// rather than inside the generator.
func (g GrowthConfig) Validate() error {
	if g.Iterations < MinIterations || g.Iterations > MaxIterations {
		return fmt.Errorf("growth.iterations must be within [%d,%d]", MinIterations, MaxIterations)
	}
	for i, a := range []float32{g.Angle1, g.Angle2, g.Angle3} {
		if a < 0 || a > MaxAngle {
			return fmt.Errorf("growth.angle%d must be within [0,%d]", i+1, MaxAngle)
		}
	}
	if g.Scalar < MinScalar || g.Scalar > MaxScalar {
		return fmt.Errorf("growth.scalar must be within [%.2f,%.2f]", MinScalar, MaxScalar)
	}
	if g.BranchOffset < MinBranchOffset || g.BranchOffset > MaxBranchOffset {
		return fmt.Errorf("growth.branch_offset must be within [%.2f,%.2f]", MinBranchOffset, MaxBranchOffset)
	}
	if g.HueMin < 0 || g.HueMin > 1 {
		return errors.New("growth.hue_min must be within [0,1]")
	}
	return nil
}
