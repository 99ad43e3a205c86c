package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDefaultConfig(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default configuration should be valid: %v", err)
	}
}

func TestValidateDetectsInvalidConfigurations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown log level",
			mutate:  func(cfg *Config) { cfg.LogLevel = "loud" },
			wantErr: "log_level",
		},
		{
			name:    "negative render distance",
			mutate:  func(cfg *Config) { cfg.World.RenderDistance = -1 },
			wantErr: "world.render_distance must be within",
		},
		{
			name:    "render distance too large",
			mutate:  func(cfg *Config) { cfg.World.RenderDistance = MaxRenderDistance + 1 },
			wantErr: "world.render_distance must be within",
		},
		{
			name:    "vertical distance too large",
			mutate:  func(cfg *Config) { cfg.World.RenderDistanceVertical = 4 },
			wantErr: "world.render_distance_vertical",
		},
		{
			name:    "zero resolution",
			mutate:  func(cfg *Config) { cfg.World.ResolutionPerChunk = 0 },
			wantErr: "world.resolution_per_chunk",
		},
		{
			name:    "zoom below one",
			mutate:  func(cfg *Config) { cfg.Terrain.Zoom = 0.5 },
			wantErr: "terrain.zoom",
		},
		{
			name:    "threshold bias out of range",
			mutate:  func(cfg *Config) { cfg.Terrain.ThresholdBias = 2 },
			wantErr: "terrain.threshold_bias",
		},
		{
			name:    "flatten out of range",
			mutate:  func(cfg *Config) { cfg.Terrain.FlattenAmount = -0.1 },
			wantErr: "terrain.flatten_amount",
		},
		{
			name:    "vertical offset out of range",
			mutate:  func(cfg *Config) { cfg.Terrain.VerticalOffset = 101 },
			wantErr: "terrain.vertical_offset",
		},
		{
			name:    "negative life amount",
			mutate:  func(cfg *Config) { cfg.Life.AmountMin = -1 },
			wantErr: "life.amount_min cannot be negative",
		},
		{
			name:    "inverted life range",
			mutate:  func(cfg *Config) { cfg.Life.AmountMin, cfg.Life.AmountMax = 4, 2 },
			wantErr: "life.amount_max must be >= amount_min",
		},
		{
			name:    "iterations too deep",
			mutate:  func(cfg *Config) { cfg.Growth.Iterations = 9 },
			wantErr: "growth.iterations must be within [2,8]",
		},
		{
			name:    "iterations too shallow",
			mutate:  func(cfg *Config) { cfg.Growth.Iterations = 1 },
			wantErr: "growth.iterations",
		},
		{
			name:    "angle out of range",
			mutate:  func(cfg *Config) { cfg.Growth.Angle2 = 50 },
			wantErr: "growth.angle2",
		},
		{
			name:    "scalar out of range",
			mutate:  func(cfg *Config) { cfg.Growth.Scalar = 0.9 },
			wantErr: "growth.scalar",
		},
		{
			name:    "branch offset out of range",
			mutate:  func(cfg *Config) { cfg.Growth.BranchOffset = 0.1 },
			wantErr: "growth.branch_offset",
		},
		{
			name:    "hue min out of range",
			mutate:  func(cfg *Config) { cfg.Growth.HueMin = 1.5 },
			wantErr: "growth.hue_min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reef.yaml")
	data := `
seed: 42
world:
  render_distance: 1
  render_distance_vertical: 0
growth:
  iterations: 5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Seed)
	}
	if cfg.World.RenderDistance != 1 || cfg.World.RenderDistanceVertical != 0 {
		t.Errorf("world = %+v", cfg.World)
	}
	if cfg.World.ResolutionPerChunk != Default().World.ResolutionPerChunk {
		t.Errorf("resolution lost its default: %d", cfg.World.ResolutionPerChunk)
	}
	if cfg.Growth.Iterations != 5 {
		t.Errorf("iterations = %d, want 5", cfg.Growth.Iterations)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reef.yaml")
	if err := os.WriteFile(path, []byte("growth:\n  iterations: 20\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "validate config") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reef.yaml")
	cfg := Default()
	cfg.Seed = 7
	cfg.Growth.Iterations = 6
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("loaded %+v, want %+v", got, cfg)
	}
}
