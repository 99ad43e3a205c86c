// Package reef assembles the world grid, life placement and coral growth
// from a configuration into one session shared by the binaries.
package reef

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"reefworld/internal/config"
	"reefworld/internal/coral"
	"reefworld/internal/life"
	"reefworld/internal/mesh"
	"reefworld/internal/preview"
	"reefworld/internal/surface"
	"reefworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Stream ids mixed into the seed so each consumer gets an independent
// sequence.
const (
	streamLife uint64 = iota + 1
	streamCrystal
	streamShowcase
)

// Session owns every generator built from one configuration.
type Session struct {
	Config   *config.Config
	Settings *config.GrowthSettings

	// Showcase is the standalone coral regrown on demand.
	Showcase *coral.Spawner
	Sampler  *life.Sampler
	Grid     *world.Grid

	log *slog.Logger
}

// NewSession wires the generators and builds the initial world and coral.
func NewSession(cfg *config.Config, log *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	settings := config.NewGrowthSettings(cfg.Growth)
	crystals := coral.NewSpawner(settings, seeded(cfg.Seed, streamCrystal), coral.WithLogger(log))
	species, err := life.DefaultSpecies(life.NewCrystalArchetype(crystals))
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		Config:   cfg,
		Settings: settings,
		Showcase: coral.NewSpawner(settings, seeded(cfg.Seed, streamShowcase), coral.WithLogger(log)),
		Sampler:  life.NewSampler(cfg.Life, species, seeded(cfg.Seed, streamLife), life.WithLogger(log)),
		log:      log,
	}
	s.Grid = world.NewGrid(cfg.World, cfg.Terrain,
		world.WithSurface(surface.NewFlat()),
		world.WithSampler(s.Sampler),
		world.WithLogger(log))

	if err := s.Grid.Initialize(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s.Showcase.Rebuild()
	return s, nil
}

func seeded(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), stream))
}

// RebuildWorld regenerates every chunk.
func (s *Session) RebuildWorld() error {
	return s.Grid.RebuildAll()
}

// RegrowCoral rebuilds the showcase coral with the current settings.
func (s *Session) RegrowCoral() *mesh.Mesh {
	return s.Showcase.Rebuild()
}

// StepDepth changes the coral recursion depth by delta and regrows the
// showcase. The depth stays within the configured bounds.
func (s *Session) StepDepth(delta int) *mesh.Mesh {
	s.Settings.SetIterations(s.Settings.Iterations() + delta)
	s.log.Info("coral depth", "iterations", s.Settings.Iterations())
	return s.RegrowCoral()
}

// StepScalar nudges the branch shrink factor by delta and regrows the
// showcase. With randomize set the scalar is redrawn per node, so only the
// drift bookkeeping changes.
func (s *Session) StepScalar(delta float32) *mesh.Mesh {
	s.Settings.SetScalar(s.Settings.Scalar() + delta)
	s.log.Info("coral scalar", "scalar", s.Settings.Scalar())
	return s.RegrowCoral()
}

// Tick advances the drifting growth parameters by one step.
func (s *Session) Tick() {
	before := s.Settings.Scalar()
	if after := s.Settings.Drift(); after != before {
		s.log.Debug("growth scalar drifted", "from", before, "to", after)
	}
}

// Stats summarises the current world.
type Stats struct {
	Chunks    int
	Vertices  int
	Life      int
	BySpecies map[string]int
}

func (s *Session) Stats() Stats {
	st := Stats{BySpecies: make(map[string]int)}
	for _, ch := range s.Grid.Chunks() {
		st.Chunks++
		st.Vertices += ch.Surface().VertexCount()
		for _, in := range ch.Children() {
			st.Life++
			st.BySpecies[in.Archetype]++
		}
	}
	return st
}

// WorldScene collects every chunk surface and placed object for preview.
func (s *Session) WorldScene() *preview.Scene {
	var sc preview.Scene
	for _, ch := range s.Grid.Chunks() {
		o := ch.Origin()
		sc.Add(ch.Surface(), mgl32.Translate3D(o.X(), o.Y(), o.Z()))
		for _, in := range ch.Children() {
			sc.Add(in.Mesh, in.Transform())
		}
	}
	return &sc
}

// CoralScene holds just the showcase coral.
func (s *Session) CoralScene() *preview.Scene {
	var sc preview.Scene
	sc.Add(s.Showcase.Mesh(), mgl32.Ident4())
	return &sc
}

// Close tears the world down.
func (s *Session) Close() {
	s.Grid.Teardown()
}

// NewLogger builds a text logger at the named level. Unknown names fall
// back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
