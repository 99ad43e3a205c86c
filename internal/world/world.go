package world

import (
	"errors"
	"fmt"
	"log/slog"

	"reefworld/internal/config"
	"reefworld/internal/life"
	"reefworld/internal/profiling"
)

// ErrNoChunkArchetype is returned by Initialize when no surface extractor
// has been configured.
var ErrNoChunkArchetype = errors.New("world: no chunk archetype configured")

// Populator places growth on a chunk. life.Sampler implements it.
type Populator interface {
	Populate(host life.Host) int
}

// Grid owns the cube of chunks around the origin and rebuilds it on demand.
type Grid struct {
	cfg     config.WorldConfig
	terrain config.TerrainConfig

	surface SurfaceExtractor
	sampler Populator
	log     *slog.Logger

	store       *ChunkStore
	initialized bool
}

// GridOption configures a Grid.
type GridOption func(*Grid)

// WithSurface sets the extractor every chunk uses to build its surface.
func WithSurface(s SurfaceExtractor) GridOption {
	return func(g *Grid) { g.surface = s }
}

// WithSampler enables life placement after each rebuild.
func WithSampler(p Populator) GridOption {
	return func(g *Grid) { g.sampler = p }
}

// WithLogger sets the grid's logger.
func WithLogger(l *slog.Logger) GridOption {
	return func(g *Grid) { g.log = l }
}

// NewGrid creates an uninitialized grid.
func NewGrid(cfg config.WorldConfig, terrain config.TerrainConfig, opts ...GridOption) *Grid {
	g := &Grid{
		cfg:     cfg,
		terrain: terrain,
		log:     slog.Default(),
		store:   NewChunkStore(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Initialize validates the grid's configuration and builds the first set of
// chunks.
func (g *Grid) Initialize() error {
	if g.surface == nil {
		return ErrNoChunkArchetype
	}
	if err := g.cfg.Validate(); err != nil {
		return fmt.Errorf("initialize grid: %w", err)
	}
	if err := g.terrain.Validate(); err != nil {
		return fmt.Errorf("initialize grid: %w", err)
	}
	g.initialized = true
	return g.RebuildAll()
}

// RebuildAll destroys every chunk and recreates the grid. Before Initialize
// it does nothing.
func (g *Grid) RebuildAll() error {
	if !g.initialized {
		g.log.Debug("rebuild skipped, grid not initialized")
		return nil
	}
	defer profiling.Track("world.RebuildAll")()

	removed := g.store.Clear()

	r, rv := g.cfg.RenderDistance, g.cfg.RenderDistanceVertical
	res := g.cfg.ResolutionPerChunk
	for x := -r; x <= r; x++ {
		for y := -rv; y <= rv; y++ {
			for z := -r; z <= r; z++ {
				coord := ChunkCoord{X: x, Y: y, Z: z}
				if !g.store.Add(NewChunk(coord, res, g.terrain, g.surface)) {
					return fmt.Errorf("rebuild grid: duplicate chunk %v", coord)
				}
			}
		}
	}

	chunks := g.store.All()
	for _, ch := range chunks {
		ch.RebuildSurface()
	}

	placed := 0
	if g.cfg.PopulateLife && g.sampler != nil {
		for _, ch := range chunks {
			placed += g.sampler.Populate(ch)
		}
	}

	g.log.Info("world rebuilt",
		"removed", removed,
		"chunks", len(chunks),
		"resolution", res,
		"life", placed)
	return nil
}

// Teardown destroys all chunks. The grid must be initialized again before
// RebuildAll has any effect.
func (g *Grid) Teardown() {
	g.store.Clear()
	g.initialized = false
}

// Chunks returns the live chunks in x, y, z enumeration order.
func (g *Grid) Chunks() []*Chunk {
	return g.store.All()
}

// Len returns the number of live chunks.
func (g *Grid) Len() int {
	return g.store.Len()
}

// ChunkAt returns the chunk at coord, or nil.
func (g *Grid) ChunkAt(coord ChunkCoord) *Chunk {
	return g.store.Get(coord)
}

func (g *Grid) Initialized() bool {
	return g.initialized
}

func (g *Grid) Config() config.WorldConfig {
	return g.cfg
}

// ExpectedChunks returns the chunk count for a configuration:
// (2R+1)^2 * (2Rv+1).
func ExpectedChunks(cfg config.WorldConfig) int {
	side := 2*cfg.RenderDistance + 1
	return side * side * (2*cfg.RenderDistanceVertical + 1)
}
