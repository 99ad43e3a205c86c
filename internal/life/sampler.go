package life

import (
	"log/slog"
	"math/rand/v2"

	"reefworld/internal/biome"
	"reefworld/internal/config"
	"reefworld/internal/mesh"
	"reefworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxAttempts is how many random vertices are tried per object before giving up.
const MaxAttempts = 5

// Host is a surface that growth objects can be placed on. world.Chunk
// implements it.
type Host interface {
	Origin() mgl32.Vec3
	Surface() *mesh.Mesh
	AddChild(*Instance)
}

// Sampler scatters growth objects over a host's surface mesh, picking the
// species from the biome baked into each vertex color. It does not check
// distances between placed objects.
type Sampler struct {
	amountMin, amountMax int
	species              SpeciesMapping
	rng                  *rand.Rand
	log                  *slog.Logger
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithLogger sets the logger used for per-placement debug output.
func WithLogger(l *slog.Logger) SamplerOption {
	return func(s *Sampler) { s.log = l }
}

// NewSampler creates a sampler placing between cfg.AmountMin and
// cfg.AmountMax objects per host.
func NewSampler(cfg config.LifeConfig, species SpeciesMapping, rng *rand.Rand, opts ...SamplerOption) *Sampler {
	s := &Sampler{
		amountMin: cfg.AmountMin,
		amountMax: cfg.AmountMax,
		species:   species,
		rng:       rng,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Populate attempts to place a random number of objects on host and returns
// how many were actually instantiated. A host without a usable mesh is left
// untouched.
func (s *Sampler) Populate(host Host) int {
	defer profiling.Track("life.Populate")()

	n := host.Surface().VertexCount()
	if n == 0 {
		return 0
	}

	amount := s.amountMin
	if s.amountMax > s.amountMin {
		amount += s.rng.IntN(s.amountMax - s.amountMin + 1)
	}

	placed := 0
	for i := 0; i < amount; i++ {
		for attempt := 0; attempt < MaxAttempts; attempt++ {
			ok, spawned := s.tryPlace(host, s.rng.IntN(n))
			if spawned {
				placed++
			}
			if ok {
				break
			}
		}
	}
	return placed
}

// TryPlaceAt evaluates the vertex at index. It returns false, without side
// effects, when index is outside the mesh. Otherwise it returns true even
// when the decoded biome has no species and nothing was placed: the vertex
// was evaluated successfully, which ends the caller's retry loop.
func (s *Sampler) TryPlaceAt(host Host, index int) bool {
	ok, _ := s.tryPlace(host, index)
	return ok
}

func (s *Sampler) tryPlace(host Host, index int) (ok, spawned bool) {
	m := host.Surface()
	if index < 0 || index >= m.VertexCount() || !m.HasAttributes() {
		return false, false
	}

	pos := m.Vertices[index].Add(host.Origin())
	rot := mesh.FromToRotation(mesh.Up, m.Normals[index])
	b := biome.FromColor(m.Colors[index])

	arch, found := s.species.Lookup(b.Owner)
	if !found {
		return true, false
	}

	s.log.Debug("spawning life", "biome", b.Owner.String(), "species", arch.Name(), "pos", pos)
	host.AddChild(arch.Instantiate(pos, rot, 1))
	return true, true
}
