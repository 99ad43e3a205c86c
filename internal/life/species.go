package life

import (
	"errors"
	"fmt"
	"sort"

	"reefworld/internal/biome"
	"reefworld/internal/coral"
	"reefworld/internal/mesh"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidSpecies is returned when a species table refers to an unknown
// biome or has an empty archetype slot.
var ErrInvalidSpecies = errors.New("invalid species mapping")

// Archetype is something that can be placed on a chunk surface.
type Archetype interface {
	Name() string
	Instantiate(pos mgl32.Vec3, rot mgl32.Quat, scale float32) *Instance
}

// Instance is one placed growth object.
type Instance struct {
	Archetype string
	Position  mgl32.Vec3
	Rotation  mgl32.Quat
	Scale     float32
	Mesh      *mesh.Mesh
}

// Transform returns the instance's local-to-world matrix.
func (in *Instance) Transform() mgl32.Mat4 {
	return mesh.TRS(in.Position, in.Rotation, mgl32.Vec3{in.Scale, in.Scale, in.Scale})
}

// StaticArchetype places copies of a fixed prototype mesh. The prototype is
// shared between instances and must not be mutated.
type StaticArchetype struct {
	name      string
	prototype *mesh.Mesh
}

// NewStaticArchetype creates an archetype around a prototype mesh.
func NewStaticArchetype(name string, prototype *mesh.Mesh) *StaticArchetype {
	return &StaticArchetype{name: name, prototype: prototype}
}

func (a *StaticArchetype) Name() string { return a.name }

func (a *StaticArchetype) Instantiate(pos mgl32.Vec3, rot mgl32.Quat, scale float32) *Instance {
	return &Instance{Archetype: a.name, Position: pos, Rotation: rot, Scale: scale, Mesh: a.prototype}
}

// CrystalArchetype grows a fresh coral crystal for every instance.
type CrystalArchetype struct {
	spawner *coral.Spawner
}

// NewCrystalArchetype wraps a coral spawner.
func NewCrystalArchetype(s *coral.Spawner) *CrystalArchetype {
	return &CrystalArchetype{spawner: s}
}

func (a *CrystalArchetype) Name() string { return "coral-crystal" }

func (a *CrystalArchetype) Instantiate(pos mgl32.Vec3, rot mgl32.Quat, scale float32) *Instance {
	return &Instance{Archetype: a.Name(), Position: pos, Rotation: rot, Scale: scale, Mesh: a.spawner.Rebuild()}
}

// SpeciesMapping resolves which archetype grows in which biome. Biomes
// without an entry grow nothing.
type SpeciesMapping struct {
	byBiome map[biome.Category]Archetype
}

// NewSpeciesMapping validates and copies table.
func NewSpeciesMapping(table map[biome.Category]Archetype) (SpeciesMapping, error) {
	m := SpeciesMapping{byBiome: make(map[biome.Category]Archetype, len(table))}
	for c, a := range table {
		if !c.Valid() {
			return SpeciesMapping{}, fmt.Errorf("%w: biome %d out of range", ErrInvalidSpecies, int(c))
		}
		if a == nil {
			return SpeciesMapping{}, fmt.Errorf("%w: no archetype for %v", ErrInvalidSpecies, c)
		}
		m.byBiome[c] = a
	}
	return m, nil
}

// Lookup returns the archetype for c.
func (m SpeciesMapping) Lookup(c biome.Category) (Archetype, bool) {
	a, ok := m.byBiome[c]
	return a, ok
}

// Len returns the number of mapped biomes.
func (m SpeciesMapping) Len() int {
	return len(m.byBiome)
}

// Mapped returns the mapped biomes in ordinal order.
func (m SpeciesMapping) Mapped() []biome.Category {
	out := make([]biome.Category, 0, len(m.byBiome))
	for c := range m.byBiome {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DefaultSpecies builds the stock reef table: crystal coral grows in
// Cameron's biome and each of the other coral owners gets a placeholder
// prototype tinted with their biome color. Seven biomes stay empty.
func DefaultSpecies(crystal Archetype) (SpeciesMapping, error) {
	placeholder := func(name string, owner biome.Category) Archetype {
		return NewStaticArchetype(name, mesh.Cuboid(biome.New(owner).VertexColor()))
	}
	return NewSpeciesMapping(map[biome.Category]Archetype{
		biome.Cameron: crystal,
		biome.Chris:   placeholder("tube-worm", biome.Chris),
		biome.Dominic: placeholder("coral-voronoi", biome.Dominic),
		biome.Eric:    placeholder("coral-tree", biome.Eric),
		biome.Jess:    placeholder("coral-broccoli", biome.Jess),
		biome.Justin:  placeholder("coral-bauble", biome.Justin),
	})
}
