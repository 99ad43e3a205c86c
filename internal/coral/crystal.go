package coral

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"reefworld/internal/config"
	"reefworld/internal/mesh"
	"reefworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Ranges the per-node parameters are redrawn from.
const (
	angleRange = 45 // integer degrees in [0, angleRange)

	scalarLow  = 0.5
	scalarHigh = 0.8

	offsetLow  = 0.4
	offsetHigh = 0.6

	widthLow     = 0.25
	widthHigh    = 0.35
	branchHeight = 2

	hueMaxLow  = 0.6
	hueMaxHigh = 1.0
)

// DefaultBranchScale is the cuboid scale used when parameters are not redrawn.
var DefaultBranchScale = mgl32.Vec3{0.25, branchHeight, 0.25}

// branch is the parameter set for one growth node.
type branch struct {
	angle1, angle2, angle3 float32
	scalar                 float32
	offset                 float32
	scale                  mgl32.Vec3
}

// Spawner grows crystalline coral: every node is a stretched cuboid that
// spawns three smaller children (one continuing from its tip, two from its
// sides) until the depth runs out. All primitives of a pass are merged into
// a single mesh.
type Spawner struct {
	settings *config.GrowthSettings
	rng      *rand.Rand
	log      *slog.Logger

	// per-pass state, valid while Build runs
	pass   config.GrowthConfig
	total  int
	hueMax float32

	mesh       *mesh.Mesh
	primitives int
}

// Option configures a Spawner.
type Option func(*Spawner)

// WithLogger sets the logger used for build reports.
func WithLogger(l *slog.Logger) Option {
	return func(s *Spawner) { s.log = l }
}

// NewSpawner creates a spawner reading live parameters from settings. All
// randomness comes from rng, so a seeded source reproduces the same coral.
func NewSpawner(settings *config.GrowthSettings, rng *rand.Rand, opts ...Option) *Spawner {
	s := &Spawner{
		settings: settings,
		rng:      rng,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.pass = settings.Snapshot()
	s.hueMax = hueMaxHigh
	return s
}

// NodeCount returns the number of primitives a pass of the given depth emits:
// (3^depth - 1) / 2, and 0 for depth <= 0.
func NodeCount(depth int) int {
	if depth <= 0 {
		return 0
	}
	pow := 1
	for i := 0; i < depth; i++ {
		pow *= 3
	}
	return (pow - 1) / 2
}

// Build runs one full growth pass of the given depth from the origin and
// stores the merged mesh as the spawner's mesh. Settings are read once, at
// the start of the pass.
func (s *Spawner) Build(depth int) *mesh.Mesh {
	defer profiling.Track("coral.Build")()

	s.pass = s.settings.Snapshot()
	s.total = depth
	s.hueMax = randRange(s.rng, hueMaxLow, hueMaxHigh)

	buf := mesh.NewCombineBuffer(NodeCount(depth))
	s.Grow(buf, depth, mgl32.Vec3{}, mgl32.QuatIdent(), 1)

	s.mesh = buf.Combine()
	s.primitives = buf.Len()

	s.log.Debug("coral built",
		"depth", depth,
		"primitives", s.primitives,
		"vertices", s.mesh.VertexCount())
	return s.mesh
}

// Rebuild runs Build with the currently configured iteration count.
func (s *Spawner) Rebuild() *mesh.Mesh {
	return s.Build(s.settings.Iterations())
}

// Mesh returns the mesh produced by the last Build, or nil.
func (s *Spawner) Mesh() *mesh.Mesh {
	return s.mesh
}

// Primitives returns how many cuboids the last Build merged.
func (s *Spawner) Primitives() int {
	return s.primitives
}

// Grow records one node into buf and recurses into its three children.
// It stops when remaining reaches zero.
func (s *Spawner) Grow(buf *mesh.CombineBuffer, remaining int, pos mgl32.Vec3, rot mgl32.Quat, scale float32) {
	if remaining <= 0 {
		return
	}

	b := s.nextBranch()
	transform := mesh.TRS(pos, rot, b.scale.Mul(scale))
	buf.Add(mesh.Cuboid(s.colorAt(remaining)), transform)

	remaining--

	tip := mgl32.TransformCoordinate(mgl32.Vec3{0, 1, 0}, transform)
	side1 := mgl32.TransformCoordinate(mgl32.Vec3{b.offset, b.offset, b.offset}, transform)
	side2 := mgl32.TransformCoordinate(mgl32.Vec3{-b.offset, b.offset, -b.offset}, transform)

	rot1 := rot.Mul(mesh.Euler(b.angle3, b.angle1, b.angle2))
	rot2 := rot.Mul(mesh.Euler(0, b.angle2, 0))
	rot3 := rot.Mul(mesh.Euler(-b.angle3, 0, -b.angle2))

	scale *= b.scalar

	s.Grow(buf, remaining, tip, rot1, scale)
	s.Grow(buf, remaining, side1, rot2, scale)
	s.Grow(buf, remaining, side2, rot3, scale)
}

// nextBranch returns the parameters for one node. With randomization on,
// they are redrawn for every node; otherwise the configured values are used.
func (s *Spawner) nextBranch() branch {
	if !s.pass.Randomize {
		return branch{
			angle1: s.pass.Angle1,
			angle2: s.pass.Angle2,
			angle3: s.pass.Angle3,
			scalar: s.pass.Scalar,
			offset: s.pass.BranchOffset,
			scale:  DefaultBranchScale,
		}
	}
	return branch{
		angle1: float32(s.rng.IntN(angleRange)),
		angle2: float32(s.rng.IntN(angleRange)),
		angle3: float32(s.rng.IntN(angleRange)),
		scalar: randRange(s.rng, scalarLow, scalarHigh),
		offset: randRange(s.rng, offsetLow, offsetHigh),
		scale: mgl32.Vec3{
			randRange(s.rng, widthLow, widthHigh),
			branchHeight,
			randRange(s.rng, widthLow, widthHigh),
		},
	}
}

// colorAt interpolates the hue between HueMin and the pass maximum by how
// much depth is left, so color tracks recursion level rather than branch.
func (s *Spawner) colorAt(remaining int) mgl32.Vec4 {
	t := float32(1)
	if s.total > 0 {
		t = float32(remaining) / float32(s.total)
	}
	hue := s.pass.HueMin + (s.hueMax-s.pass.HueMin)*t
	col := colorful.Hsv(math.Mod(float64(hue), 1)*360, 1, 1)
	return mgl32.Vec4{float32(col.R), float32(col.G), float32(col.B), 1}
}

func randRange(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
