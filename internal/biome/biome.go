package biome

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Category identifies who owns a region of the reef. The ordinal doubles as the
// hue slot used when the category is baked into vertex colors.
type Category int

const (
	Andrew Category = iota
	Cameron
	Chris
	Dominic
	Eric
	Jess
	Jesse
	Josh
	Justin
	Kaylee
	Keegan
	Kyle
	Zach
)

// Count is the number of categories the codec distinguishes.
const Count = int(Zach) + 1

var categoryNames = [Count]string{
	"Andrew", "Cameron", "Chris", "Dominic", "Eric", "Jess", "Jesse",
	"Josh", "Justin", "Kaylee", "Keegan", "Kyle", "Zach",
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < Count
}

func (c Category) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryNames[c]
}

// All returns every category in ordinal order.
func All() []Category {
	out := make([]Category, Count)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Biome wraps a single owner category and converts it to and from the
// hue carried in per-vertex color.
type Biome struct {
	Owner Category
}

// New creates a Biome for the given owner.
func New(owner Category) Biome {
	return Biome{Owner: owner}
}

// FromInt creates a Biome from an ordinal. Out of range ordinals wrap around.
func FromInt(i int) Biome {
	return Biome{Owner: Category(wrap(i))}
}

// FromHue decodes a hue in [0,1) back to its category. The ordinal is rounded
// half-to-even and wrapped modulo Count, so hues just below 1.0 land on the
// first category again rather than one past the end.
func FromHue(hue float64) Biome {
	n := int(math.RoundToEven(hue * float64(Count)))
	return FromInt(n)
}

// FromColor decodes the category from an RGB(A) vertex color. Only the hue
// channel is considered.
func FromColor(c mgl32.Vec4) Biome {
	col := colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}
	h, _, _ := col.Hsv()
	return FromHue(h / 360)
}

// Hue returns the value in [0,1) that encodes the owner.
func (b Biome) Hue() float64 {
	return float64(b.Owner) / float64(Count)
}

// VertexColor returns the fully saturated, full value color for the owner's hue.
func (b Biome) VertexColor() mgl32.Vec4 {
	col := colorful.Hsv(b.Hue()*360, 1, 1)
	return mgl32.Vec4{float32(col.R), float32(col.G), float32(col.B), 1}
}

func (b Biome) String() string {
	return b.Owner.String()
}

func wrap(i int) int {
	i %= Count
	if i < 0 {
		i += Count
	}
	return i
}
