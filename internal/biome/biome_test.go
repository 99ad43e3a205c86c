package biome

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestHueRoundTrip(t *testing.T) {
	for _, c := range All() {
		got := FromHue(New(c).Hue()).Owner
		if got != c {
			t.Errorf("FromHue(Hue(%v)) = %v, want %v", c, got, c)
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	for _, c := range All() {
		col := New(c).VertexColor()
		got := FromColor(col).Owner
		if got != c {
			t.Errorf("FromColor(VertexColor(%v)) = %v (color %v)", c, got, col)
		}
	}
}

func TestHueValues(t *testing.T) {
	if h := New(Andrew).Hue(); h != 0 {
		t.Fatalf("Andrew hue = %v, want 0", h)
	}
	if h := New(Zach).Hue(); h >= 1 {
		t.Fatalf("Zach hue = %v, must stay below 1", h)
	}
}

func TestFromHueWrapsNearOne(t *testing.T) {
	tests := []struct {
		hue  float64
		want Category
	}{
		{0.999, Andrew},
		{1.0, Andrew},
		{1 - 0.4/float64(Count), Andrew},
		{1 - 0.6/float64(Count), Zach},
		{-0.01, Andrew},
		{-1.0 / float64(Count), Zach},
	}
	for _, tt := range tests {
		got := FromHue(tt.hue).Owner
		if !got.Valid() {
			t.Fatalf("FromHue(%v) = %d, outside [0,%d)", tt.hue, got, Count)
		}
		if got != tt.want {
			t.Errorf("FromHue(%v) = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

func TestFromHueNeverOutOfRange(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		h := float64(i) / 1000
		if c := FromHue(h).Owner; !c.Valid() {
			t.Fatalf("FromHue(%v) = %d, out of range", h, c)
		}
	}
}

func TestFromColorIgnoresSaturationAndValue(t *testing.T) {
	full := New(Eric).VertexColor()
	dim := mgl32.Vec4{full[0] * 0.5, full[1] * 0.5, full[2] * 0.5, 1}
	if got := FromColor(dim).Owner; got != Eric {
		t.Errorf("dimmed color decoded to %v, want Eric", got)
	}
}

func TestFromColorGrayIsFirstCategory(t *testing.T) {
	if got := FromColor(mgl32.Vec4{0.5, 0.5, 0.5, 1}).Owner; got != Andrew {
		t.Errorf("gray decoded to %v, want Andrew", got)
	}
}

func TestFromIntWraps(t *testing.T) {
	if got := FromInt(Count).Owner; got != Andrew {
		t.Errorf("FromInt(Count) = %v, want Andrew", got)
	}
	if got := FromInt(-1).Owner; got != Zach {
		t.Errorf("FromInt(-1) = %v, want Zach", got)
	}
}

func TestCategoryString(t *testing.T) {
	if s := Cameron.String(); s != "Cameron" {
		t.Errorf("Cameron.String() = %q", s)
	}
	if s := Category(42).String(); s != "Unknown" {
		t.Errorf("Category(42).String() = %q", s)
	}
}
