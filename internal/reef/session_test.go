package reef

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"reefworld/internal/config"
	"reefworld/internal/coral"
	"reefworld/internal/mesh"
	"reefworld/internal/world"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewSessionBuildsWorldAndCoral(t *testing.T) {
	cfg := config.Default()
	s, err := NewSession(cfg, quietLogger())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()

	if got, want := s.Grid.Len(), world.ExpectedChunks(cfg.World); got != want {
		t.Fatalf("grid has %d chunks, want %d", got, want)
	}
	want := coral.NodeCount(cfg.Growth.Iterations) * mesh.CuboidVertexCount
	if got := s.Showcase.Mesh().VertexCount(); got != want {
		t.Fatalf("showcase coral has %d vertices, want %d", got, want)
	}

	st := s.Stats()
	if st.Chunks != s.Grid.Len() {
		t.Fatalf("stats chunks = %d", st.Chunks)
	}
	total := 0
	for _, n := range st.BySpecies {
		total += n
	}
	if total != st.Life {
		t.Fatalf("species breakdown sums to %d, life = %d", total, st.Life)
	}
	if st.Life > st.Chunks*cfg.Life.AmountMax {
		t.Fatalf("placed %d objects, more than %d chunks allow", st.Life, st.Chunks)
	}
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Growth.Iterations = 12
	if _, err := NewSession(cfg, quietLogger()); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestSessionSameSeedSameWorld(t *testing.T) {
	run := func() Stats {
		s, err := NewSession(config.Default(), quietLogger())
		if err != nil {
			t.Fatalf("NewSession: %v", err)
		}
		defer s.Close()
		return s.Stats()
	}
	a, b := run(), run()
	if a.Life != b.Life || a.Vertices != b.Vertices {
		t.Fatalf("same seed produced %+v and %+v", a, b)
	}
	for k, v := range a.BySpecies {
		if b.BySpecies[k] != v {
			t.Fatalf("species %s: %d vs %d", k, v, b.BySpecies[k])
		}
	}
}

func TestTickDriftsScalar(t *testing.T) {
	cfg := config.Default()
	cfg.Growth.Scalar = 0.2
	s, err := NewSession(cfg, quietLogger())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Tick()
	if got := s.Settings.Scalar(); got < 0.29 || got > 0.31 {
		t.Fatalf("scalar after tick = %v, want 0.3", got)
	}
}

func TestStepDepthRegrowsWithinBounds(t *testing.T) {
	s, err := NewSession(config.Default(), quietLogger())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	start := s.Settings.Iterations()

	m := s.StepDepth(1)
	if got := s.Settings.Iterations(); got != start+1 {
		t.Fatalf("iterations = %d, want %d", got, start+1)
	}
	if want := coral.NodeCount(start+1) * mesh.CuboidVertexCount; m.VertexCount() != want {
		t.Fatalf("regrown vertices = %d, want %d", m.VertexCount(), want)
	}
	if m != s.Showcase.Mesh() {
		t.Fatal("StepDepth did not replace the showcase mesh")
	}

	for i := 0; i < 2*config.MaxIterations; i++ {
		s.StepDepth(-1)
	}
	if got := s.Settings.Iterations(); got != config.MinIterations {
		t.Fatalf("iterations = %d, want clamp at %d", got, config.MinIterations)
	}
}

func TestStepScalarClamps(t *testing.T) {
	cfg := config.Default()
	cfg.Growth.Scalar = 0.5
	s, err := NewSession(cfg, quietLogger())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.StepScalar(0.05)
	if got := s.Settings.Scalar(); got < 0.549 || got > 0.551 {
		t.Fatalf("scalar = %v, want 0.55", got)
	}
	for i := 0; i < 40; i++ {
		s.StepScalar(0.05)
	}
	if got := s.Settings.Scalar(); got != config.MaxScalar {
		t.Fatalf("scalar = %v, want clamp at %v", got, float32(config.MaxScalar))
	}
}

func TestScenes(t *testing.T) {
	s, err := NewSession(config.Default(), quietLogger())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.CoralScene().Len() != 1 {
		t.Fatal("coral scene should hold one mesh")
	}
	st := s.Stats()
	// only the ground layer has surfaces
	ground := (2*s.Config.World.RenderDistance + 1) * (2*s.Config.World.RenderDistance + 1)
	if got := s.WorldScene().Len(); got != ground+st.Life {
		t.Fatalf("world scene has %d parts, want %d", got, ground+st.Life)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "warn")
	log.Info("hidden")
	log.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
