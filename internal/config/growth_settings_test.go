package config

import (
	"sync"
	"testing"
)

func TestDriftKeepsScalarInBand(t *testing.T) {
	tests := []struct {
		name  string
		start float32
		want  float32
	}{
		{"below band grows", 0.2, 0.3},
		{"at low edge grows", 0.25, 0.35},
		{"inside band untouched", 0.5, 0.5},
		{"at high edge shrinks", 0.85, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Default().Growth
			g.Scalar = tt.start
			s := NewGrowthSettings(g)
			got := s.Drift()
			if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
				t.Fatalf("Drift() = %v, want %v", got, tt.want)
			}
			if s.Scalar() != got {
				t.Fatalf("Scalar() = %v after Drift returned %v", s.Scalar(), got)
			}
		})
	}
}

func TestSnapshotSeesLatestValues(t *testing.T) {
	s := NewGrowthSettings(Default().Growth)
	s.SetIterations(6)
	s.SetScalar(0.7)
	snap := s.Snapshot()
	if snap.Iterations != 6 || snap.Scalar != 0.7 {
		t.Fatalf("snapshot = %+v", snap)
	}
	s.SetIterations(4)
	if snap.Iterations != 6 {
		t.Fatal("snapshot must not alias live settings")
	}
}

func TestSettersClamp(t *testing.T) {
	s := NewGrowthSettings(Default().Growth)
	s.SetIterations(100)
	if got := s.Iterations(); got != MaxIterations {
		t.Errorf("iterations = %d, want %d", got, MaxIterations)
	}
	s.SetIterations(0)
	if got := s.Iterations(); got != MinIterations {
		t.Errorf("iterations = %d, want %d", got, MinIterations)
	}
	s.SetScalar(5)
	if got := s.Scalar(); got != MaxScalar {
		t.Errorf("scalar = %v, want %v", got, MaxScalar)
	}
}

func TestGrowthSettingsConcurrentAccess(t *testing.T) {
	s := NewGrowthSettings(Default().Growth)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Drift()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Snapshot()
			}
		}()
	}
	wg.Wait()
}
