package render

import (
	"testing"
	"time"
)

func TestFPSLimiterDisabled(t *testing.T) {
	f := NewFPSLimiter(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait()
	}
	if d := time.Since(start); d > 50*time.Millisecond {
		t.Fatalf("disabled limiter took %v", d)
	}
}

func TestFPSLimiterPaces(t *testing.T) {
	f := NewFPSLimiter(100)
	start := time.Now()
	for i := 0; i < 5; i++ {
		f.Wait()
	}
	if d := time.Since(start); d < 40*time.Millisecond {
		t.Fatalf("5 frames at 100fps took %v, want at least 40ms", d)
	}
}
