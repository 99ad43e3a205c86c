package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight pass profiler: accumulates wall time and call counts per
// operation name until Reset is called.

// Entry is the accumulated cost of one named operation.
type Entry struct {
	Name  string
	Total time.Duration
	Calls int
}

var (
	mu      sync.Mutex
	entries = make(map[string]*Entry)
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("world.RebuildAll")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		e, ok := entries[name]
		if !ok {
			e = &Entry{Name: name}
			entries[name] = e
		}
		e.Total += d
		e.Calls++
		mu.Unlock()
	}
}

// Reset clears all accumulated entries.
func Reset() {
	mu.Lock()
	clear(entries)
	mu.Unlock()
}

// Snapshot returns the accumulated entries sorted by total time, largest first.
func Snapshot() []Entry {
	mu.Lock()
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e)
	}
	mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total == out[j].Total {
			return out[i].Name < out[j].Name
		}
		return out[i].Total > out[j].Total
	})
	return out
}

// Lookup returns the entry recorded for name, if any.
func Lookup(name string) (Entry, bool) {
	mu.Lock()
	defer mu.Unlock()
	e, ok := entries[name]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// TopN formats the n most expensive operations.
// Example: "world.RebuildAll:4.2ms(1), coral.Build:2.1ms(9)"
func TopN(n int) string {
	list := Snapshot()
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		ms := float64(e.Total.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms(%d)", e.Name, ms, e.Calls))
	}
	return strings.Join(parts, ", ")
}
