// Package registry provides the implementation registry for contiguous
// (unit-stride) float64 kernels.
//
// Several implementation variants (pure Go unrolled loops, algo-vecmath
// backed SIMD) coexist. Variants register themselves from init() functions
// and the contig package selects the highest-priority variant supported by
// the detected CPU features on first use.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry is one registered implementation variant.
//
// Every field holds a kernel operating on equal-length, unit-stride slices.
// Kernels do not validate lengths beyond what slice indexing enforces.
type OpEntry struct {
	// Name is a human-readable identifier (e.g., "generic", "vecmath").
	Name string

	// SIMDLevel is the instruction set the variant requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants; higher wins.
	//   - Generic (SIMDNone): 0
	//   - algo-vecmath delegate (SSE2/NEON): 10
	Priority int

	// Copy performs y[i] = x[i].
	Copy func(x, y []float64)

	// Swap exchanges x[i] and y[i].
	Swap func(x, y []float64)

	// Scale performs x[i] *= alpha.
	Scale func(alpha float64, x []float64)

	// Axpy performs y[i] += alpha * x[i].
	Axpy func(alpha float64, x, y []float64)

	// Dot returns sum(x[i] * y[i]).
	Dot func(x, y []float64) float64

	// Sum returns sum(x[i]).
	Sum func(x []float64) float64

	// Asum returns sum(|x[i]|).
	Asum func(x []float64) float64

	// Rot applies a plane rotation:
	//   x[i], y[i] = c*x[i] + s*y[i], c*y[i] - s*x[i].
	Rot func(x, y []float64, c, s float64)

	// CumSum performs y[i] = sum + x[0] + ... + x[i].
	CumSum func(sum float64, x, y []float64)

	// Add performs z[i] = x[i] + y[i].
	Add func(x, y, z []float64)

	// Mul performs z[i] = x[i] * y[i].
	Mul func(x, y, z []float64)
}

// OpRegistry manages the registration and lookup of implementation variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // entries are sorted by descending priority
}

// Global is the registry used by the contig package.
var Global = &OpRegistry{}

// Register adds an implementation variant.
//
// Typically called from init(). Safe for concurrent use, but registrations
// should complete before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with features, or nil
// if none is (which cannot happen once the generic variant is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the entry with the given name, or nil.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

// sortByPriority sorts entries by descending priority.
// Must be called with r.mu held for writing.
func (r *OpRegistry) sortByPriority() {
	// Insertion sort keeps registration order among equal priorities.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// Intended for tests and diagnostics.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
