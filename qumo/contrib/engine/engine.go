// Package engine implements a process-wide, priority-ordered registry of
// compute backends (spec.md 4.9). LocalCPU registers at priority 1000;
// optional GPU backends are expected to self-register at priority 200,
// one per detected device, during their own init().
package engine

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/aocsolver/qumo"
	"golang.org/x/sys/cpu"
)

// CapabilitySet is the polymorphic surface every registered engine
// implements (spec.md 4.9): a handle to the backend, a batch-size
// heuristic, and a display name.
type CapabilitySet interface {
	BackendHandle() any
	OptimalBatchSize(n int) int
	String() string
}

// Engine pairs a CapabilitySet with the priority it registered at.
type Engine struct {
	Capability CapabilitySet
	Priority   int
}

// Registry is a process-wide priority-ordered engine set. The zero value is
// usable; Default is the package-level instance engines self-register into.
type Registry struct {
	mu      sync.Mutex
	engines []Engine
	current *Engine
}

// Default is the process-wide registry, mirroring the global registry
// implied by spec.md 4.9 ("a process-wide priority-ordered set").
var Default = &Registry{}

// Register adds an engine at the given priority. Safe for concurrent use,
// including from a backend package's own init().
func (r *Registry) Register(c CapabilitySet, priority int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines = append(r.engines, Engine{Capability: c, Priority: priority})
}

// Engines returns every registered engine in insertion order.
func (r *Registry) Engines() []Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Engine, len(r.engines))
	copy(out, r.engines)
	return out
}

// BestEngine returns the highest-priority registered engine, or
// ErrNoEngines if none are registered. Ties keep the first-registered.
func (r *Registry) BestEngine() (Engine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.engines) == 0 {
		return Engine{}, qumo.ErrNoEngines
	}
	best := r.engines[0]
	for _, e := range r.engines[1:] {
		if e.Priority > best.Priority {
			best = e
		}
	}
	return best, nil
}

// CurrentEngine returns the process-wide current selection, defaulting to
// BestEngine if none has been explicitly set.
func (r *Registry) CurrentEngine() (Engine, error) {
	r.mu.Lock()
	cur := r.current
	r.mu.Unlock()
	if cur != nil {
		return *cur, nil
	}
	return r.BestEngine()
}

// SetCurrentEngine mutates the process-wide current selection.
func (r *Registry) SetCurrentEngine(e Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = &e
}

// sortedByPriorityDesc is a test/debug helper returning engines ranked
// highest-priority first.
func (r *Registry) sortedByPriorityDesc() []Engine {
	es := r.Engines()
	sort.SliceStable(es, func(i, j int) bool { return es[i].Priority > es[j].Priority })
	return es
}

// LocalCPU is the always-available CPU backend, registered into Default at
// package init with priority 1000.
type LocalCPU struct {
	features string
}

func newLocalCPU() *LocalCPU {
	return &LocalCPU{features: cpuFeatureString()}
}

func (l *LocalCPU) BackendHandle() any { return l }

// OptimalBatchSize implements the CPU row of spec.md 4.8's
// optimal_batch_size table: a flat 100 regardless of problem size.
func (l *LocalCPU) OptimalBatchSize(n int) int { return 100 }

func (l *LocalCPU) String() string { return fmt.Sprintf("cpu(%s, %d threads)", l.features, runtime.GOMAXPROCS(0)) }

func cpuFeatureString() string {
	switch runtime.GOARCH {
	case "amd64":
		switch {
		case cpu.X86.HasAVX512F:
			return "avx512"
		case cpu.X86.HasAVX2:
			return "avx2"
		case cpu.X86.HasAVX:
			return "avx"
		default:
			return "sse"
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			return "neon"
		}
		return "generic"
	default:
		return runtime.GOARCH
	}
}

func init() {
	Default.Register(newLocalCPU(), 1000)
}
