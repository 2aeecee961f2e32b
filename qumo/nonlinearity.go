package qumo

import (
	"math"
	"sync"
)

// NonLinearity is a registrable element-wise map T -> T applied in place by
// Apply. The three built-ins (Sign, Tanh, StepHalf) are declared at package
// load and materialized into the registry exactly once, so that
// backend-specific specializations contributed by optional packages loaded
// later can still register before first use (spec.md 4.2).
type NonLinearity[T Real] func(T) T

// Sign returns +1 for x>0, -1 for x<0, 0 for x==0.
func Sign[T Real](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Tanh applies the hyperbolic tangent.
func Tanh[T Real](x T) T {
	return T(math.Tanh(float64(x)))
}

// StepHalf returns 1 if x > 0.5, else 0.
func StepHalf[T Real](x T) T {
	if x > 0.5 {
		return 1
	}
	return 0
}

// Apply maps x[i] <- f(x[i]) in place.
func Apply[T Real](f NonLinearity[T], x []T) {
	for i, v := range x {
		x[i] = f(v)
	}
}

// registry holds the one-shot-materialized non-linearity instances, guarded
// by a mutex standing in for the spec's "spin lock + one-shot boolean"
// (spec.md 4.2/5). A mutex is the idiomatic Go equivalent: sync.Once gates
// first materialization, a plain Mutex guards later registrations from
// optional backend packages.
type nlRegistry[T Real] struct {
	once sync.Once
	mu   sync.Mutex
	m    map[string]NonLinearity[T]
}

func (r *nlRegistry[T]) init() {
	r.once.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.m = map[string]NonLinearity[T]{
			"sign":      Sign[T],
			"tanh":      Tanh[T],
			"step_half": StepHalf[T],
		}
	})
}

// Register adds or replaces a named non-linearity. Safe to call from
// multiple goroutines and safe to call after the registry has already been
// read from (e.g. by a GPU backend package registering a specialized
// kernel at its own init() time).
func (r *nlRegistry[T]) Register(name string, f NonLinearity[T]) {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[name] = f
}

// Lookup returns the named non-linearity and whether it was found.
func (r *nlRegistry[T]) Lookup(name string) (NonLinearity[T], bool) {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.m[name]
	return f, ok
}

var (
	registryF32 = &nlRegistry[float32]{}
	registryF64 = &nlRegistry[float64]{}
)

// RegisterNonLinearity registers a named non-linearity for float32 use.
func RegisterNonLinearity(name string, f NonLinearity[float32]) {
	registryF32.Register(name, f)
}

// RegisterNonLinearity64 registers a named non-linearity for float64 use.
func RegisterNonLinearity64(name string, f NonLinearity[float64]) {
	registryF64.Register(name, f)
}

// LookupNonLinearity retrieves a registered float32 non-linearity by name.
func LookupNonLinearity(name string) (NonLinearity[float32], bool) {
	return registryF32.Lookup(name)
}

// LookupNonLinearity64 retrieves a registered float64 non-linearity by name.
func LookupNonLinearity64(name string) (NonLinearity[float64], bool) {
	return registryF64.Lookup(name)
}
