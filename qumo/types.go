package qumo

import (
	"fmt"
	"math"

	"github.com/aocsolver/qumo/hwy"
)

// Real is the constraint for the sampler's live arithmetic type. Unlike the
// teacher's hwy.Floats (which also admits hwy.Float16/hwy.BFloat16, neither
// of which supports direct +,-,*,/ in Go), the sampler kernel needs ordinary
// arithmetic every iteration, so Real is restricted to the two native
// floating types. Half-precision problems are supported at the Problem
// level via Widen, which promotes to float64 using the teacher's scalar
// F16/BF16 converters before any sampler runs (see hwy/promote_f16.go,
// hwy/promote_bf16.go and their doc comments).
type Real interface {
	~float32 | ~float64
}

// Problem is an immutable QUMO problem instance: an N x N symmetric
// interaction matrix Q, an optional linear field h, and a binary-coordinate
// prefix count B (coordinates [0,B) are binary, [B,N) are continuous).
//
// T ranges over hwy.Floats, matching the data model's allowance for
// half-precision storage (hwy.Float16, hwy.BFloat16) in addition to the
// native float32/float64. Storage is always by value copy: Problem never
// aliases caller-supplied slices, so Q is read-only for the lifetime of a
// solve per spec invariant.
type Problem[T hwy.Floats] struct {
	N int
	B int
	Q []T // row-major N*N
	H []T // length N, nil if absent
}

// NewProblem validates and copies q (row-major N*N) and the optional field h
// into a new Problem. It returns ErrInvalidShape if q is not square, if h's
// length does not match N, if Q is not symmetric, or if the binary block's
// diagonal is not all-zero.
func NewProblem[T hwy.Floats](n, b int, q []T, h []T) (*Problem[T], error) {
	if n < 0 || b < 0 || b > n {
		return nil, fmt.Errorf("%w: N=%d B=%d", ErrInvalidShape, n, b)
	}
	if len(q) != n*n {
		return nil, fmt.Errorf("%w: Q has %d elements, want %d", ErrInvalidShape, len(q), n*n)
	}
	if h != nil && len(h) != n {
		return nil, fmt.Errorf("%w: h has %d elements, want %d", ErrInvalidShape, len(h), n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij := widenScalar(q[i*n+j])
			aji := widenScalar(q[j*n+i])
			if math.Abs(aij-aji) > 1e-9*math.Max(1, math.Abs(aij)) {
				return nil, fmt.Errorf("%w: Q[%d,%d] != Q[%d,%d]", ErrInvalidShape, i, j, j, i)
			}
		}
	}
	for i := 0; i < b; i++ {
		if widenScalar(q[i*n+i]) != 0 {
			return nil, fmt.Errorf("%w: Q[%d,%d] (binary block) must be zero", ErrInvalidShape, i, i)
		}
	}

	qCopy := make([]T, len(q))
	copy(qCopy, q)
	var hCopy []T
	if h != nil {
		hCopy = make([]T, len(h))
		copy(hCopy, h)
	}
	return &Problem[T]{N: n, B: b, Q: qCopy, H: hCopy}, nil
}

// Interval is a closed real interval [Lo, Hi], Lo <= Hi. Used for the
// annealing, gradient and momentum ranges threaded through normalization and
// the orchestrator (spec.md 3, 4.7, 4.11).
type Interval struct {
	Lo, Hi float64
}

// NewInterval validates lo <= hi and returns the interval.
func NewInterval(lo, hi float64) (Interval, error) {
	if lo > hi {
		return Interval{}, fmt.Errorf("%w: interval lo=%v > hi=%v", ErrInvalidRange, lo, hi)
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

// WideProblem is the widened (always float64) copy of a Problem used by the
// energy evaluator and the normalizer so that half- and single-precision
// problems don't lose precision in those two spots, per the data model's
// Q-tilde/h-tilde fields.
type WideProblem struct {
	N int
	B int
	Q []float64
	H []float64
}

// Widen produces the widened copy of p. When T is already float64 this is a
// plain copy (an alias would let the caller observe energy-evaluator-only
// mutation through p.Q, which Problem's immutability invariant forbids).
func Widen[T hwy.Floats](p *Problem[T]) *WideProblem {
	q := make([]float64, len(p.Q))
	for i, v := range p.Q {
		q[i] = widenScalar(v)
	}
	var h []float64
	if p.H != nil {
		h = make([]float64, len(p.H))
		for i, v := range p.H {
			h[i] = widenScalar(v)
		}
	}
	return &WideProblem{N: p.N, B: p.B, Q: q, H: h}
}

// widenScalar converts a single hwy.Floats value to float64, using the
// teacher's scalar Float16ToFloat32/BFloat16ToFloat32 converters for the
// half-precision cases (hwy/bfloat16.go, hwy/float16.go) since those types
// carry no native Go arithmetic. Mirrors the any(v).(type) switch idiom used
// throughout hwy/bitops.go.
func widenScalar[T hwy.Floats](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case hwy.Float16:
		return float64(hwy.Float16ToFloat32(x))
	case hwy.BFloat16:
		return float64(hwy.BFloat16ToFloat32(x))
	default:
		return 0
	}
}

// NarrowToFloat32 converts a widened []float64 assignment back into T,
// used when reporting a best-found assignment recovered from the widened
// energy path on a half-precision Problem.
func NarrowToFloat32[T hwy.Floats](vs []float64) []T {
	out := make([]T, len(vs))
	for i, v := range vs {
		out[i] = narrowScalar[T](v)
	}
	return out
}

func narrowScalar[T hwy.Floats](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	case hwy.Float16:
		return any(hwy.Float32ToFloat16(float32(v))).(T)
	case hwy.BFloat16:
		return any(hwy.Float32ToBFloat16(float32(v))).(T)
	default:
		return zero
	}
}
