// Package sampler implements the fused inner loop shared by all three
// solver dialects: state/momentum/field update, non-linearity, wall
// projection and annealing decrement for a single batch of trajectories
// (spec.md 4.4).
package sampler

import (
	"fmt"

	"github.com/aocsolver/qumo"
	hwypool "github.com/aocsolver/qumo/hwy/contrib/workerpool"
)

// Workspace holds the scratch buffers for one batch of M trajectories over
// an N-dimensional problem (spec.md 3): x, y, spins and fields are N*M
// row-major matrices; annealingLive is length M.
type Workspace[T qumo.Real] struct {
	N, M          int
	X, Y          []T
	Spins, Fields []T
	AnnealingLive []T
}

// NewWorkspace allocates a zeroed workspace of the given shape.
func NewWorkspace[T qumo.Real](n, m int) *Workspace[T] {
	return &Workspace[T]{
		N: n, M: m,
		X:             make([]T, n*m),
		Y:             make([]T, n*m),
		Spins:         make([]T, n*m),
		Fields:        make([]T, n*m),
		AnnealingLive: make([]T, m),
	}
}

// Dialect names one of the three concrete samplers of spec.md 4.4's table:
// the non-linearity applied to the binary block, the wall bounding x, and
// the bias subtracted from x in the annealing term.
type Dialect[T qumo.Real] struct {
	Name         string
	NonLinearity qumo.NonLinearity[T]
	Wall         qumo.Wall[T]
	Bias         T
}

// MixedIsing is the sign/[-1,1]/bias-0 dialect.
func MixedIsing[T qumo.Real]() Dialect[T] {
	return Dialect[T]{Name: "mixed-ising", NonLinearity: qumo.Sign[T], Wall: qumo.IsingWall[T](), Bias: 0}
}

// PositiveQUMO is the step_half/[0,1]/bias-0.5 dialect.
func PositiveQUMO[T qumo.Real]() Dialect[T] {
	return Dialect[T]{Name: "positive-qumo", NonLinearity: qumo.StepHalf[T], Wall: qumo.PositiveWall[T](), Bias: 0.5}
}

// QUMO is the step_half/[-1,1]/bias-0.5 dialect.
func QUMO[T qumo.Real]() Dialect[T] {
	return Dialect[T]{Name: "qumo", NonLinearity: qumo.StepHalf[T], Wall: qumo.IsingWall[T](), Bias: 0.5}
}

// Hooks are the optional extensibility points of spec.md 4.4. Neither is
// required; the zero value runs with no adjustment and no tracing.
type Hooks[T qumo.Real] struct {
	// AdjustParameters is invoked before each step with the live gradient,
	// momentum and annealingLive vectors; it may mutate copies it returns,
	// but must not alias across trajectories. Nil means "use as given".
	AdjustParameters func(gradient, momentum, annealingLive []T) (gradient2, momentum2 []T)
	// PerIterationCallback is invoked after each step, given the iteration
	// index and the post-step, pre-final-nonlinearity spins.
	PerIterationCallback func(iter int, spins []T)
}

// Params bundles one run's problem data and hyperparameters. Q and H are
// the narrow (native T) copies the sampler's hot loop runs on, distinct
// from the widened copies the energy evaluator and normalizer use
// (spec.md 3's Q-tilde/h-tilde split).
type Params[T qumo.Real] struct {
	Q []T // N*N row-major
	H []T // length N, nil if absent
	B int // binary-coordinate prefix count; rows [0,B) get the non-linearity

	Gradient, Momentum []T // length M
	Dt                 T
	Delta              []T // length M, annealing decrement per step

	Pool *hwypool.Pool
}

// Run executes `iterations` fused steps of dialect d over ws, seeded with
// x already populated by the caller (spec.md 4.5 step 5b initializes x with
// a uniform draw before calling Run). After the final step, ws.Spins holds
// the reported (post-nonlinearity) assignment.
func Run[T qumo.Real](d Dialect[T], p Params[T], ws *Workspace[T], iterations int, hooks Hooks[T]) error {
	n, m := ws.N, ws.M
	if len(p.Q) != n*n {
		return fmt.Errorf("%w: sampler.Run: Q has %d elements, want %d", qumo.ErrInvalidShape, len(p.Q), n*n)
	}
	if p.H != nil && len(p.H) != n {
		return fmt.Errorf("%w: sampler.Run: H has %d elements, want %d", qumo.ErrInvalidShape, len(p.H), n)
	}
	if len(p.Gradient) != m || len(p.Momentum) != m || len(p.Delta) != m {
		return fmt.Errorf("%w: sampler.Run: hyperparameter vectors must have length M=%d", qumo.ErrInvalidShape, m)
	}
	if p.B < 0 || p.B > n {
		return fmt.Errorf("%w: sampler.Run: B=%d out of range [0,%d]", qumo.ErrInvalidShape, p.B, n)
	}

	matmulPool := p.Pool
	if matmulPool == nil {
		matmulPool = hwypool.New(1)
		defer matmulPool.Close()
	}

	gradient, momentum := p.Gradient, p.Momentum
	for iter := 0; iter < iterations; iter++ {
		if hooks.AdjustParameters != nil {
			gradient, momentum = hooks.AdjustParameters(gradient, momentum, ws.AnnealingLive)
		}
		step(d, p, gradient, momentum, ws, matmulPool)
		if hooks.PerIterationCallback != nil {
			hooks.PerIterationCallback(iter, ws.Spins)
		}
	}

	copy(ws.Spins, ws.X)
	applyBinaryBlock(d.NonLinearity, ws.Spins, m, p.B)
	return nil
}

func step[T qumo.Real](d Dialect[T], p Params[T], gradient, momentum []T, ws *Workspace[T], matmulPool *hwypool.Pool) {
	n, m := ws.N, ws.M

	copy(ws.Spins, ws.X)
	applyBinaryBlock(d.NonLinearity, ws.Spins, m, p.B)

	matMulQSpins(matmulPool, p.Q, ws.Spins, ws.Fields, n, m)

	copy(ws.Spins, ws.X) // reset/backup: fields was computed from nonlinear spins

	for j := 0; j < m; j++ {
		g, mo, bias := gradient[j], momentum[j], d.Bias
		for i := 0; i < n; i++ {
			idx := i*m + j
			xv, yv := ws.X[idx], ws.Y[idx]
			ws.X[idx] = xv + p.Dt*g*ws.Fields[idx] - p.Dt*ws.AnnealingLive[j]*(xv-bias) + mo*(xv-yv)
		}
	}

	if p.H != nil {
		for j := 0; j < m; j++ {
			g := gradient[j]
			for i := 0; i < n; i++ {
				ws.X[i*m+j] += p.Dt * g * p.H[i]
			}
		}
	}

	copy(ws.Y, ws.Spins) // snapshot of pre-update x

	// Zero the previous-displacement buffer at clamped coordinates, so a
	// trajectory that hits the wall carries no momentum into the next step
	// (the "inelastic" half of the projection; see DESIGN.md's resolution
	// of this open point).
	if err := d.Wall.ProjectWithMomentum(ws.X, ws.Y); err != nil {
		panic(err) // shapes are established invariants here, never user input
	}

	for j := range ws.AnnealingLive {
		v := ws.AnnealingLive[j] - p.Delta[j]
		if v < 0 {
			v = 0
		}
		ws.AnnealingLive[j] = v
	}
}

func applyBinaryBlock[T qumo.Real](f qumo.NonLinearity[T], spins []T, m, b int) {
	qumo.Apply(f, spins[:b*m])
}

// matMulQSpins computes fields <- q*spins, q an N*N row-major matrix and
// spins/fields N*M row-major matrices (M trajectories in columns), row-range
// parallelized across pool. hwy/contrib/matmul.MatMulAuto was the teacher's
// grounding for this step, but its dispatch.go (and the duplicate-declaring
// dispatch_sized.go already dropped from this workspace, see DESIGN.md) calls
// a bare MatMul/MatMulKLast that the retrieved pack never defines, the same
// missing-codegen-output defect already found and worked around for
// hwy/contrib/dot in energy.go. With both of the pack's candidate matmul
// libraries broken at the source, this row-per-worker accumulation is the
// justified stdlib fallback.
func matMulQSpins[T qumo.Real](pool *hwypool.Pool, q, spins, fields []T, n, m int) {
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			row := q[i*n : i*n+n]
			out := fields[i*m : i*m+m]
			for j := range out {
				out[j] = 0
			}
			for k, qik := range row {
				if qik == 0 {
					continue
				}
				spinRow := spins[k*m : k*m+m]
				for j, sv := range spinRow {
					out[j] += qik * sv
				}
			}
		}
	})
}
