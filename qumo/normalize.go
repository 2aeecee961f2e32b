package qumo

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aocsolver/qumo/internal/jacobi"
	"github.com/aocsolver/qumo/internal/qlog"
)

// NormalizeOptions configures Normalize. The zero value is the default
// policy: tol 0.1, 3 retries, a discarding logger.
type NormalizeOptions struct {
	// Tol is the eigensolver tolerance, capped at 0.1 regardless of what is
	// passed (spec.md 4.7: "tol = min(tol_user, 0.1)").
	Tol float64
	// Retries is the number of tolerance-doubling retries attempted if the
	// solver fails to return eigenvalues.
	Retries int
	// Log receives warnings for the recoverable degeneracies described in
	// spec.md 4.7 (non-real eigenvalues, sub-floor lambda). Defaults to a
	// discarding logger.
	Log *qlog.Logger
}

func (o NormalizeOptions) withDefaults() NormalizeOptions {
	if o.Tol <= 0 || o.Tol > 0.1 {
		o.Tol = 0.1
	}
	if o.Retries <= 0 {
		o.Retries = 3
	}
	if o.Log == nil {
		o.Log = qlog.Discard()
	}
	return o
}

// Normalize computes the spectral factor lambda by which the orchestrator
// rescales the sampled gradient and annealing values (spec.md 4.7). Unlike a
// partial-Schur/Arnoldi iteration restricted to the two extreme eigenvalues,
// this implementation runs a full dense symmetric eigendecomposition
// (gonum.org/v1/gonum/mat.EigenSym) and reads off the extreme values; see
// SPEC_FULL.md 4.7 for the documented O(N^3) tradeoff. Retries (doubling tol
// each time, though tol does not affect EigenSym, which is exact up to
// machine precision) exist to preserve the spec's retry contract for a
// future partial solver swap-in.
func Normalize(q *WideProblem, opts NormalizeOptions) (float64, error) {
	opts = opts.withDefaults()

	n := q.N
	if n == 0 {
		return 1.0, nil
	}

	dense := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dense.SetSym(i, j, q.Q[i*n+j])
		}
	}

	var eig mat.EigenSym
	var ok bool
	tol := opts.Tol
	for attempt := 0; attempt <= opts.Retries; attempt++ {
		ok = eig.Factorize(dense, true)
		if ok {
			break
		}
		tol *= 2
	}

	var values []float64
	if ok {
		values = eig.Values(nil)
	}
	if !ok || len(values) == 0 {
		// EigenSym failed (or, in principle, returned nothing): fall back to
		// a direct Jacobi sweep before giving up, since it tolerates some
		// matrices gonum's QR-based solver balks at for tiny n.
		if v, jerr := jacobi.Eigenvalues(q.Q, n, tol, 100); jerr == nil {
			values = v
		}
	}
	if len(values) == 0 {
		opts.Log.Warn("normalize: eigensolver failed after retries, substituting lambda=1",
			qlog.Err(ErrNumericalDegeneracy), qlog.Int("retries", opts.Retries))
		return 1.0, nil
	}

	lambdaMin, lambdaMax := values[0], values[0]
	for _, v := range values {
		if v < lambdaMin {
			lambdaMin = v
		}
		if v > lambdaMax {
			lambdaMax = v
		}
	}

	lambda := combine(lambdaMax, lambdaMin)
	if lambda < 0.1 {
		opts.Log.Warn("normalize: lambda below floor, substituting 1.0",
			qlog.Float64("lambda", lambda))
		lambda = 1.0
	}
	return lambda, nil
}

// combine applies spec.md 4.7's same-sign-average / fallback rule to the two
// extreme eigenvalues.
func combine(lambdaMax, lambdaMin float64) float64 {
	sameSign := (lambdaMax >= 0) == (lambdaMin >= 0)
	if sameSign {
		return (math.Abs(lambdaMax) + math.Abs(lambdaMin)) / 2
	}
	if lambdaMax > 0.1 {
		return lambdaMax
	}
	return 1.0
}
