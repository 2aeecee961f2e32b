package qumo

import "fmt"

// Wall is a specialized "inelastic wall" projector for a fixed (lower,
// upper) bound pair, produced by NewWall. Keeping the bounds as closed-over
// constants rather than passed-in arguments on every call mirrors the
// teacher's dispatch-by-constant style in hwy/contrib/matmul (size
// thresholds baked into the dispatcher rather than threaded through every
// call).
type Wall[T Real] struct {
	Lower, Upper T
}

// NewWall returns a Wall specialized for the given bounds. IsingWall and
// PositiveWall below are the two concrete instances the three sampler
// dialects need.
func NewWall[T Real](lower, upper T) Wall[T] {
	return Wall[T]{Lower: lower, Upper: upper}
}

// IsingWall clamps to [-1, 1].
func IsingWall[T Real]() Wall[T] {
	return NewWall[T](-1, 1)
}

// PositiveWall clamps to [0, 1].
func PositiveWall[T Real]() Wall[T] {
	return NewWall[T](0, 1)
}

// Project clamps every element of x into [w.Lower, w.Upper] in place.
func (w Wall[T]) Project(x []T) {
	lo, hi := w.Lower, w.Upper
	for i, v := range x {
		if v > hi {
			x[i] = hi
		} else if v < lo {
			x[i] = lo
		}
	}
}

// ProjectWithMomentum clamps x in place and zeros the corresponding element
// of momentum wherever x was clamped (the "inelastic" half of the wall).
// Returns ErrInvalidShape if the slices differ in length.
func (w Wall[T]) ProjectWithMomentum(x, momentum []T) error {
	if len(x) != len(momentum) {
		return fmt.Errorf("%w: wall.Project: len(x)=%d len(momentum)=%d", ErrInvalidShape, len(x), len(momentum))
	}
	lo, hi := w.Lower, w.Upper
	for i, v := range x {
		if v > hi {
			x[i] = hi
			momentum[i] = 0
		} else if v < lo {
			x[i] = lo
			momentum[i] = 0
		}
	}
	return nil
}
