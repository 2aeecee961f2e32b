package explore

import (
	"math"

	"github.com/aocsolver/qumo"
)

// BestAssignmentCollector is the BestAssignment variant of spec.md 4.6: it
// tracks only the best objective seen and the assignment that produced it.
type BestAssignmentCollector[T qumo.Real] struct {
	best       float64
	assignment []T
	hasResult  bool
}

func NewBestAssignmentCollector[T qumo.Real]() *BestAssignmentCollector[T] {
	return &BestAssignmentCollector[T]{best: math.Inf(1)}
}

func (c *BestAssignmentCollector[T]) Create(assignmentPrototype []T, n int) {
	c.assignment = make([]T, n)
	c.best = math.Inf(1)
	c.hasResult = false
}

// Update finds argmin(energies) and, if it improves on the running best,
// copies that column of spins (an N x batchWidth matrix) into assignment.
func (c *BestAssignmentCollector[T]) Update(energies []float64, spins []T, n, batchWidth int) {
	bestCol, bestVal := -1, math.Inf(1)
	for j, e := range energies {
		if e < bestVal {
			bestVal, bestCol = e, j
		}
	}
	if bestCol < 0 {
		return
	}
	if !c.hasResult || bestVal < c.best {
		c.best = bestVal
		c.hasResult = true
		for i := 0; i < n; i++ {
			c.assignment[i] = spins[i*batchWidth+bestCol]
		}
	}
}

func (c *BestAssignmentCollector[T]) Finish() {}

func (c *BestAssignmentCollector[T]) Retrieve() BestFound[T] {
	return BestFound[T]{Objective: c.best, Assignment: append([]T(nil), c.assignment...)}
}

func (c *BestAssignmentCollector[T]) Info() any { return nil }

// FinalAssignmentCollector is the FinalAssignment variant: in addition to
// the running best, it appends a copy of every batch's valid spin columns,
// exposed via Info as the concatenated per-batch snapshots.
type FinalAssignmentCollector[T qumo.Real] struct {
	BestAssignmentCollector[T]
	n         int
	snapshots [][]T // one []T per batch, N*batchWidth row-major
}

func NewFinalAssignmentCollector[T qumo.Real]() *FinalAssignmentCollector[T] {
	return &FinalAssignmentCollector[T]{BestAssignmentCollector: *NewBestAssignmentCollector[T]()}
}

func (c *FinalAssignmentCollector[T]) Create(assignmentPrototype []T, n int) {
	c.BestAssignmentCollector.Create(assignmentPrototype, n)
	c.n = n
	c.snapshots = nil
}

func (c *FinalAssignmentCollector[T]) Update(energies []float64, spins []T, n, batchWidth int) {
	c.BestAssignmentCollector.Update(energies, spins, n, batchWidth)
	snap := make([]T, n*len(energies))
	for j := range energies {
		for i := 0; i < n; i++ {
			snap[i*len(energies)+j] = spins[i*batchWidth+j]
		}
	}
	c.snapshots = append(c.snapshots, snap)
}

func (c *FinalAssignmentCollector[T]) Info() any {
	return c.snapshots
}
