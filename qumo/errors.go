// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package qumo implements the core of a batched, multi-phase analog sampler
// for Quadratic Unconstrained Mixed Optimization (QUMO) problems.
package qumo

import "errors"

// Sentinel errors surfaced at public API boundaries. Structural errors are
// returned immediately to the caller; numerical degeneracies are recovered
// internally (see Normalize) and never reach a caller as an error.
var (
	// ErrInvalidShape covers non-square matrices, vector length mismatches,
	// asymmetric Q, or a non-zero diagonal on the binary block.
	ErrInvalidShape = errors.New("qumo: invalid shape")

	// ErrInvalidRange covers fractions or intervals outside their required
	// bounds (e.g. momentum_hi >= 1, phase fractions summing to >= 1).
	ErrInvalidRange = errors.New("qumo: invalid range")

	// ErrInvalidTimeout is returned by RunFor when the time budget is under
	// one second.
	ErrInvalidTimeout = errors.New("qumo: invalid timeout")

	// ErrNoEngines is returned by an engine registry's BestEngine when the
	// registry is empty.
	ErrNoEngines = errors.New("qumo: no engines registered")

	// ErrNumericalDegeneracy marks an eigenvalue solver failure after all
	// retries. Normalize recovers from this internally (substituting
	// lambda=1 with a warning) and does not return it to callers; it is
	// exported so tests can assert on the recovery path.
	ErrNumericalDegeneracy = errors.New("qumo: numerical degeneracy in eigenvalue solve")

	// ErrEmptyConfig is returned by the exploration driver when the
	// expanded configuration set has zero trajectories.
	ErrEmptyConfig = errors.New("qumo: empty configuration")
)
