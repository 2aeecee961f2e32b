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

package qumo

// Ising is a problem re-expressed over spins for the binary prefix and
// left-alone continuous values for the rest (spec.md 6, "mixed-Ising"):
// Quadratic is the re-derived N x N quadratic form, Field the linear term it
// picks up from substituting out the binary coordinates, and Offset the
// constant term folded out of the substitution.
type Ising struct {
	N         int
	B         int
	Quadratic []float64 // row-major N*N
	Field     []float64 // length N
	Offset    float64
}

// ConvertToMixedIsing re-derives p's quadratic form under the substitution
// x_i = (s_i+1)/2 for the binary prefix [0,B) and x_i = s_i unchanged for
// the continuous tail [B,N) (spec.md 6). Writing x = diag(alpha)*s + beta
// with alpha_i=1/2, beta_i=1/2 for i<B and alpha_i=1, beta_i=0 otherwise,
// expanding x^T Q x + h^T x in s gives:
//
//	Quadratic_ij = alpha_i * alpha_j * Q_ij
//	Field_i      = alpha_i * (2*(Q*beta)_i + h_i)
//	Offset       = beta^T*Q*beta + h^T*beta
//
// which for the all-binary, h=nil, B=N case is the standard QUBO-to-Ising
// identity; ConvertToMixedIsing generalizes it to the mixed binary/continuous
// case by leaving the continuous tail's alpha/beta at the identity.
func ConvertToMixedIsing[T Real](p *Problem[T]) Ising {
	n, b := p.N, p.B
	alpha := make([]float64, n)
	beta := make([]float64, n)
	for i := 0; i < n; i++ {
		if i < b {
			alpha[i], beta[i] = 0.5, 0.5
		} else {
			alpha[i], beta[i] = 1, 0
		}
	}

	q := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			q[i*n+j] = float64(p.Q[i*n+j])
		}
	}
	var h []float64
	if p.H != nil {
		h = make([]float64, n)
		for i, v := range p.H {
			h[i] = float64(v)
		}
	}

	qBeta := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += q[i*n+j] * beta[j]
		}
		qBeta[i] = sum
	}

	quadratic := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			quadratic[i*n+j] = alpha[i] * alpha[j] * q[i*n+j]
		}
	}

	field := make([]float64, n)
	for i := 0; i < n; i++ {
		hi := 0.0
		if h != nil {
			hi = h[i]
		}
		field[i] = alpha[i] * (2*qBeta[i] + hi)
	}

	offset := 0.0
	for i := 0; i < n; i++ {
		hi := 0.0
		if h != nil {
			hi = h[i]
		}
		offset += beta[i] * qBeta[i]
		offset += hi * beta[i]
	}

	return Ising{N: n, B: b, Quadratic: quadratic, Field: field, Offset: offset}
}
