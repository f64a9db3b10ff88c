package pde

import "github.com/notargets/vdim/poly"

type helmholtzSolver struct {
	dim int
	k   float64
}

func (s helmholtzSolver) Dim() int { return s.dim }

// ParticularSolution returns a polynomial P with Lap(P) + k^2 P = p, via the
// finite Neumann series
//
//	P = sum_j (-1)^j Lap^j(p) / k^(2(j+1))
//
// which terminates once repeated Laplacians annihilate p.
func (s helmholtzSolver) ParticularSolution(p poly.Polynomial) poly.Polynomial {
	k2 := s.k * s.k
	sol := poly.New(s.dim)
	c := 1.0 / k2
	q := p
	for !q.IsZero() {
		sol = sol.AddScaled(q, c)
		q = q.Laplacian()
		c = -c / k2
	}
	return sol
}
