package pde

import "github.com/notargets/vdim/poly"

type laplaceSolver struct {
	dim int
}

func (s laplaceSolver) Dim() int { return s.dim }

// ParticularSolution returns a polynomial P with Lap(P) = p.
//
// Each homogeneous component q of degree d is handled by the closed-form
// anti-Laplacian
//
//	P_q = sum_k c_k |x|^(2k+2) Lap^k(q)
//
// where c_0 = 1/(2(2d+N)) and c_k = -c_(k-1) / (2(k+1)(2d-2k+N)). The sum is
// finite since Lap^k(q) vanishes once 2k exceeds d. This follows from
// Lap(|x|^(2m) q) = |x|^(2m) Lap(q) + 2m(2s + 2m + N - 2) |x|^(2m-2) q for
// homogeneous q of degree s.
func (s laplaceSolver) ParticularSolution(p poly.Polynomial) poly.Polynomial {
	n := float64(s.dim)
	sol := poly.New(s.dim)
	for d := 0; d <= p.Degree(); d++ {
		q := p.Homogeneous(d)
		if q.IsZero() {
			continue
		}
		dd := float64(d)
		c := 1.0 / (2 * (2*dd + n))
		for k := 0; !q.IsZero(); k++ {
			if k > 0 {
				c = -c / (2 * float64(k+1) * (2*dd - 2*float64(k) + n))
			}
			term := q // becomes |x|^(2k+2) Lap^k(q)
			for j := 0; j <= k; j++ {
				term = term.MulRSquared()
			}
			sol = sol.AddScaled(term, c)
			q = q.Laplacian()
		}
	}
	return sol
}
