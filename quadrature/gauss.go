package quadrature

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// JacobiGQ computes the N+1 Gauss quadrature points and weights for Jacobi
// polynomials P_N^{alpha,beta} on [-1,1], via the eigendecomposition of the
// symmetric tridiagonal recurrence matrix (Golub-Welsch).
func JacobiGQ(alpha, beta float64, N int) (X, W []float64) {
	if N == 0 {
		return []float64{-(alpha - beta) / (alpha + beta + 2)}, []float64{2}
	}

	h1 := make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// Main diagonal: -(beta^2-alpha^2)/((2i+alpha+beta)*(2i+alpha+beta+2))
	d0 := make([]float64, N+1)
	fac := beta*beta - alpha*alpha
	for i := 0; i < N+1; i++ {
		d0[i] = fac / (h1[i] * (h1[i] + 2))
	}
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0
	}

	// First superdiagonal
	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d1[i] = 2.0 / (val + 2.0) * math.Sqrt(
			ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/(val+1)/(val+3),
		)
	}

	JJ := symTriDiagonal(d0, d1)

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("quadrature: eigenvalue decomposition failed")
	}
	X = eig.Values(nil)

	vecs := mat.NewDense(len(X), len(X), nil)
	eig.VectorsTo(vecs)
	W = make([]float64, len(X))
	g0 := gamma0(alpha, beta)
	for i := range W {
		v := vecs.At(0, i)
		W[i] = v * v * g0
	}
	return X, W
}

// GaussLegendre returns the n-point Gauss-Legendre rule on [-1,1].
func GaussLegendre(n int) (X, W []float64) {
	return JacobiGQ(0, 0, n-1)
}

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

func symTriDiagonal(d0, d1 []float64) *mat.SymDense {
	n := len(d0)
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		m.SetSym(i, i, d0[i])
		if i < n-1 {
			m.SetSym(i, i+1, d1[i])
		}
	}
	return m
}
