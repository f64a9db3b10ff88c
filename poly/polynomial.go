package poly

import "math"

// Polynomial is a dense multivariate polynomial over float64 coefficients,
// stored as a map from exponent multi-index to coefficient. The zero value is
// not usable; construct through New, Monomial or the arithmetic methods, all
// of which return fresh term maps (value semantics, no aliasing).
type Polynomial struct {
	dim   int
	terms map[MultiIndex]float64
}

// New returns the zero polynomial in the given dimension.
func New(dim int) Polynomial {
	return Polynomial{dim: dim, terms: make(map[MultiIndex]float64)}
}

// Monomial returns c * x^a in the given dimension.
func Monomial(dim int, a MultiIndex, c float64) Polynomial {
	p := New(dim)
	if c != 0 {
		p.terms[a] = c
	}
	return p
}

// Dim returns the ambient dimension.
func (p Polynomial) Dim() int { return p.dim }

// IsZero reports whether p has no nonzero terms.
func (p Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Degree returns the total degree of p, or -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	d := -1
	for a := range p.terms {
		if ad := a.Degree(); ad > d {
			d = ad
		}
	}
	return d
}

// Coeff returns the coefficient of x^a.
func (p Polynomial) Coeff(a MultiIndex) float64 { return p.terms[a] }

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	q := New(p.dim)
	for a, c := range p.terms {
		q.terms[a] = c
	}
	return q
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	return p.AddScaled(q, 1)
}

// AddScaled returns p + s*q.
func (p Polynomial) AddScaled(q Polynomial, s float64) Polynomial {
	r := p.Clone()
	for a, c := range q.terms {
		v := r.terms[a] + s*c
		if v == 0 {
			delete(r.terms, a)
		} else {
			r.terms[a] = v
		}
	}
	return r
}

// Scale returns s*p.
func (p Polynomial) Scale(s float64) Polynomial {
	q := New(p.dim)
	if s == 0 {
		return q
	}
	for a, c := range p.terms {
		q.terms[a] = s * c
	}
	return q
}

// Deriv returns the partial derivative of p with respect to coordinate i.
func (p Polynomial) Deriv(i int) Polynomial {
	q := New(p.dim)
	for a, c := range p.terms {
		if a[i] == 0 {
			continue
		}
		b := a
		b[i]--
		q.terms[b] += c * float64(a[i])
	}
	return q
}

// Laplacian returns the Laplacian of p over its ambient dimension.
func (p Polynomial) Laplacian() Polynomial {
	q := New(p.dim)
	for i := 0; i < p.dim; i++ {
		q = q.Add(p.Deriv(i).Deriv(i))
	}
	return q
}

// MulRSquared returns |x|^2 * p, with |x|^2 summed over the ambient dimension.
func (p Polynomial) MulRSquared() Polynomial {
	q := New(p.dim)
	for a, c := range p.terms {
		for i := 0; i < p.dim; i++ {
			b := a
			b[i] += 2
			q.terms[b] += c
		}
	}
	return q
}

// Homogeneous returns the homogeneous component of p of total degree d.
func (p Polynomial) Homogeneous(d int) Polynomial {
	q := New(p.dim)
	for a, c := range p.terms {
		if a.Degree() == d {
			q.terms[a] = c
		}
	}
	return q
}

// Eval evaluates p at the point x. Coordinates beyond the ambient dimension
// are ignored.
func (p Polynomial) Eval(x []float64) float64 {
	var sum float64
	for a, c := range p.terms {
		t := c
		for i := 0; i < p.dim; i++ {
			if a[i] > 0 {
				t *= intPow(x[i], a[i])
			}
		}
		sum += t
	}
	return sum
}

// Equal reports whether p and q have identical terms to within tol.
func (p Polynomial) Equal(q Polynomial, tol float64) bool {
	if p.dim != q.dim {
		return false
	}
	for a, c := range p.terms {
		if math.Abs(c-q.terms[a]) > tol {
			return false
		}
	}
	for a, c := range q.terms {
		if math.Abs(c-p.terms[a]) > tol {
			return false
		}
	}
	return true
}

// intPow computes x^n for non-negative integer n.
func intPow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
