// Package basis generates the polynomial interpolation basis for a density
// interpolation correction: for every monomial up to a given total degree, a
// particular solution of the PDE with that monomial as right-hand side, and
// the solution's generalized Neumann trace.
package basis

import (
	"errors"
	"fmt"

	"github.com/notargets/vdim/pde"
	"github.com/notargets/vdim/poly"
)

// ErrInvalidOrder is returned for a negative interpolation order.
var ErrInvalidOrder = errors.New("basis: interpolation order must be non-negative")

// Element is one basis triple: a monomial p, the particular solution P with
// L[P] = p, and P's gradient (from which the Neumann trace is evaluated).
type Element struct {
	Index    poly.MultiIndex
	Monomial poly.Polynomial
	Solution poly.Polynomial
	grad     []poly.Polynomial
}

// MonomialAt evaluates the monomial p at x.
func (e Element) MonomialAt(x []float64) float64 { return e.Monomial.Eval(x) }

// SolutionAt evaluates the particular solution P at x (the Dirichlet trace
// when x lies on a boundary).
func (e Element) SolutionAt(x []float64) float64 { return e.Solution.Eval(x) }

// Trace evaluates the generalized Neumann trace n . grad(P) at x. This is
// PDE-independent given the solution's gradient.
func (e Element) Trace(x, n []float64) float64 {
	var sum float64
	for i := range e.grad {
		sum += n[i] * e.grad[i].Eval(x)
	}
	return sum
}

// Basis is the ordered interpolation basis. Element order follows the
// lexicographic multi-index enumeration and fixes the column order of every
// matrix built from the basis downstream.
type Basis struct {
	Dim      int
	Order    int
	Elements []Element
}

// Len returns the basis size C(order+dim, dim).
func (b *Basis) Len() int { return len(b.Elements) }

// Build enumerates all monomials of total degree at most order in the
// descriptor's ambient dimension and solves for their particular solutions.
func Build(d pde.Descriptor, order int) (*Basis, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	solver, err := d.Solver()
	if err != nil {
		return nil, err
	}

	indices := poly.Enumerate(d.Dim, order)
	b := &Basis{Dim: d.Dim, Order: order, Elements: make([]Element, 0, len(indices))}
	for _, a := range indices {
		p := poly.Monomial(d.Dim, a, 1)
		sol := solver.ParticularSolution(p)
		grad := make([]poly.Polynomial, d.Dim)
		for i := 0; i < d.Dim; i++ {
			grad[i] = sol.Deriv(i)
		}
		b.Elements = append(b.Elements, Element{
			Index:    a,
			Monomial: p,
			Solution: sol,
			grad:     grad,
		})
	}

	if want := poly.Binomial(order+d.Dim, d.Dim); b.Len() != want {
		return nil, fmt.Errorf("basis: enumeration produced %d elements, want %d", b.Len(), want)
	}
	return b, nil
}
