// Package correction builds sparse near-singular correction matrices for
// discretized volume-potential integral operators, by density interpolation:
// correction weights are calibrated so the corrected operators reproduce
// Green's third identity exactly on a polynomial solution space.
package correction

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/notargets/vdim/basis"
	"github.com/notargets/vdim/operator"
	"github.com/notargets/vdim/pde"
	"github.com/notargets/vdim/quadrature"
)

// Params carries the optional knobs of a correction computation. The zero
// value requests the defaults: interpolation order from the source
// quadrature, an estimated and snapped Green multiplier, an unbounded near
// map and one worker per CPU.
type Params struct {
	// Order is the interpolation order. Nil selects the maximum quadrature
	// order present in the source; negative values fail with
	// basis.ErrInvalidOrder.
	Order *int

	// Multiplier is the explicit Green multiplier. Nil estimates it from the
	// solid angle subtended by the boundary at the first target and snaps it
	// to the generic set {-1, -0.5, 0, 0.5, 1}.
	Multiplier *float64

	// MaxDistance bounds the near-point search when Near is not supplied.
	// Non-positive means unbounded: every pair is corrected.
	MaxDistance float64

	// Near overrides the built-in near-point search with a precomputed map.
	Near quadrature.NearMap

	// Workers bounds the parallelism of the residual and assembly loops.
	// Non-positive means GOMAXPROCS.
	Workers int

	// Diagnostics, when non-nil, is populated by the assembler.
	Diagnostics *Diagnostics
}

// Correct computes the sparse correction matrix (#targets x #sources) for the
// operator triple (S, D, V) acting between the boundary/source quadratures
// and the target points. Entries are additive corrections for near pairs;
// all other pairs are zero.
func Correct(d pde.Descriptor, targets, src, bdry *quadrature.Quadrature,
	S, D, V operator.Handle, p Params) (*sparse.CSR, error) {

	mult, err := blockMultiplicity(S, D, V)
	if err != nil {
		return nil, err
	}
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("correction: source quadrature: %w", err)
	}
	if err := checkOperatorDims(targets, src, bdry, S, D, V); err != nil {
		return nil, err
	}

	sigma, err := resolveMultiplier(p.Multiplier, targets, bdry)
	if err != nil {
		return nil, err
	}

	order := src.MaxOrder()
	if p.Order != nil {
		order = *p.Order
	}
	b, err := basis.Build(d, order)
	if err != nil {
		return nil, err
	}

	bm := BasisMatrix(b, src)
	theta := ResidualMatrix(b, targets, src, bdry, sigma*mult, S, D, V, p.Workers)

	near := p.Near
	if near == nil {
		near = quadrature.BuildNearMap(targets, src, p.MaxDistance)
	}

	return Assemble(bm, theta, src, near, p.Workers, p.Diagnostics)
}

func checkOperatorDims(targets, src, bdry *quadrature.Quadrature, S, D, V operator.Handle) error {
	nX, nY, nG := targets.Len(), src.Len(), bdry.Len()
	if r, c := S.Dims(); r != nX || c != nG {
		return fmt.Errorf("correction: single-layer operator is %dx%d, want %dx%d", r, c, nX, nG)
	}
	if r, c := D.Dims(); r != nX || c != nG {
		return fmt.Errorf("correction: double-layer operator is %dx%d, want %dx%d", r, c, nX, nG)
	}
	if r, c := V.Dims(); r != nX || c != nY {
		return fmt.Errorf("correction: volume potential operator is %dx%d, want %dx%d", r, c, nX, nY)
	}
	return nil
}
