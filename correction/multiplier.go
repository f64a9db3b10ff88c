package correction

import (
	"fmt"
	"math"

	"github.com/notargets/vdim/operator"
	"github.com/notargets/vdim/quadrature"
)

// genericMultipliers are the theoretical Green multiplier values for closed
// surfaces: exterior, on-boundary and interior cases of either orientation.
var genericMultipliers = [...]float64{-1, -0.5, 0, 0.5, 1}

// SnapMultiplier returns the generic multiplier nearest to the estimate,
// removing quadrature noise from the solid angle computation.
func SnapMultiplier(estimate float64) float64 {
	best := genericMultipliers[0]
	for _, v := range genericMultipliers[1:] {
		if math.Abs(estimate-v) < math.Abs(estimate-best) {
			best = v
		}
	}
	return best
}

// resolveMultiplier returns the Green multiplier to calibrate against: the
// explicit value when supplied (which must be a finite scalar), otherwise a
// solid angle estimate at the first target point snapped to the generic set.
func resolveMultiplier(explicit *float64, targets, bdry *quadrature.Quadrature) (float64, error) {
	if explicit != nil {
		if math.IsNaN(*explicit) || math.IsInf(*explicit, 0) {
			return 0, fmt.Errorf("%w: got %v", ErrInvalidMultiplier, *explicit)
		}
		return *explicit, nil
	}
	if targets.Len() == 0 {
		return 0, fmt.Errorf("%w: no target points to estimate from", ErrInvalidMultiplier)
	}
	return SnapMultiplier(quadrature.SolidAngle(bdry, targets.Point(0))), nil
}

// blockMultiplicity validates that the three operators share one element
// type and returns the vector multiplicity the Green multiplier is scaled
// by: the row count of the (square) block, 1 for scalar kernels.
func blockMultiplicity(S, D, V operator.Handle) (float64, error) {
	sr, sc := S.BlockSize()
	dr, dc := D.BlockSize()
	vr, vc := V.BlockSize()
	if sr != dr || sc != dc || sr != vr || sc != vc {
		return 0, fmt.Errorf("%w: blocks %dx%d, %dx%d, %dx%d", ErrElementTypeMismatch,
			sr, sc, dr, dc, vr, vc)
	}
	if sr != sc {
		return 0, fmt.Errorf("%w: block %dx%d is not square", ErrElementTypeMismatch, sr, sc)
	}
	return float64(sr), nil
}
