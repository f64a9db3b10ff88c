// Package operator defines the handle contract for the discretized integral
// operators a correction is calibrated against: single-layer, double-layer
// and volume potential. Handles are opaque linear maps from source-node
// vectors to target-node vectors; the core only needs scaled accumulating
// matvecs plus sub-block extraction for diagnostics.
package operator

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Handle is a linear map between node-indexed vectors.
type Handle interface {
	// Dims returns the (target, source) node counts of the map.
	Dims() (rows, cols int)

	// BlockSize returns the shape of one operator entry. Scalar kernels
	// report (1, 1); vector PDE discretizations report the block shape of
	// their matrix-valued entries.
	BlockSize() (rows, cols int)

	// AddScaledMulVec accumulates dst <- dst + alpha * (Op * v) without
	// allocating intermediates.
	AddScaledMulVec(dst []float64, alpha float64, v []float64)

	// SubBlock extracts the dense sub-matrix Op[rows, cols]. Used for
	// diagnostics and testing only, never on the hot path.
	SubBlock(rows, cols []int) *mat.Dense
}

// Dense adapts a dense gonum matrix to the Handle contract.
type Dense struct {
	m                    *mat.Dense
	blockRows, blockCols int
}

// NewDense wraps a dense matrix with scalar (1x1) entries.
func NewDense(m *mat.Dense) *Dense {
	return &Dense{m: m, blockRows: 1, blockCols: 1}
}

// NewDenseBlock wraps a dense matrix whose logical entries are
// blockRows x blockCols blocks (vector PDE case).
func NewDenseBlock(m *mat.Dense, blockRows, blockCols int) *Dense {
	return &Dense{m: m, blockRows: blockRows, blockCols: blockCols}
}

func (d *Dense) Dims() (rows, cols int)      { return d.m.Dims() }
func (d *Dense) BlockSize() (rows, cols int) { return d.blockRows, d.blockCols }

func (d *Dense) AddScaledMulVec(dst []float64, alpha float64, v []float64) {
	rows, _ := d.m.Dims()
	for i := 0; i < rows; i++ {
		dst[i] += alpha * floats.Dot(d.m.RawRowView(i), v)
	}
}

func (d *Dense) SubBlock(rows, cols []int) *mat.Dense {
	out := mat.NewDense(len(rows), len(cols), nil)
	for i, r := range rows {
		for j, c := range cols {
			out.Set(i, j, d.m.At(r, c))
		}
	}
	return out
}

// Zero is the zero map, useful when one of the three operators is absent
// from a formulation.
type Zero struct {
	Rows, Cols int
}

func (z Zero) Dims() (rows, cols int)                    { return z.Rows, z.Cols }
func (z Zero) BlockSize() (rows, cols int)               { return 1, 1 }
func (z Zero) AddScaledMulVec(_ []float64, _ float64, _ []float64) {}

func (z Zero) SubBlock(rows, cols []int) *mat.Dense {
	return mat.NewDense(len(rows), len(cols), nil)
}
