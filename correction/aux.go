package correction

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/vdim/basis"
	"github.com/notargets/vdim/operator"
	"github.com/notargets/vdim/quadrature"
)

// BasisMatrix evaluates every basis monomial at every source node: the
// |Y| x nbasis matrix b with b[j,n] = p_n(y_j). Its rows are the local
// Vandermonde systems the assembler solves against.
func BasisMatrix(b *basis.Basis, src *quadrature.Quadrature) *mat.Dense {
	out := mat.NewDense(src.Len(), b.Len(), nil)
	for j := 0; j < src.Len(); j++ {
		y := src.Point(j)
		for n, e := range b.Elements {
			out.Set(j, n, e.MonomialAt(y[:]))
		}
	}
	return out
}

// ResidualMatrix builds the |X| x nbasis matrix Theta with
//
//	Theta[:,n] = S*trace1(P_n) - D*trace0(P_n) - V*p_n + sigma*P_n(X)
//
// the residual of the discretized Green representation against the exact
// polynomial solutions. Columns are independent and computed concurrently
// with per-column accumulation buffers; each operator application is an
// accumulating scaled matvec.
func ResidualMatrix(b *basis.Basis, targets, src, bdry *quadrature.Quadrature,
	sigma float64, S, D, V operator.Handle, workers int) *mat.Dense {

	nX := targets.Len()
	theta := mat.NewDense(nX, b.Len(), nil)

	var g errgroup.Group
	g.SetLimit(workerCount(workers))
	for n := range b.Elements {
		g.Go(func() error {
			e := b.Elements[n]

			trace1 := make([]float64, bdry.Len())
			trace0 := make([]float64, bdry.Len())
			for q := 0; q < bdry.Len(); q++ {
				y := bdry.Point(q)
				nrm := bdry.Normal(q)
				trace1[q] = e.Trace(y[:], nrm[:])
				trace0[q] = e.SolutionAt(y[:])
			}
			mono := make([]float64, src.Len())
			for q := 0; q < src.Len(); q++ {
				y := src.Point(q)
				mono[q] = e.MonomialAt(y[:])
			}

			col := make([]float64, nX)
			S.AddScaledMulVec(col, 1, trace1)
			D.AddScaledMulVec(col, -1, trace0)
			V.AddScaledMulVec(col, -1, mono)
			if sigma != 0 {
				for i := 0; i < nX; i++ {
					x := targets.Point(i)
					col[i] += sigma * e.SolutionAt(x[:])
				}
			}
			theta.SetCol(n, col)
			return nil
		})
	}
	g.Wait()
	return theta
}

func workerCount(workers int) int {
	if workers > 0 {
		return workers
	}
	return runtime.GOMAXPROCS(0)
}
