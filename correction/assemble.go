package correction

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/vdim/quadrature"
)

// Diagnostics reports observability data from the assembly pass. Conditioning
// issues never alter control flow; MaxCond is the tool for detecting an
// ill-posed order/quadrature combination after the fact.
type Diagnostics struct {
	MaxCond      float64 // worst local Vandermonde condition number seen
	NearElements int     // elements with at least one near target
	NearPairs    int     // (element, target) pairs corrected
}

type triplet struct {
	row, col int
	val      float64
}

// Assemble runs the per-element local solves and gathers the resulting
// interpolation weights into the sparse correction matrix.
//
// For each element with near targets it forms the local Vandermonde matrix L
// from the element's rows of the basis matrix, then solves w*L = Theta[i,:]
// for every near target i in one batched least-squares solve (gonum Solve:
// LU when square, QR/LQ otherwise). The weights become triplets
// (target, global source node, value); per-element buffers are merged after
// the parallel loop, summing contributions that land on the same
// (target, source) position, so the stored matrix has one entry per pair.
func Assemble(bm, theta *mat.Dense, src *quadrature.Quadrature, near quadrature.NearMap,
	workers int, diag *Diagnostics) (*sparse.CSR, error) {

	if len(near) != len(src.Groups) {
		return nil, fmt.Errorf("correction: near map covers %d groups, source has %d",
			len(near), len(src.Groups))
	}

	nTargets, _ := theta.Dims()

	type job struct {
		conn    []int
		targets []int
	}
	var jobs []job
	for gi, g := range src.Groups {
		if len(near[gi]) != len(g.Conn) {
			return nil, fmt.Errorf("correction: near map group %d covers %d elements, group has %d",
				gi, len(near[gi]), len(g.Conn))
		}
		for ei, conn := range g.Conn {
			for _, ti := range near[gi][ei] {
				if ti < 0 || ti >= nTargets {
					return nil, fmt.Errorf("correction: near map group %d element %d references target %d outside [0, %d)",
						gi, ei, ti, nTargets)
				}
			}
			if len(near[gi][ei]) == 0 {
				continue
			}
			jobs = append(jobs, job{conn: conn, targets: near[gi][ei]})
		}
	}

	nb := theta.RawMatrix().Cols
	buffers := make([][]triplet, len(jobs))
	conds := make([]float64, len(jobs))

	var g errgroup.Group
	g.SetLimit(workerCount(workers))
	for ji := range jobs {
		g.Go(func() error {
			j := jobs[ji]
			npe := len(j.conn)

			L := mat.NewDense(npe, nb, nil)
			for r, node := range j.conn {
				L.SetRow(r, bm.RawRowView(node))
			}
			conds[ji] = mat.Cond(L, 2)

			rhs := mat.NewDense(nb, len(j.targets), nil)
			for c, ti := range j.targets {
				for n := 0; n < nb; n++ {
					rhs.Set(n, c, theta.At(ti, n))
				}
			}

			var weights mat.Dense
			if err := weights.Solve(L.T(), rhs); err != nil {
				// A Condition error still carries a usable solution; anything
				// else means the local system could not be solved at all.
				if _, advisory := err.(mat.Condition); !advisory {
					return fmt.Errorf("correction: local solve failed for element with nodes %v: %w",
						j.conn, err)
				}
			}

			buf := make([]triplet, 0, npe*len(j.targets))
			for c, ti := range j.targets {
				for r, node := range j.conn {
					buf = append(buf, triplet{row: ti, col: node, val: weights.At(r, c)})
				}
			}
			buffers[ji] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, buf := range buffers {
		total += len(buf)
	}
	// Sum overlapping contributions here: the COO construction stores
	// duplicate positions verbatim, it does not merge them.
	merged := make(map[[2]int]float64, total)
	pairs := 0
	for ji, buf := range buffers {
		for _, t := range buf {
			merged[[2]int{t.row, t.col}] += t.val
		}
		pairs += len(jobs[ji].targets)
	}
	rows := make([]int, 0, len(merged))
	cols := make([]int, 0, len(merged))
	vals := make([]float64, 0, len(merged))
	for pos, v := range merged {
		rows = append(rows, pos[0])
		cols = append(cols, pos[1])
		vals = append(vals, v)
	}

	if diag != nil {
		for _, c := range conds {
			if c > diag.MaxCond {
				diag.MaxCond = c
			}
		}
		diag.NearElements += len(jobs)
		diag.NearPairs += pairs
	}

	coo := sparse.NewCOO(nTargets, src.Len(), rows, cols, vals)
	return coo.ToCSR(), nil
}
