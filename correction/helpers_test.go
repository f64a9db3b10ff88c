package correction

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/vdim/operator"
	"github.com/notargets/vdim/quadrature"
)

// curveQuadrature builds a panel quadrature of the closed curve
// r(th) = r0 + eps*cos(lobes*th), counterclockwise, with nodesPerElem
// Gauss-Legendre nodes per panel, outward normals and one Line group.
// eps = 0 gives a circle; a small nonzero eps keeps the nodes off any conic,
// so monomial samples at the nodes stay linearly independent.
func curveQuadrature(nElems, nodesPerElem int, r0, eps float64, lobes int) *quadrature.Quadrature {
	gx, gw := quadrature.GaussLegendre(nodesPerElem)
	n := nElems * nodesPerElem
	q := &quadrature.Quadrature{
		Dim: 2,
		X:   make([]float64, n), Y: make([]float64, n), Z: make([]float64, n),
		Nx: make([]float64, n), Ny: make([]float64, n), Nz: make([]float64, n),
		W:  make([]float64, n),
	}
	conn := make([][]int, nElems)
	dth := 2 * math.Pi / float64(nElems)
	k := 0
	for e := 0; e < nElems; e++ {
		conn[e] = make([]int, nodesPerElem)
		a := float64(e) * dth
		for i := 0; i < nodesPerElem; i++ {
			th := a + (gx[i]+1)/2*dth
			lth := float64(lobes) * th
			r := r0 + eps*math.Cos(lth)
			dr := -eps * float64(lobes) * math.Sin(lth)
			c, s := math.Cos(th), math.Sin(th)
			xp := dr*c - r*s // d/dth of x
			yp := dr*s + r*c // d/dth of y
			jac := math.Hypot(xp, yp)

			q.X[k] = r * c
			q.Y[k] = r * s
			q.Nx[k] = yp / jac
			q.Ny[k] = -xp / jac
			q.W[k] = gw[i] * dth / 2 * jac
			conn[e][i] = k
			k++
		}
	}
	q.Groups = []quadrature.Group{{
		Type:  quadrature.Line,
		Order: nodesPerElem - 1,
		Conn:  conn,
	}}
	return q
}

// diskQuadrature builds a polar product rule over the disk |y| < radius:
// Gauss-Legendre radially, trapezoid in the angle. No element grouping.
func diskQuadrature(nRadial, nAngular int, radius float64) *quadrature.Quadrature {
	gx, gw := quadrature.GaussLegendre(nRadial)
	n := nRadial * nAngular
	q := &quadrature.Quadrature{
		Dim: 2,
		X:   make([]float64, n), Y: make([]float64, n), Z: make([]float64, n),
		W:  make([]float64, n),
	}
	k := 0
	for i := 0; i < nRadial; i++ {
		rho := (gx[i] + 1) / 2 * radius
		wr := gw[i] / 2 * radius
		for j := 0; j < nAngular; j++ {
			ph := 2 * math.Pi * float64(j) / float64(nAngular)
			q.X[k] = rho * math.Cos(ph)
			q.Y[k] = rho * math.Sin(ph)
			q.W[k] = wr * rho * 2 * math.Pi / float64(nAngular)
			k++
		}
	}
	return q
}

// pointTargets wraps a list of 2D points as a target quadrature.
func pointTargets(pts ...[2]float64) *quadrature.Quadrature {
	n := len(pts)
	q := &quadrature.Quadrature{
		Dim: 2,
		X:   make([]float64, n), Y: make([]float64, n), Z: make([]float64, n),
	}
	for i, p := range pts {
		q.X[i], q.Y[i] = p[0], p[1]
	}
	return q
}

// greenLog is the 2D Laplace kernel convention the residual identity is
// calibrated against: G(x,y) = log|x-y| / (2*pi).
func greenLog(x, y [3]float64) float64 {
	return math.Log(math.Hypot(y[0]-x[0], y[1]-x[1])) / (2 * math.Pi)
}

// greenLogNormal is the conormal derivative of greenLog in y:
// (y-x).n(y) / (2*pi*|y-x|^2).
func greenLogNormal(x, y, n [3]float64) float64 {
	dx, dy := y[0]-x[0], y[1]-x[1]
	return (dx*n[0] + dy*n[1]) / (2 * math.Pi * (dx*dx + dy*dy))
}

// laplaceLayerOperators discretizes the single-layer, double-layer and
// volume-potential operators with the plain quadrature rule (no singular
// correction); accurate only when every target is well separated from the
// boundary and the volume.
func laplaceLayerOperators(targets, bdry, vol *quadrature.Quadrature) (S, D, V operator.Handle) {
	nX := targets.Len()

	sm := mat.NewDense(nX, bdry.Len(), nil)
	dm := mat.NewDense(nX, bdry.Len(), nil)
	for i := 0; i < nX; i++ {
		x := targets.Point(i)
		for q := 0; q < bdry.Len(); q++ {
			y := bdry.Point(q)
			sm.Set(i, q, bdry.W[q]*greenLog(x, y))
			dm.Set(i, q, bdry.W[q]*greenLogNormal(x, y, bdry.Normal(q)))
		}
	}

	vm := mat.NewDense(nX, vol.Len(), nil)
	for i := 0; i < nX; i++ {
		x := targets.Point(i)
		for q := 0; q < vol.Len(); q++ {
			vm.Set(i, q, vol.W[q]*greenLog(x, vol.Point(q)))
		}
	}
	return operator.NewDense(sm), operator.NewDense(dm), operator.NewDense(vm)
}

// zeroOperators returns zero handles with the dimensions Correct expects.
func zeroOperators(targets, bdry, vol *quadrature.Quadrature) (S, D, V operator.Handle) {
	return operator.Zero{Rows: targets.Len(), Cols: bdry.Len()},
		operator.Zero{Rows: targets.Len(), Cols: bdry.Len()},
		operator.Zero{Rows: targets.Len(), Cols: vol.Len()}
}

func maxAbs(m *mat.Dense) float64 {
	r, c := m.Dims()
	var max float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := math.Abs(m.At(i, j)); v > max {
				max = v
			}
		}
	}
	return max
}

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }
