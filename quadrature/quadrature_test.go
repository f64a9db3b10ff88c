package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// circle builds a trapezoid quadrature of the circle |y| = r with outward
// normals, n nodes, no element grouping.
func circle(n int, r float64) *Quadrature {
	q := &Quadrature{
		Dim: 2,
		X:   make([]float64, n), Y: make([]float64, n), Z: make([]float64, n),
		Nx: make([]float64, n), Ny: make([]float64, n), Nz: make([]float64, n),
		W: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		q.X[i] = r * math.Cos(th)
		q.Y[i] = r * math.Sin(th)
		q.Nx[i] = math.Cos(th)
		q.Ny[i] = math.Sin(th)
		q.W[i] = 2 * math.Pi * r / float64(n)
	}
	return q
}

func TestSolidAngle2D(t *testing.T) {
	bdry := circle(400, 1.0)

	assert.InDelta(t, 1.0, SolidAngle(bdry, [3]float64{0, 0, 0}), 1e-6, "interior")
	assert.InDelta(t, 1.0, SolidAngle(bdry, [3]float64{0.4, -0.3, 0}), 1e-6, "interior off-center")
	assert.InDelta(t, 0.0, SolidAngle(bdry, [3]float64{2.5, 0.1, 0}), 1e-6, "exterior")

	// On the boundary, between quadrature nodes.
	th := math.Pi / 400
	onBdry := [3]float64{math.Cos(th), math.Sin(th), 0}
	assert.InDelta(t, 0.5, SolidAngle(bdry, onBdry), 0.05, "on boundary")
}

func TestSolidAngle3D(t *testing.T) {
	// Product quadrature of the unit sphere: Gauss-Legendre in cos(theta),
	// trapezoid in the azimuth.
	nPolar, nAz := 32, 64
	cz, wz := GaussLegendre(nPolar)
	n := nPolar * nAz
	q := &Quadrature{
		Dim: 3,
		X:   make([]float64, n), Y: make([]float64, n), Z: make([]float64, n),
		Nx: make([]float64, n), Ny: make([]float64, n), Nz: make([]float64, n),
		W: make([]float64, n),
	}
	k := 0
	for i := 0; i < nPolar; i++ {
		st := math.Sqrt(1 - cz[i]*cz[i])
		for j := 0; j < nAz; j++ {
			ph := 2 * math.Pi * float64(j) / float64(nAz)
			x, y, z := st*math.Cos(ph), st*math.Sin(ph), cz[i]
			q.X[k], q.Y[k], q.Z[k] = x, y, z
			q.Nx[k], q.Ny[k], q.Nz[k] = x, y, z
			q.W[k] = wz[i] * 2 * math.Pi / float64(nAz)
			k++
		}
	}

	assert.InDelta(t, 1.0, SolidAngle(q, [3]float64{0.1, -0.2, 0.3}), 1e-7, "interior")
	assert.InDelta(t, 0.0, SolidAngle(q, [3]float64{0, 0, 3}), 1e-7, "exterior")
}

func TestValidate(t *testing.T) {
	q := circle(6, 1)
	q.Groups = []Group{{Type: Line, Order: 2, Conn: [][]int{{0, 1, 2}, {3, 4, 5}}}}
	assert.NoError(t, q.Validate())

	// Node in two elements
	q.Groups[0].Conn[1] = []int{2, 4, 5}
	assert.Error(t, q.Validate())

	// Out of range
	q.Groups[0].Conn[1] = []int{3, 4, 6}
	assert.Error(t, q.Validate())

	// No groups is valid (target-only quadratures)
	q.Groups = nil
	assert.NoError(t, q.Validate())
}

func TestMaxOrder(t *testing.T) {
	q := &Quadrature{Groups: []Group{{Order: 2}, {Order: 5}, {Order: 1}}}
	assert.Equal(t, 5, q.MaxOrder())
	assert.Equal(t, 0, (&Quadrature{}).MaxOrder())
}

func TestBuildNearMap(t *testing.T) {
	src := circle(6, 1)
	src.Groups = []Group{{Type: Line, Order: 2, Conn: [][]int{{0, 1, 2}, {3, 4, 5}}}}

	targets := &Quadrature{
		Dim: 2,
		X:   []float64{1, -1, 0},
		Y:   []float64{0, 0, 10},
	}

	m := BuildNearMap(targets, src, 0.1)
	require.Len(t, m, 1)
	require.Len(t, m[0], 2)
	// Target 0 sits on node 0 (element 0); target 1 on node 3 (element 1);
	// target 2 is far from everything.
	assert.Equal(t, []int{0}, m[0][0])
	assert.Equal(t, []int{1}, m[0][1])

	// Unbounded distance flags every pair.
	all := BuildNearMap(targets, src, 0)
	assert.Equal(t, []int{0, 1, 2}, all[0][0])
	assert.Equal(t, []int{0, 1, 2}, all[0][1])
	assert.Equal(t, 6, all.Pairs())
}
