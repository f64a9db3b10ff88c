package quadrature

import "math"

// SolidAngle estimates the normalized solid angle subtended by a closed
// boundary quadrature at the point x: the Gauss integral
//
//	(1/omega_N) * integral over the boundary of n(y).(y-x)/|y-x|^N ds(y)
//
// with omega_2 = 2*pi and omega_3 = 4*pi. The estimate is 1 for x inside the
// boundary, 0 outside and 1/2 on a smooth boundary point, up to quadrature
// error. Supported for ambient dimensions 2 and 3.
func SolidAngle(bdry *Quadrature, x [3]float64) float64 {
	var sum float64
	switch bdry.Dim {
	case 2:
		for i := 0; i < bdry.Len(); i++ {
			y := bdry.Point(i)
			n := bdry.Normal(i)
			dx, dy := y[0]-x[0], y[1]-x[1]
			r2 := dx*dx + dy*dy
			sum += bdry.W[i] * (n[0]*dx + n[1]*dy) / r2
		}
		return sum / (2 * math.Pi)
	case 3:
		for i := 0; i < bdry.Len(); i++ {
			y := bdry.Point(i)
			n := bdry.Normal(i)
			dx, dy, dz := y[0]-x[0], y[1]-x[1], y[2]-x[2]
			r := math.Sqrt(dx*dx + dy*dy + dz*dz)
			sum += bdry.W[i] * (n[0]*dx + n[1]*dy + n[2]*dz) / (r * r * r)
		}
		return sum / (4 * math.Pi)
	default:
		return math.NaN()
	}
}
