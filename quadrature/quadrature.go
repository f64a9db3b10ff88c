// Package quadrature holds the node-level view of target, source and boundary
// quadratures consumed by the correction core, together with the geometric
// collaborators built on top of it: the near-point map and the solid angle
// estimator.
package quadrature

import (
	"fmt"
	"math"
)

// ElementType identifies the reference shape a node group originates from.
type ElementType uint8

const (
	Line ElementType = iota
	Tri
	Quad
	Tet
)

func (t ElementType) String() string {
	switch t {
	case Line:
		return "Line"
	case Tri:
		return "Tri"
	case Quad:
		return "Quad"
	case Tet:
		return "Tet"
	default:
		return fmt.Sprintf("ElementType(%d)", uint8(t))
	}
}

// Group collects the elements of one type. Conn maps (element, local node
// slot) to the global node index inside the owning Quadrature.
type Group struct {
	Type  ElementType
	Order int // quadrature order of the rule that produced the nodes
	Conn  [][]int
}

// Quadrature is an ordered collection of quadrature nodes with per-node
// coordinates, weights and (boundary quadratures only) outward normals,
// grouped by originating element type. The global node index is the stable
// identifier used for matrix indexing and the near-point map.
type Quadrature struct {
	Dim int

	X, Y, Z    []float64 // coordinates; Y/Z unused below the ambient dimension
	Nx, Ny, Nz []float64 // outward normals, boundary quadratures only
	W          []float64 // weights

	Groups []Group
}

// Len returns the total node count.
func (q *Quadrature) Len() int { return len(q.X) }

// Point returns the coordinates of node i.
func (q *Quadrature) Point(i int) [3]float64 {
	p := [3]float64{q.X[i]}
	if q.Dim > 1 {
		p[1] = q.Y[i]
	}
	if q.Dim > 2 {
		p[2] = q.Z[i]
	}
	return p
}

// Normal returns the outward normal of node i. Valid only for boundary
// quadratures carrying normals.
func (q *Quadrature) Normal(i int) [3]float64 {
	n := [3]float64{q.Nx[i]}
	if q.Dim > 1 {
		n[1] = q.Ny[i]
	}
	if q.Dim > 2 {
		n[2] = q.Nz[i]
	}
	return n
}

// MaxOrder returns the maximum quadrature order over all groups.
func (q *Quadrature) MaxOrder() int {
	order := 0
	for _, g := range q.Groups {
		if g.Order > order {
			order = g.Order
		}
	}
	return order
}

// Validate checks the element grouping invariant: connectivity indices are in
// range and, when groups are present, every node belongs to exactly one
// element of exactly one group.
func (q *Quadrature) Validate() error {
	if len(q.Groups) == 0 {
		return nil
	}
	seen := make([]int, q.Len())
	for gi, g := range q.Groups {
		for ei, conn := range g.Conn {
			for _, node := range conn {
				if node < 0 || node >= q.Len() {
					return fmt.Errorf("quadrature: group %d element %d references node %d outside [0, %d)",
						gi, ei, node, q.Len())
				}
				seen[node]++
			}
		}
	}
	for node, count := range seen {
		if count != 1 {
			return fmt.Errorf("quadrature: node %d belongs to %d elements, want exactly 1", node, count)
		}
	}
	return nil
}

// Distance returns the Euclidean distance between a point and node i.
func (q *Quadrature) Distance(p [3]float64, i int) float64 {
	n := q.Point(i)
	dx := p[0] - n[0]
	dy := p[1] - n[1]
	dz := p[2] - n[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
