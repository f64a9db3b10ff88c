package quadrature

import "math"

// NearMap records, per source group and per element, the ordered set of
// target node indices within the near-distance threshold of that element.
// Built once, read-only afterward.
type NearMap [][][]int

// Pairs returns the total number of (element, target) near pairs.
func (m NearMap) Pairs() int {
	count := 0
	for _, group := range m {
		for _, targets := range group {
			count += len(targets)
		}
	}
	return count
}

// BuildNearMap flags every target node whose distance to a source element is
// at most maxDist. The distance to an element is the minimum distance to any
// of its nodes. A non-positive or infinite maxDist flags every pair.
func BuildNearMap(target, source *Quadrature, maxDist float64) NearMap {
	if maxDist <= 0 {
		maxDist = math.Inf(1)
	}
	m := make(NearMap, len(source.Groups))
	for gi, g := range source.Groups {
		m[gi] = make([][]int, len(g.Conn))
		for ei, conn := range g.Conn {
			var near []int
			for ti := 0; ti < target.Len(); ti++ {
				p := target.Point(ti)
				d := math.Inf(1)
				for _, node := range conn {
					if nd := source.Distance(p, node); nd < d {
						d = nd
					}
				}
				if d <= maxDist {
					near = append(near, ti)
				}
			}
			m[gi][ei] = near
		}
	}
	return m
}
