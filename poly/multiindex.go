package poly

// MaxDims is the largest ambient dimension supported. Unused trailing
// components of a MultiIndex are zero.
const MaxDims = 3

// MultiIndex holds the exponents of a monomial x^a = x0^a[0]*x1^a[1]*x2^a[2].
type MultiIndex [MaxDims]int

// Degree returns the total degree |a|.
func (a MultiIndex) Degree() int {
	return a[0] + a[1] + a[2]
}

// Enumerate lists all multi-indices of the given dimension with total degree
// at most order, in lexicographic order over the index tuple. The count is
// C(order+dim, dim); callers rely on this ordering for matrix column layout.
func Enumerate(dim, order int) []MultiIndex {
	if dim < 1 || dim > MaxDims || order < 0 {
		return nil
	}
	var out []MultiIndex
	var rec func(prefix MultiIndex, pos, remaining int)
	rec = func(prefix MultiIndex, pos, remaining int) {
		if pos == dim {
			out = append(out, prefix)
			return
		}
		for e := 0; e <= remaining; e++ {
			next := prefix
			next[pos] = e
			rec(next, pos+1, remaining-e)
		}
	}
	rec(MultiIndex{}, 0, order)
	return out
}

// Binomial computes C(n, k) exactly for small arguments.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 0; i < k; i++ {
		c = c * (n - i) / (i + 1)
	}
	return c
}
