package jacobi

import (
	"math"
	"sort"
)

/*
TriQL computes the eigenvalues of a real symmetric tridiagonal matrix in
place by the implicit shift QL algorithm. d holds the diagonal and e the
first off diagonal on entry; on return d holds the eigenvalues in
ascending order and e is destroyed. For each row a negligible subdiagonal
entry is located with the finite precision test |e(m)|+dd == dd, a
Wilkinson shift is formed from the leading 2x2 block, and a chain of
Givens rotations restores tridiagonal form. Exceeding the iteration cap
is fatal.
*/
func (p Params) TriQL(d, e []float64) {
	var (
		n = len(d)
		m int
	)
	for l := 0; l < n; l++ {
		iter := 0
		for {
			for m = l; m < n-1; m++ {
				dd := math.Abs(d[m]) + math.Abs(d[m+1])
				if math.Abs(e[m])+dd == dd {
					break
				}
			}
			if m == l {
				break
			}
			if iter == p.MaxIteration {
				panic("TriQL: too many iterations")
			}
			iter++

			g := (d[l+1] - d[l]) / (2. * e[l])
			r := math.Sqrt(g*g + 1.)
			g = d[m] - d[l] + e[l]/(g+math.Copysign(r, g))
			s, c := 1., 1.
			pp := 0.
			for i := m - 1; i >= l; i-- {
				f := s * e[i]
				b := c * e[i]
				if math.Abs(f) >= math.Abs(g) {
					c = g / f
					r = math.Sqrt(c*c + 1.)
					e[i+1] = f * r
					s = 1. / r
					c *= s
				} else {
					s = f / g
					r = math.Sqrt(s*s + 1.)
					e[i+1] = g * r
					c = 1. / r
					s *= c
				}
				g = d[i+1] - pp
				r = (d[i]-g)*s + 2.*c*b
				pp = s * r
				d[i+1] = g + pp
				g = c*r - b
			}
			d[l] -= pp
			e[l] = g
			e[m] = 0.
		}
	}
	sort.Float64s(d)
}
