package jacobi

import "math"

// ZeroMethod selects the root finding strategy used by JacobiZeros. The
// two strategies are numerically independent and agree to tolerance, not
// bit for bit.
type ZeroMethod uint8

const (
	Deflation   ZeroMethod = iota // Newton iteration on the deflated polynomial
	TriDiagonal                   // eigenvalues of the orthonormal Jacobi matrix
)

// JacobiZeros returns the n zeros of P_n^(alpha,beta) in ascending order
// using the strategy selected by p.ZeroMethod.
func (p Params) JacobiZeros(n int, alpha, beta float64) (z []float64) {
	if p.ZeroMethod == TriDiagonal {
		return p.JacobiZerosTriDiagonal(n, alpha, beta)
	}
	return p.JacobiZerosDeflation(n, alpha, beta)
}

/*
JacobiZerosDeflation locates each zero in turn by Newton iteration on the
deflated polynomial: already accepted roots are subtracted from the
logarithmic derivative so the iteration cannot converge back onto them.
Root k starts from the Chebyshev estimate -cos((2k+1)pi/2n), averaged with
the previously accepted root after the first. The final iterate is
accepted silently when the iteration cap is reached without meeting
tolerance.
*/
func (p Params) JacobiZerosDeflation(n int, alpha, beta float64) (z []float64) {
	if n == 0 {
		return
	}
	var (
		dth   = math.Pi / (2. * float64(n))
		r     = make([]float64, 1)
		poly  = make([]float64, 1)
		pder  = make([]float64, 1)
		rlast float64
	)
	z = make([]float64, n)
	for k := 0; k < n; k++ {
		r[0] = -math.Cos((2.*float64(k) + 1.) * dth)
		if k > 0 {
			r[0] = 0.5 * (r[0] + rlast)
		}
		for j := 1; j < p.MaxIteration; j++ {
			p.JacobiP(r, poly, n, alpha, beta, pder)
			var sum float64
			for i := 0; i < k; i++ {
				sum += 1. / (r[0] - z[i])
			}
			delr := -poly[0] / (pder[0] - sum*poly[0])
			r[0] += delr
			if math.Abs(delr) < p.Tolerance {
				break
			}
		}
		z[k] = r[0]
		rlast = r[0]
	}
	return
}

/*
JacobiZerosTriDiagonal builds the symmetric tridiagonal Jacobi matrix of
the orthonormal three term recurrence from closed form Gamma expressions
and returns its eigenvalues, which are the zeros of P_n^(alpha,beta) in
ascending order.
*/
func (p Params) JacobiZerosTriDiagonal(n int, alpha, beta float64) (z []float64) {
	if n == 0 {
		return
	}
	var (
		a    = make([]float64, n)
		b    = make([]float64, n)
		apb  = alpha + beta
		a2b2 = beta*beta - alpha*alpha
	)
	apbi := 2. + apb
	b[n-1] = math.Pow(2., apb+1.) * GammaFunction(alpha+1.) * GammaFunction(beta+1.) / GammaFunction(apbi)
	a[0] = (beta - alpha) / apbi
	b[0] = math.Sqrt(4. * (1. + alpha) * (1. + beta) / ((apbi + 1.) * apbi * apbi))

	for i := 1; i < n-1; i++ {
		fi := float64(i + 1)
		apbi = 2.*fi + apb
		a[i] = a2b2 / ((apbi - 2.) * apbi)
		b[i] = math.Sqrt(4. * fi * (fi + alpha) * (fi + beta) * (fi + apb) /
			((apbi*apbi - 1.) * apbi * apbi))
	}

	// The closing diagonal term would clobber the correct n=1 entry, so it
	// is applied only for n > 1.
	if n > 1 {
		apbi = 2.*float64(n) + apb
		a[n-1] = a2b2 / ((apbi - 2.) * apbi)
	}

	p.TriQL(a, b)
	return a
}
