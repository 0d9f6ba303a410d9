package jacobi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJacobiP(t *testing.T) {
	var (
		p = DefaultParams()
		z = []float64{-0.9, -0.5, -0.1, 0., 0.3, 0.7, 1.}
	)
	// degree 0 and 1 base cases
	{
		poly := make([]float64, len(z))
		p.JacobiP(z, poly, 0, 1.5, 0.5)
		for _, val := range poly {
			assert.Equal(t, 1., val)
		}
		p.JacobiP(z, poly, 1, 1.5, 0.5)
		for i, zi := range z {
			assert.True(t, near(poly[i], 0.5*(1.5-0.5+4.*zi)))
		}
	}
	// Legendre closed forms for degrees 2 and 3
	{
		poly := make([]float64, len(z))
		p.JacobiP(z, poly, 2, 0, 0)
		for i, zi := range z {
			assert.True(t, near(poly[i], 0.5*(3.*zi*zi-1.)))
		}
		p.JacobiP(z, poly, 3, 0, 0)
		for i, zi := range z {
			assert.True(t, near(poly[i], 0.5*(5.*zi*zi*zi-3.*zi)))
		}
	}
	// reflection: P_n^(a,b)(-z) = (-1)^n P_n^(b,a)(z)
	{
		var (
			zNeg  = make([]float64, len(z))
			pAB   = make([]float64, len(z))
			pBA   = make([]float64, len(z))
			n     = 7
			alpha = 1.
			beta  = 0.5
		)
		for i, zi := range z {
			zNeg[i] = -zi
		}
		p.JacobiP(zNeg, pAB, n, alpha, beta)
		p.JacobiP(z, pBA, n, beta, alpha)
		sign := math.Pow(-1., float64(n))
		for i := range z {
			assert.True(t, near(pAB[i], sign*pBA[i]))
		}
	}
	// fatal misuse: derivative term without a value buffer
	{
		deriv := make([]float64, len(z))
		assert.Panics(t, func() { p.JacobiP(z, nil, 5, 0, 0, deriv) })
	}
	// fatal order overflow
	{
		poly := make([]float64, len(z))
		assert.Panics(t, func() { p.JacobiP(z, poly, p.MaxOrder()+1, 0, 0) })
	}
}

func TestGradJacobiP(t *testing.T) {
	var (
		p = DefaultParams()
		z = []float64{-0.8, -0.3, 0.1, 0.45, 0.9}
	)
	// degree 0 has zero derivative
	{
		deriv := make([]float64, len(z))
		p.GradJacobiP(z, deriv, 0, 2, 1)
		for _, val := range deriv {
			assert.Equal(t, 0., val)
		}
	}
	// compare against a central difference at interior points
	{
		for _, n := range []int{1, 2, 5, 9} {
			for _, ab := range [][2]float64{{0, 0}, {0.5, 0.5}, {1, 0}} {
				var (
					alpha, beta = ab[0], ab[1]
					h           = 1.e-6
					deriv       = make([]float64, len(z))
					plus        = make([]float64, len(z))
					minus       = make([]float64, len(z))
					zp          = make([]float64, len(z))
					zm          = make([]float64, len(z))
				)
				p.GradJacobiP(z, deriv, n, alpha, beta)
				for i, zi := range z {
					zp[i], zm[i] = zi+h, zi-h
				}
				p.JacobiP(zp, plus, n, alpha, beta)
				p.JacobiP(zm, minus, n, alpha, beta)
				for i := range z {
					fd := (plus[i] - minus[i]) / (2. * h)
					assert.True(t, nearTol(deriv[i], fd, 1.e-5))
				}
			}
		}
	}
}
