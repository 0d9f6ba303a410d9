package jacobi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// evalExpansion runs the consumer side recurrence
// psi_{k+1} = gamma_{k+1} ((alpha_k - x delta_k) psi_k - beta_k psi_{k-1})
// to degree n.
func evalExpansion(b Basis, n int, x float64) float64 {
	alpha, beta, delta, gamma := b.RecurrenceCoefficients(n + 1)
	psim1, psi := 0., 1.
	for k := 0; k < n; k++ {
		next := gamma[k+1] * ((alpha[k]-x*delta[k])*psi - beta[k]*psim1)
		psim1, psi = psi, next
	}
	return psi
}

func TestBasisRecurrence(t *testing.T) {
	var (
		p = DefaultParams()
		z = []float64{-0.75, -0.2, 0.1, 0.6, 0.95}
	)
	// the expansion polynomials are (-1)^n P_n^(alpha,beta)
	{
		for _, ab := range [][2]float64{{0, 0}, {0.5, 0.5}, {1, 0}, {2, 0.5}} {
			alpha, beta := ab[0], ab[1]
			b := NewBasis(10, alpha, beta)
			for _, n := range []int{1, 2, 4, 8} {
				poly := make([]float64, len(z))
				p.JacobiP(z, poly, n, alpha, beta)
				sign := math.Pow(-1., float64(n))
				for i, x := range z {
					assert.True(t, nearTol(evalExpansion(b, n, x), sign*poly[i], 1.e-12))
				}
			}
		}
	}
	// the expansion vanishes at the zeros of P_n
	{
		b := NewBasis(6, 0.5, 1)
		for _, x := range p.JacobiZeros(6, 0.5, 1) {
			assert.True(t, math.Abs(evalExpansion(b, 6, x)) < 1.e-10)
		}
	}
	// the leading coefficient branch keeps gamma_1 finite when
	// alpha+beta = 0
	{
		b := NewBasis(4, 0, 0)
		_, _, _, gamma := b.RecurrenceCoefficients(2)
		assert.Equal(t, 1., gamma[0])
		assert.Equal(t, 0.5, gamma[1])
		assert.False(t, math.IsInf(gamma[1], 0))
	}
}

func TestBasisClone(t *testing.T) {
	b := NewBasis(4, 1.5, 0.5)
	c := b.CloneWithOrder(9)
	assert.Equal(t, 9, c.Order)
	assert.Equal(t, 4, b.Order)
	assert.Equal(t, b.Alpha, c.Alpha)
	assert.Equal(t, b.Beta, c.Beta)
}
