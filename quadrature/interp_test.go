package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/spectral/jacobi"
	"github.com/notargets/spectral/utils"
)

func TestLagrangeInterpolant(t *testing.T) {
	var (
		p  = jacobi.DefaultParams()
		np = 6
	)
	// cardinal property: 1 at the owning node, 0 at every other node
	{
		for _, f := range allFamilies {
			z, _ := PointsWeights(p, f, np, 0.5, 0)
			for i := 0; i < np; i++ {
				for j := 0; j < np; j++ {
					h := LagrangeInterpolant(p, f, i, z.AtVec(j), z, 0.5, 0)
					if i == j {
						assert.Equal(t, 1., h)
					} else {
						assert.True(t, math.Abs(h) < 1.e-10)
					}
				}
			}
		}
	}
	// a perturbation below tolerance still lands on the removable
	// singularity branch
	{
		z, _ := PointsWeights(p, GaussLobatto, np, 0, 0)
		h := LagrangeInterpolant(p, GaussLobatto, 2, z.AtVec(2)+1.e-13, z, 0, 0)
		assert.Equal(t, 1., h)
	}
}

func TestInterpMatrix(t *testing.T) {
	var (
		p  = jacobi.DefaultParams()
		np = 6
	)
	// identical source and target node sets produce the identity
	{
		for _, f := range allFamilies {
			z, _ := PointsWeights(p, f, np, 0, 0.5)
			I := InterpMatrix(p, f, z, z, 0, 0.5)
			for i := 0; i < np; i++ {
				for j := 0; j < np; j++ {
					want := 0.
					if i == j {
						want = 1.
					}
					assert.True(t, math.Abs(I.At(i, j)-want) < 1.e-10)
				}
			}
		}
	}
	// a polynomial of degree < np transfers exactly between node sets
	{
		poly := func(x float64) float64 {
			return 1. - 2.*x + 0.75*x*x*x - 0.3*utils.POW(x, 5)
		}
		for _, f := range allFamilies {
			src, _ := PointsWeights(p, f, np, 0, 0)
			tgt, _ := PointsWeights(p, Gauss, np+2, 0, 0)
			I := InterpMatrix(p, f, src, tgt, 0, 0)

			samples := src.Copy().Apply(poly)
			got := I.MulVec(samples)
			for i := 0; i < tgt.Len(); i++ {
				assert.True(t, nearTol(got.AtVec(i), poly(tgt.AtVec(i)), 1.e-10))
			}
		}
	}
}
