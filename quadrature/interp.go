package quadrature

import (
	"math"

	"github.com/notargets/spectral/jacobi"
	"github.com/notargets/spectral/utils"
)

/*
LagrangeInterpolant evaluates the i-th Lagrange basis function of the
family's node set at an arbitrary point z: the polynomial equal to 1 at
node i and 0 at every other node. When z coincides with node i to within
p.Tolerance the removable singularity is resolved to exactly 1. For the
Radau and Lobatto families the basis carries the endpoint factor of the
weighted characteristic polynomial, so the denominator is assembled from
shifted parameter values and derivatives that stay finite at z = +-1.
*/
func LagrangeInterpolant(p jacobi.Params, f Family, i int, z float64, nodes utils.Vector, alpha, beta float64) (h float64) {
	var (
		np  = nodes.Len()
		zi  = []float64{nodes.AtVec(i)}
		zv  = []float64{z}
		pv  = make([]float64, 1)
		pdv = make([]float64, 1)
		dz  = z - zi[0]
	)
	if math.Abs(dz) < p.Tolerance {
		return 1.
	}
	switch f {
	case Gauss:
		p.GradJacobiP(zi, pdv, np, alpha, beta)
		p.JacobiP(zv, pv, np, alpha, beta)
		h = pv[0] / (pdv[0] * dz)
	case GaussRadauLeft:
		p.JacobiP(zi, pv, np-1, alpha, beta+1.)
		p.GradJacobiP(zi, pdv, np-1, alpha, beta+1.)
		h = (1.+zi[0])*pdv[0] + pv[0]
		p.JacobiP(zv, pv, np-1, alpha, beta+1.)
		h = (1. + z) * pv[0] / (h * dz)
	case GaussRadauRight:
		p.JacobiP(zi, pv, np-1, alpha+1., beta)
		p.GradJacobiP(zi, pdv, np-1, alpha+1., beta)
		h = (1.-zi[0])*pdv[0] - pv[0]
		p.JacobiP(zv, pv, np-1, alpha+1., beta)
		h = (1. - z) * pv[0] / (h * dz)
	case GaussLobatto:
		p.JacobiP(zi, pv, np-2, alpha+1., beta+1.)
		p.GradJacobiP(zi, pdv, np-2, alpha+1., beta+1.)
		h = (1.-zi[0]*zi[0])*pdv[0] - 2.*zi[0]*pv[0]
		p.JacobiP(zv, pv, np-2, alpha+1., beta+1.)
		h = (1. - z*z) * pv[0] / (h * dz)
	default:
		panic("LagrangeInterpolant: unknown quadrature family")
	}
	return
}

/*
InterpMatrix builds the dense mz x nz operator mapping samples on the
family's nz source nodes to the mz target points: I(row, col) is the
col-th Lagrange basis function evaluated at target point row. Every entry
is an independent scalar evaluation.
*/
func InterpMatrix(p jacobi.Params, f Family, sourceNodes, targetPoints utils.Vector, alpha, beta float64) (I utils.Matrix) {
	var (
		nz = sourceNodes.Len()
		mz = targetPoints.Len()
	)
	if nz < 1 || mz < 1 {
		return
	}
	I = utils.NewMatrix(mz, nz)
	for i := 0; i < mz; i++ {
		zp := targetPoints.AtVec(i)
		for j := 0; j < nz; j++ {
			I.Set(i, j, LagrangeInterpolant(p, f, j, zp, sourceNodes, alpha, beta))
		}
	}
	return
}
