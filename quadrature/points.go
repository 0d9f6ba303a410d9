package quadrature

import (
	"math"

	"github.com/notargets/spectral/jacobi"
	"github.com/notargets/spectral/utils"
)

/*
PointsWeights computes the nodes and weights of the np point Gauss type
rule of family f under the Jacobi weight (1-z)^alpha (1+z)^beta. Nodes
come back ascending, with the family's fixed endpoints at exactly -1
and/or +1, and the weights carry the closed form Gamma normalization of
the family. A single point Radau or Lobatto request degenerates to the
midpoint rule {0, 2}. The analytic preconditions alpha > -1, beta > -1
are not re-validated here.
*/
func PointsWeights(p jacobi.Params, f Family, np int, alpha, beta float64) (Z, W utils.Vector) {
	if np < 1 {
		return
	}
	var z, w []float64
	switch f {
	case Gauss:
		z, w = gaussRule(p, np, alpha, beta)
	case GaussRadauLeft:
		z, w = radauLeftRule(p, np, alpha, beta)
	case GaussRadauRight:
		z, w = radauRightRule(p, np, alpha, beta)
	case GaussLobatto:
		z, w = lobattoRule(p, np, alpha, beta)
	default:
		panic("PointsWeights: unknown quadrature family")
	}
	Z, W = utils.NewVector(np, z), utils.NewVector(np, w)
	return
}

func gaussRule(p jacobi.Params, np int, alpha, beta float64) (z, w []float64) {
	var (
		apb = alpha + beta
		fnp = float64(np)
	)
	z = p.JacobiZeros(np, alpha, beta)
	w = make([]float64, np)
	p.GradJacobiP(z, w, np, alpha, beta)

	fac := math.Pow(2., apb+1.) * jacobi.GammaFunction(alpha+fnp+1.) * jacobi.GammaFunction(beta+fnp+1.)
	fac /= jacobi.GammaFunction(fnp+1.) * jacobi.GammaFunction(apb+fnp+1.)

	for i := range w {
		w[i] = fac / (w[i] * w[i] * (1. - z[i]*z[i]))
	}
	return
}

func radauLeftRule(p jacobi.Params, np int, alpha, beta float64) (z, w []float64) {
	if np == 1 {
		return []float64{0.}, []float64{2.}
	}
	var (
		apb = alpha + beta
		fnp = float64(np)
	)
	z = make([]float64, np)
	z[0] = -1.
	copy(z[1:], p.JacobiZeros(np-1, alpha, beta+1.))

	w = make([]float64, np)
	p.JacobiP(z, w, np-1, alpha, beta)

	fac := math.Pow(2., apb) * jacobi.GammaFunction(alpha+fnp) * jacobi.GammaFunction(beta+fnp)
	fac /= jacobi.GammaFunction(fnp) * (beta + fnp) * jacobi.GammaFunction(apb+fnp+1.)

	for i := range w {
		w[i] = fac * (1. - z[i]) / (w[i] * w[i])
	}
	w[0] *= beta + 1.
	return
}

func radauRightRule(p jacobi.Params, np int, alpha, beta float64) (z, w []float64) {
	if np == 1 {
		return []float64{0.}, []float64{2.}
	}
	var (
		apb = alpha + beta
		fnp = float64(np)
	)
	z = make([]float64, np)
	copy(z, p.JacobiZeros(np-1, alpha+1., beta))
	z[np-1] = 1.

	w = make([]float64, np)
	p.JacobiP(z, w, np-1, alpha, beta)

	fac := math.Pow(2., apb) * jacobi.GammaFunction(alpha+fnp) * jacobi.GammaFunction(beta+fnp)
	fac /= jacobi.GammaFunction(fnp) * (alpha + fnp) * jacobi.GammaFunction(apb+fnp+1.)

	for i := range w {
		w[i] = fac * (1. + z[i]) / (w[i] * w[i])
	}
	w[np-1] *= alpha + 1.
	return
}

func lobattoRule(p jacobi.Params, np int, alpha, beta float64) (z, w []float64) {
	if np == 1 {
		return []float64{0.}, []float64{2.}
	}
	var (
		apb = alpha + beta
		fnp = float64(np)
	)
	z = make([]float64, np)
	z[0] = -1.
	z[np-1] = 1.
	copy(z[1:np-1], p.JacobiZeros(np-2, alpha+1., beta+1.))

	w = make([]float64, np)
	p.JacobiP(z, w, np-1, alpha, beta)

	fac := math.Pow(2., apb+1.) * jacobi.GammaFunction(alpha+fnp) * jacobi.GammaFunction(beta+fnp)
	fac /= (fnp - 1.) * jacobi.GammaFunction(fnp) * jacobi.GammaFunction(apb+fnp+1.)

	for i := range w {
		w[i] = fac / (w[i] * w[i])
	}
	w[0] *= beta + 1.
	w[np-1] *= alpha + 1.
	return
}
