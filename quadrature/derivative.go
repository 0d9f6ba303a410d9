package quadrature

import (
	"github.com/notargets/spectral/jacobi"
	"github.com/notargets/spectral/utils"
)

/*
DerivativeMatrix builds the dense np x np differentiation matrix for the
family's node set z: row i holds the derivative weights of the Lagrange
basis evaluated at node i. The per node derivative weights pd are fully
populated into a local buffer before any matrix entry reads them; the
diagonal uses the family's closed form limit instead of the 0/0 ratio of
the off diagonal formula.
*/
func DerivativeMatrix(p jacobi.Params, f Family, Z utils.Vector, alpha, beta float64) (D utils.Matrix) {
	var (
		np = Z.Len()
	)
	if np < 1 {
		return
	}
	if np == 1 && f != Gauss {
		// degenerate single point rule: the basis is constant
		D = utils.NewMatrix(1, 1)
		return
	}
	var (
		z   = Z.DataP()
		pd  = make([]float64, np)
		fnp = float64(np)
	)
	D = utils.NewMatrix(np, np)

	var diag func(i int) float64
	switch f {
	case Gauss:
		p.GradJacobiP(z, pd, np, alpha, beta)
		diag = func(i int) float64 {
			zi := z[i]
			return (alpha - beta + (alpha+beta+2.)*zi) / (2. * (1. - zi*zi))
		}
	case GaussRadauLeft:
		pd[0] = utils.POW(-1., np-1) * jacobi.GammaFunction(fnp+beta+1.) /
			(jacobi.GammaFunction(fnp) * jacobi.GammaFunction(beta+2.))
		p.GradJacobiP(z[1:], pd[1:], np-1, alpha, beta+1.)
		for i := 1; i < np; i++ {
			pd[i] *= 1. + z[i]
		}
		diag = func(i int) float64 {
			if i == 0 {
				return -(fnp + alpha + beta + 1.) * (fnp - 1.) / (2. * (beta + 2.))
			}
			zi := z[i]
			return (alpha - beta + 1. + (alpha+beta+1.)*zi) / (2. * (1. - zi*zi))
		}
	case GaussRadauRight:
		p.GradJacobiP(z[:np-1], pd[:np-1], np-1, alpha+1., beta)
		for i := 0; i < np-1; i++ {
			pd[i] *= 1. - z[i]
		}
		pd[np-1] = -jacobi.GammaFunction(fnp+alpha+1.) /
			(jacobi.GammaFunction(fnp) * jacobi.GammaFunction(alpha+2.))
		diag = func(i int) float64 {
			if i == np-1 {
				return (fnp + alpha + beta + 1.) * (fnp - 1.) / (2. * (alpha + 2.))
			}
			zi := z[i]
			return (alpha - beta - 1. + (alpha+beta+1.)*zi) / (2. * (1. - zi*zi))
		}
	case GaussLobatto:
		pd[0] = 2. * utils.POW(-1., np) * jacobi.GammaFunction(fnp+beta) /
			(jacobi.GammaFunction(fnp-1.) * jacobi.GammaFunction(beta+2.))
		p.GradJacobiP(z[1:np-1], pd[1:np-1], np-2, alpha+1., beta+1.)
		for i := 1; i < np-1; i++ {
			pd[i] *= 1. - z[i]*z[i]
		}
		pd[np-1] = -2. * jacobi.GammaFunction(fnp+alpha) /
			(jacobi.GammaFunction(fnp-1.) * jacobi.GammaFunction(alpha+2.))
		diag = func(i int) float64 {
			switch i {
			case 0:
				return (alpha - (fnp-1.)*(fnp+alpha+beta)) / (2. * (beta + 2.))
			case np - 1:
				return -(beta - (fnp-1.)*(fnp+alpha+beta)) / (2. * (alpha + 2.))
			}
			zi := z[i]
			return (alpha - beta + (alpha+beta)*zi) / (2. * (1. - zi*zi))
		}
	default:
		panic("DerivativeMatrix: unknown quadrature family")
	}

	// The off diagonal formula is shared by all four families.
	for i := 0; i < np; i++ {
		for j := 0; j < i; j++ {
			D.Set(j, i, pd[j]/(pd[i]*(z[j]-z[i])))
			D.Set(i, j, pd[i]/(pd[j]*(z[i]-z[j])))
		}
		D.Set(i, i, diag(i))
	}
	return
}
