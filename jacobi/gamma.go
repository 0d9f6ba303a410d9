package jacobi

import "math"

/*
GammaFunction evaluates the Gamma function at integer and half integer
arguments by iterated multiplication, the only cases needed for the
quadrature normalization constants. Gamma(0) is taken as 1 and
Gamma(-0.5) as -2*sqrt(pi). Any other argument is fatal.
*/
func GammaFunction(x float64) (gamma float64) {
	switch {
	case x == -0.5:
		gamma = -2. * math.Sqrt(math.Pi)
	case x == 0.:
		gamma = 1.
	case x-math.Trunc(x) == 0.5:
		tmp := x
		gamma = math.Sqrt(math.Pi)
		for n := int(x); n > 0; n-- {
			tmp -= 1.
			gamma *= tmp
		}
	case x == math.Trunc(x):
		tmp := x
		gamma = 1.
		for n := int(x); n > 1; n-- {
			tmp -= 1.
			gamma *= tmp
		}
	default:
		panic("GammaFunction: argument is not of integer or half order")
	}
	return
}
