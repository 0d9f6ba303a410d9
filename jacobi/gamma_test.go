package jacobi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGammaFunction(t *testing.T) {
	// integer arguments are exact factorials
	{
		assert.Equal(t, 1., GammaFunction(0))
		assert.Equal(t, 1., GammaFunction(1))
		assert.Equal(t, 2., GammaFunction(3))
		assert.Equal(t, 24., GammaFunction(5))
		assert.Equal(t, 120., GammaFunction(6))
	}
	// half integer arguments build on sqrt(pi)
	{
		sqpi := math.Sqrt(math.Pi)
		assert.Equal(t, sqpi, GammaFunction(0.5))
		assert.Equal(t, -2.*sqpi, GammaFunction(-0.5))
		assert.True(t, near(GammaFunction(1.5), 0.5*sqpi))
		assert.True(t, near(GammaFunction(2.5), 1.5*0.5*sqpi))
		assert.True(t, near(GammaFunction(3.5), 2.5*1.5*0.5*sqpi))
	}
	// anything else is fatal
	{
		assert.Panics(t, func() { GammaFunction(0.25) })
		assert.Panics(t, func() { GammaFunction(math.Pi) })
	}
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Max(math.Abs(b), 1) {
		l = true
	}
	return
}

func nearTol(a, b, tol float64) (l bool) {
	if math.Abs(a-b) < tol*math.Max(math.Abs(b), 1) {
		l = true
	}
	return
}
