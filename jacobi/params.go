package jacobi

/*
Params carries the numerical controls read by every routine in this
package. It is passed by value and never mutated, so one Params can be
shared freely across goroutines.
*/
type Params struct {
	Tolerance    float64    // convergence threshold for Newton refinement and node matching
	MaxIteration int        // cap on Newton and QL iterations
	MaxPoint     int        // largest supported quadrature point count
	ZeroMethod   ZeroMethod // root finding strategy used by JacobiZeros
}

func DefaultParams() Params {
	return Params{
		Tolerance:    1.e-12,
		MaxIteration: 50,
		MaxPoint:     46,
		ZeroMethod:   Deflation,
	}
}

// MaxOrder is the largest polynomial degree the recurrence evaluator
// accepts under these Params.
func (p Params) MaxOrder() int { return 2*p.MaxPoint - 1 }
