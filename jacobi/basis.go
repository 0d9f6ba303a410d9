package jacobi

/*
Basis supplies the scalar three term recurrence coefficients consumed by
orthogonal expansion builders. The expansion polynomials satisfy

	A_k psi_{k+1}(x) = (B_k - x C_k) psi_k(x) - D_k psi_{k-1}(x)

with psi_{-1} = 0, psi_0 = 1 and

	A_k = 2 (k+1) (k+alpha+beta+1) (2k+alpha+beta)
	B_k = -(2k+alpha+beta+1) (alpha^2 - beta^2)
	C_k = (2k+alpha+beta) (2k+alpha+beta+1) (2k+alpha+beta+2)
	D_k = 2 (k+alpha) (k+beta) (2k+alpha+beta+2)

reported in the consumer's (alpha_k, beta_k, delta_k, gamma_k) form:
gamma_{k+1} = 1/A_k, alpha_k = B_k, delta_k = C_k, beta_k = D_k, with
gamma_0 = 1. Cloning, normalization flags and growth policy belong to the
consumer, not here.
*/
type Basis struct {
	Order       int
	Alpha, Beta float64
}

func NewBasis(order int, alpha, beta float64) Basis {
	return Basis{Order: order, Alpha: alpha, Beta: beta}
}

// CloneWithOrder copies the basis parameters at a different expansion
// order.
func (b Basis) CloneWithOrder(order int) Basis {
	b.Order = order
	return b
}

// RecurrenceCoefficients tabulates the coefficients for k = 0..n-1. All
// four slices have length n; the coefficients are recomputed on every
// call and carry no state.
func (b Basis) RecurrenceCoefficients(n int) (alpha, beta, delta, gamma []float64) {
	var (
		a   = b.Alpha
		bt  = b.Beta
		apb = a + bt
	)
	alpha = make([]float64, n)
	beta = make([]float64, n)
	delta = make([]float64, n)
	gamma = make([]float64, n)
	if n == 0 {
		return
	}
	gamma[0] = 1.
	for k := 0; k < n; k++ {
		fk := float64(k)
		pre := 2.*fk + apb
		A := 2. * (fk + 1.) * (fk + apb + 1.) * pre
		B := -(pre + 1.) * (a*a - bt*bt)
		C := pre * (pre + 1.) * (pre + 2.)
		D := 2. * (fk + a) * (fk + bt) * (pre + 2.)
		if k == 0 && apb == 0. {
			// the leading factor 2k+alpha+beta vanishes here; use the
			// reduced coefficients with that factor divided out
			A = 2. * (apb + 1.)
			B = -(apb + 1.) * (a - bt)
			C = (apb + 1.) * (apb + 2.)
		}
		alpha[k] = B
		beta[k] = D
		delta[k] = C
		if k+1 < n {
			gamma[k+1] = 1. / A
		}
	}
	return
}
