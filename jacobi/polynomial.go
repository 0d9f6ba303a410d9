package jacobi

/*
JacobiP evaluates the Jacobi polynomial P_n^(alpha,beta) at each point of
z using the three term recurrence

	A_k P_k = (B_k + C_k z) P_{k-1} - D_k P_{k-2}, k = 2..n

The recurrence coefficients depend only on alpha, beta and k, so they are
tabulated once per call and reused across every point. Values are written
into poly; a nil poly skips the value writes for the degree 0 and 1 base
cases. When a derivative buffer is supplied through derivO it receives the
top degree derivative term consumed by the Newton zero finder, which is
defined only alongside a simultaneous value evaluation for degree >= 2.
*/
func (p Params) JacobiP(z, poly []float64, n int, alpha, beta float64, derivO ...[]float64) {
	var (
		np    = len(z)
		deriv []float64
	)
	if len(derivO) != 0 {
		deriv = derivO[0]
	}
	if np == 0 {
		return
	}
	switch {
	case n == 0:
		if poly != nil {
			for i := 0; i < np; i++ {
				poly[i] = 1.
			}
		}
		if deriv != nil {
			for i := 0; i < np; i++ {
				deriv[i] = 0.
			}
		}
	case n == 1:
		if poly != nil {
			for i := 0; i < np; i++ {
				poly[i] = 0.5 * (alpha - beta + (alpha+beta+2.)*z[i])
			}
		}
		if deriv != nil {
			for i := 0; i < np; i++ {
				deriv[i] = 0.5 * (alpha + beta + 2.)
			}
		}
	default:
		if deriv != nil && poly == nil {
			panic("JacobiP: value buffer is required to compute the derivative term")
		}
		if poly == nil {
			return
		}
		if n > p.MaxOrder() {
			panic("JacobiP: requested order exceeds MaxOrder")
		}
		var (
			apb = alpha + beta
			amb = alpha - beta
			a2  = make([]float64, n-1)
			a3  = make([]float64, n-1)
			a4  = make([]float64, n-1)
		)
		for k := 2; k <= n; k++ {
			fk := float64(k)
			a1 := 2. * fk * (fk + apb) * (2.*fk + apb - 2.)
			a2[k-2] = (2.*fk + apb - 1.) * apb * amb / a1
			a3[k-2] = (2.*fk + apb - 2.) * (2.*fk + apb - 1.) * (2.*fk + apb) / a1
			a4[k-2] = 2. * (fk + alpha - 1.) * (fk + beta - 1.) * (2.*fk + apb) / a1
		}

		var ad1, ad2, ad3 float64
		if deriv != nil {
			fn := float64(n)
			ad4 := 2.*fn + apb
			ad1 = fn * amb / ad4
			ad2 = fn * (2.*fn + apb) / ad4
			ad3 = 2. * (fn + alpha) * (fn + beta) / ad4
		}

		for i := 0; i < np; i++ {
			zi := z[i]
			polyn2 := 1.
			polyn1 := 0.5 * (amb + (apb+2.)*zi)
			polyn0 := (a2[0] + a3[0]*zi)*polyn1 - a4[0]*polyn2
			for k := 1; k < n-1; k++ {
				polyn2 = polyn1
				polyn1 = polyn0
				polyn0 = (a2[k]+a3[k]*zi)*polyn1 - a4[k]*polyn2
			}
			if deriv != nil {
				deriv[i] = (ad1-ad2*zi)*polyn0 + ad3*polyn1/(1.-zi*zi)
			}
			poly[i] = polyn0
		}
	}
}

/*
GradJacobiP evaluates d/dz P_n^(alpha,beta) at each point of z through the
parameter shifted identity

	d/dz P_n^(a,b)(z) = (a+b+n+1)/2 * P_{n-1}^(a+1,b+1)(z)

writing the result into deriv. Degree 0 yields an identically zero
derivative.
*/
func (p Params) GradJacobiP(z, deriv []float64, n int, alpha, beta float64) {
	if n == 0 {
		for i := range z {
			deriv[i] = 0.
		}
		return
	}
	p.JacobiP(z, deriv, n-1, alpha+1., beta+1.)
	fac := 0.5 * (alpha + beta + float64(n) + 1.)
	for i := range z {
		deriv[i] *= fac
	}
}
