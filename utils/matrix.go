package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) IsEmpty() bool { return m.M == nil }

// Row returns the backing slice of row i, valid until the matrix is resized.
func (m Matrix) Row(i int) []float64 { return m.M.RawRowView(i) }

// Chainable methods (extended)
func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix { // Changes receiver
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) SetCol(j int, data []float64) Matrix { // Changes receiver
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.M.RawMatrix().Data
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			R.M.Set(j, i, m.M.At(i, j))
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) MulVec(v Vector) (R Vector) { // Does not change receiver
	var (
		nr, _ = m.Dims()
	)
	R = NewVector(nr)
	R.V.MulVec(m.M, v.V)
	return
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	var (
		data = m.RawMatrix().Data
	)
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	var (
		data = m.RawMatrix().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

func (m Matrix) SumRows() (V Vector) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	V = NewVector(nr)
	dataV := V.V.RawVector().Data
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			dataV[i] += m.M.At(i, j)
		}
	}
	return
}

func (m Matrix) SumCols() (V Vector) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	V = NewVector(nc)
	dataV := V.V.RawVector().Data
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			dataV[j] += m.M.At(i, j)
		}
	}
	return
}

// NewSymTriDiagonal composes a gonum SymDense from main and first off
// diagonals, the form consumed by mat.EigenSym.
func NewSymTriDiagonal(d0, d1 []float64) (SymTri *mat.SymDense) {
	var (
		n = len(d0)
	)
	SymTri = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		SymTri.SetSym(i, i, d0[i])
		if i < n-1 {
			SymTri.SetSym(i, i+1, d1[i])
		}
	}
	return
}
