package sparsecalc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var _ mat.Matrix = (*Matrix)(nil)

// Dims returns the declared extents.
func (m *Matrix) Dims() (r, c int) {
	return m.rowCount, m.colCount
}

// At returns the value at (i, j), zero when nothing is stored there. At
// panics on indices outside the declared extents, as mat.Matrix requires.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rowCount {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= m.colCount {
		panic(mat.ErrColAccess)
	}

	v, _ := m.Get(i, j)
	return v
}

// T returns an implicit transpose view. Use Transpose to transpose in place.
func (m *Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// ToDense copies m into a gonum dense matrix. A matrix with a zero extent
// gives an empty mat.Dense.
func (m *Matrix) ToDense() *mat.Dense {
	if m == nil || m.rowCount == 0 || m.colCount == 0 {
		return &mat.Dense{}
	}

	dense := mat.NewDense(m.rowCount, m.colCount, nil)
	for t := range m.All() {
		dense.Set(t.Row, t.Col, t.Value)
	}
	return dense
}

// FromDense builds a sparse matrix holding the nonzero entries of a.
func FromDense(a mat.Matrix, config *Configuration) (*Matrix, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}

	rows, cols := a.Dims()
	m, err := Create(rows, cols, config)
	if err != nil {
		return nil, err
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := a.At(i, j)
			if v == 0 {
				continue
			}
			if err := m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("from dense (%d, %d): %w", i, j, err)
			}
		}
	}

	return m, nil
}
