package sparsecalc

import (
	"golang.org/x/exp/constraints"
)

func (m *Matrix) ElementCount() int {
	if m == nil {
		return 0
	}
	return m.count
}

func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}
	return m.rowCount
}

func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}
	return m.colCount
}

// IsEmpty reports whether no entry is stored, regardless of the extents.
func (m *Matrix) IsEmpty() bool {
	return m == nil || m.firstRow == nilIndex
}

// Density returns stored entries over declared cells, 0 for a zero extent.
func (m *Matrix) Density() float64 {
	if m == nil || m.rowCount == 0 || m.colCount == 0 {
		return 0
	}
	return float64(m.count) / (float64(m.rowCount) * float64(m.colCount))
}

// cofactorSign returns (-1)^n.
func cofactorSign[T constraints.Integer](n T) float64 {
	if n%2 == 0 {
		return 1
	}
	return -1
}

func abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
