package sparsecalc

import "fmt"

// Determinant returns the determinant of a square matrix by cofactor
// expansion. The expansion runs along the stored row with the smallest row
// id; each term's sign is taken from the coordinates of the expanded element.
// The cost is exponential in the dimension and there is no way to abort it.
//
// A 0 x 0 matrix has determinant 1, a 1 x 1 matrix its only entry or 0.
func (m *Matrix) Determinant() (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if m.rowCount != m.colCount {
		return 0, fmt.Errorf("%w: %d x %d", ErrNotSquare, m.rowCount, m.colCount)
	}

	return m.determinant()
}

func (m *Matrix) determinant() (float64, error) {
	switch m.rowCount {
	case 0:
		return 1, nil
	case 1:
		if m.firstRow == nilIndex {
			return 0, nil
		}
		return m.elements[m.rowAnchors[m.firstRow].first].Value, nil
	}

	if m.firstRow == nilIndex {
		return 0, nil
	}

	det := 0.0
	for e := m.rowAnchors[m.firstRow].first; e != nilIndex; e = m.elements[e].NextInRow {
		pivot := m.elements[e]

		sub, err := m.minorDeterminant(pivot.Row, pivot.Col)
		if err != nil {
			return 0, err
		}

		det += cofactorSign(pivot.Row+pivot.Col) * pivot.Value * sub
	}

	return det, nil
}

// Inverse returns the inverse as adj(m) / det(m). Every cofactor costs one
// minor determinant, so the total work is n*n exponential evaluations.
func (m *Matrix) Inverse() (*Matrix, error) {
	det, err := m.Determinant()
	if err != nil {
		return nil, err
	}
	if det == 0 {
		return nil, ErrSingular
	}

	size := m.rowCount
	cofactors := m.createLike(size, size)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			sub, err := m.minorDeterminant(row, col)
			if err != nil {
				cofactors.Destroy()
				return nil, err
			}
			if sub == 0 {
				continue
			}
			if err := cofactors.Set(row, col, cofactorSign(row+col)*sub); err != nil {
				cofactors.Destroy()
				return nil, err
			}
		}
	}

	// The adjugate is the transposed cofactor matrix.
	if err := cofactors.Transpose(); err != nil {
		cofactors.Destroy()
		return nil, err
	}
	cofactors.Scale(1 / det)

	log.Debugf("inverted %d x %d matrix, det = %g, %d elements", size, size, det, cofactors.count)

	return cofactors, nil
}

// minorDeterminant builds the minor without row and col, evaluates it and
// releases it on every path.
func (m *Matrix) minorDeterminant(row, col int) (float64, error) {
	minor, err := m.minor(row, col)
	if err != nil {
		return 0, err
	}
	defer minor.Destroy()

	return minor.determinant()
}

// minor returns m without row and col. Elements on the removed row or column
// are skipped, larger indices shift down by one.
func (m *Matrix) minor(row, col int) (*Matrix, error) {
	result := m.createLike(max(m.rowCount-1, 0), max(m.colCount-1, 0))

	for r := m.firstRow; r != nilIndex; r = m.rowAnchors[r].next {
		if m.rowAnchors[r].id == row {
			continue
		}
		for e := m.rowAnchors[r].first; e != nilIndex; e = m.elements[e].NextInRow {
			element := &m.elements[e]
			if element.Col == col {
				continue
			}

			newRow, newCol := element.Row, element.Col
			if newRow > row {
				newRow--
			}
			if newCol > col {
				newCol--
			}

			if err := result.Set(newRow, newCol, element.Value); err != nil {
				result.Destroy()
				return nil, err
			}
		}
	}

	return result, nil
}
