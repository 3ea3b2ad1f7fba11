package sparsecalc

import "fmt"

// Add returns a + b as a new matrix. When either operand stores nothing the
// result is a copy of the other one, extents included. Otherwise the shapes
// must match. Sums that cancel to exactly zero are not stored.
func Add(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}

	if a.firstRow == nilIndex {
		result := b.Clone()
		result.Config = a.Config
		return result, nil
	}
	if b.firstRow == nilIndex {
		return a.Clone(), nil
	}

	if a.rowCount != b.rowCount || a.colCount != b.colCount {
		return nil, fmt.Errorf("%w: add %d x %d and %d x %d", ErrDimensionMismatch, a.rowCount, a.colCount, b.rowCount, b.colCount)
	}

	result := a.createLike(a.rowCount, a.colCount)

	ra, rb := a.firstRow, b.firstRow
	for ra != nilIndex || rb != nilIndex {
		var err error
		switch {
		case rb == nilIndex || (ra != nilIndex && a.rowAnchors[ra].id < b.rowAnchors[rb].id):
			err = result.copyRow(a, ra)
			ra = a.rowAnchors[ra].next
		case ra == nilIndex || a.rowAnchors[ra].id > b.rowAnchors[rb].id:
			err = result.copyRow(b, rb)
			rb = b.rowAnchors[rb].next
		default:
			err = result.mergeRows(a, ra, b, rb)
			ra = a.rowAnchors[ra].next
			rb = b.rowAnchors[rb].next
		}
		if err != nil {
			result.Destroy()
			return nil, err
		}
	}

	return result, nil
}

// Subtract returns a - b, computed as a + (-b). The negated operand is
// released before Subtract returns.
func Subtract(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}

	negated := b.negate()
	defer negated.Destroy()

	return Add(a, negated)
}

// Multiply returns a * b. The result is a.Rows() x b.Cols(); each stored
// entry is the two-pointer dot product of a row chain of a and a column
// chain of b, kept only when nonzero.
func Multiply(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.colCount != b.rowCount {
		return nil, fmt.Errorf("%w: multiply %d x %d by %d x %d", ErrDimensionMismatch, a.rowCount, a.colCount, b.rowCount, b.colCount)
	}

	result := a.createLike(a.rowCount, b.colCount)
	if a.firstRow == nilIndex || b.firstRow == nilIndex {
		return result, nil
	}

	for r := a.firstRow; r != nilIndex; r = a.rowAnchors[r].next {
		for c := b.firstCol; c != nilIndex; c = b.colAnchors[c].next {
			sum := 0.0
			ea := a.rowAnchors[r].first
			eb := b.colAnchors[c].first
			for ea != nilIndex && eb != nilIndex {
				left, right := &a.elements[ea], &b.elements[eb]
				switch {
				case left.Col < right.Row:
					ea = left.NextInRow
				case left.Col > right.Row:
					eb = right.NextInCol
				default:
					sum += left.Value * right.Value
					ea = left.NextInRow
					eb = right.NextInCol
				}
			}

			if sum != 0 {
				if err := result.Set(a.rowAnchors[r].id, b.colAnchors[c].id, sum); err != nil {
					result.Destroy()
					return nil, err
				}
			}
		}
	}

	return result, nil
}

// MulVec computes dst = m * x.
func (m *Matrix) MulVec(dst, x []float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(x) != m.colCount || len(dst) != m.rowCount {
		return fmt.Errorf("%w: %d x %d matrix, len(x) = %d, len(dst) = %d", ErrDimensionMismatch, m.rowCount, m.colCount, len(x), len(dst))
	}

	for i := range dst {
		dst[i] = 0
	}
	for r := m.firstRow; r != nilIndex; r = m.rowAnchors[r].next {
		sum := 0.0
		for e := m.rowAnchors[r].first; e != nilIndex; e = m.elements[e].NextInRow {
			sum += m.elements[e].Value * x[m.elements[e].Col]
		}
		dst[m.rowAnchors[r].id] = sum
	}

	return nil
}

// negate returns a copy of m with every value sign-flipped.
func (m *Matrix) negate() *Matrix {
	negated := m.Clone()
	for r := negated.firstRow; r != nilIndex; r = negated.rowAnchors[r].next {
		for e := negated.rowAnchors[r].first; e != nilIndex; e = negated.elements[e].NextInRow {
			negated.elements[e].Value = -negated.elements[e].Value
		}
	}
	return negated
}

// copyRow inserts every element of src's row anchor r into m.
func (m *Matrix) copyRow(src *Matrix, r int32) error {
	for e := src.rowAnchors[r].first; e != nilIndex; e = src.elements[e].NextInRow {
		element := &src.elements[e]
		if err := m.Set(element.Row, element.Col, element.Value); err != nil {
			return err
		}
	}
	return nil
}

// mergeRows merges two row chains with the same row id by ascending column.
func (m *Matrix) mergeRows(a *Matrix, ra int32, b *Matrix, rb int32) error {
	ea, eb := a.rowAnchors[ra].first, b.rowAnchors[rb].first
	for ea != nilIndex || eb != nilIndex {
		var row, col int
		var value float64

		switch {
		case eb == nilIndex || (ea != nilIndex && a.elements[ea].Col < b.elements[eb].Col):
			row, col, value = a.elements[ea].Row, a.elements[ea].Col, a.elements[ea].Value
			ea = a.elements[ea].NextInRow
		case ea == nilIndex || a.elements[ea].Col > b.elements[eb].Col:
			row, col, value = b.elements[eb].Row, b.elements[eb].Col, b.elements[eb].Value
			eb = b.elements[eb].NextInRow
		default:
			row, col = a.elements[ea].Row, a.elements[ea].Col
			value = a.elements[ea].Value + b.elements[eb].Value
			ea = a.elements[ea].NextInRow
			eb = b.elements[eb].NextInRow
		}

		if value == 0 {
			continue
		}
		if err := m.Set(row, col, value); err != nil {
			return err
		}
	}
	return nil
}
