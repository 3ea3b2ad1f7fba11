package sparsecalc

// Validate walks both indices and checks the structural invariants: anchors
// strictly ascending and never empty, every element on exactly one row chain
// and one column chain with matching coordinates, chains sorted, and every
// coordinate inside the declared extents. It returns nil or an error
// wrapping ErrInvariantViolation.
func (m *Matrix) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}

	inRow := make([]uint8, len(m.elements))
	inCol := make([]uint8, len(m.elements))
	limit := len(m.elements) + 1

	steps := 0
	prevID := -1
	for r := m.firstRow; r != nilIndex; r = m.rowAnchors[r].next {
		a := m.rowAnchors[r]
		if a.id <= prevID {
			return m.corrupt("row anchor %d follows %d", a.id, prevID)
		}
		if a.first == nilIndex {
			return m.corrupt("row anchor %d is empty", a.id)
		}
		prevID = a.id

		prevCol := -1
		for e := a.first; e != nilIndex; e = m.elements[e].NextInRow {
			if steps++; steps > limit {
				return m.corrupt("row chains contain a cycle")
			}
			element := &m.elements[e]
			if element.Row != a.id {
				return m.corrupt("element (%d, %d) linked from row %d", element.Row, element.Col, a.id)
			}
			if element.Col <= prevCol {
				return m.corrupt("row %d not ascending at column %d", a.id, element.Col)
			}
			if err := m.checkBounds(element.Row, element.Col); err != nil {
				return m.corrupt("element (%d, %d) outside %d x %d", element.Row, element.Col, m.rowCount, m.colCount)
			}
			prevCol = element.Col
			inRow[e]++
		}
	}

	steps = 0
	prevID = -1
	for c := m.firstCol; c != nilIndex; c = m.colAnchors[c].next {
		a := m.colAnchors[c]
		if a.id <= prevID {
			return m.corrupt("column anchor %d follows %d", a.id, prevID)
		}
		if a.first == nilIndex {
			return m.corrupt("column anchor %d is empty", a.id)
		}
		prevID = a.id

		prevRow := -1
		for e := a.first; e != nilIndex; e = m.elements[e].NextInCol {
			if steps++; steps > limit {
				return m.corrupt("column chains contain a cycle")
			}
			element := &m.elements[e]
			if element.Col != a.id {
				return m.corrupt("element (%d, %d) linked from column %d", element.Row, element.Col, a.id)
			}
			if element.Row <= prevRow {
				return m.corrupt("column %d not ascending at row %d", a.id, element.Row)
			}
			prevRow = element.Row
			inCol[e]++
		}
	}

	total := 0
	for e := range m.elements {
		if inRow[e] != inCol[e] {
			return m.corrupt("element (%d, %d) is on %d row chains and %d column chains",
				m.elements[e].Row, m.elements[e].Col, inRow[e], inCol[e])
		}
		total += int(inRow[e])
	}
	if total != m.count {
		return m.corrupt("%d elements linked, %d counted", total, m.count)
	}

	return nil
}
