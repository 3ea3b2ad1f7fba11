package sparsecalc

import "slices"

// Transpose transposes m in place. Row anchors become column anchors and
// column anchors become row anchors, keeping their chains; every element
// swaps its coordinates and its two links. The transposed element arena is
// built aside and published together with the swapped indices, so m is never
// observable half transposed.
func (m *Matrix) Transpose() error {
	if m == nil {
		return ErrNilMatrix
	}

	elements := slices.Clone(m.elements)

	visited := 0
	for r := m.firstRow; r != nilIndex; r = m.rowAnchors[r].next {
		for e := m.rowAnchors[r].first; e != nilIndex; {
			// The links are swapped below, take the row successor first.
			next := elements[e].NextInRow

			element := &elements[e]
			element.Row, element.Col = element.Col, element.Row
			element.NextInRow, element.NextInCol = element.NextInCol, element.NextInRow

			visited++
			e = next
		}
	}
	if visited != m.count {
		return m.corrupt("transpose: %d elements reachable from rows, %d stored", visited, m.count)
	}

	m.elements = elements
	m.rowAnchors, m.colAnchors = m.colAnchors, m.rowAnchors
	m.freeRows, m.freeCols = m.freeCols, m.freeRows
	m.firstRow, m.firstCol = m.firstCol, m.firstRow
	m.rowCount, m.colCount = m.colCount, m.rowCount

	log.Debugf("transposed to %d x %d, %d elements", m.rowCount, m.colCount, m.count)

	return nil
}
