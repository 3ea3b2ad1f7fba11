package sparsecalc

// UnlinkFromColumn removes the element at (row, col) from its column chain
// only, leaving the row chain untouched. Tests use it to corrupt a matrix.
func UnlinkFromColumn(m *Matrix, row, col int) bool {
	c := findAnchor(m.colAnchors, m.firstCol, col)
	if c == nilIndex {
		return false
	}
	prev, e := m.seekInCol(m.colAnchors[c].first, row)
	if e == nilIndex || m.elements[e].Row != row {
		return false
	}
	if prev == nilIndex {
		m.colAnchors[c].first = m.elements[e].NextInCol
	} else {
		m.elements[prev].NextInCol = m.elements[e].NextInCol
	}
	return true
}

// UnlinkFromRow is the row chain counterpart of UnlinkFromColumn.
func UnlinkFromRow(m *Matrix, row, col int) bool {
	r := findAnchor(m.rowAnchors, m.firstRow, row)
	if r == nilIndex {
		return false
	}
	prev, e := m.seekInRow(m.rowAnchors[r].first, col)
	if e == nilIndex || m.elements[e].Col != col {
		return false
	}
	if prev == nilIndex {
		m.rowAnchors[r].first = m.elements[e].NextInRow
	} else {
		m.elements[prev].NextInRow = m.elements[e].NextInRow
	}
	return true
}

// ArenaLen reports the element arena length, free slots included.
func ArenaLen(m *Matrix) int {
	return len(m.elements)
}

var CofactorSign = cofactorSign[int]
