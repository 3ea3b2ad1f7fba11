package sparsecalc

import (
	"errors"
	"fmt"
)

// Set stores value at (row, col), overwriting an existing entry in place.
// A value of exactly zero is handled according to Config.ZeroInsert and
// never creates an entry.
func (m *Matrix) Set(row, col int, value float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := m.checkBounds(row, col); err != nil {
		return err
	}

	if value == 0 {
		if m.Config.ZeroInsert == ZeroDelete {
			if _, err := m.Delete(row, col); err != nil && !errors.Is(err, ErrNotFound) {
				return err
			}
		}
		return nil
	}

	// Row scan. An existing entry is shared with its column chain, so the
	// update needs no column work.
	prevR, r := seekAnchor(m.rowAnchors, m.firstRow, row)
	rowExists := r != nilIndex && m.rowAnchors[r].id == row

	prevE, e := nilIndex, nilIndex
	if rowExists {
		prevE, e = m.seekInRow(m.rowAnchors[r].first, col)
		if e != nilIndex && m.elements[e].Col == col {
			m.elements[e].Value = value
			return nil
		}
	}

	// Column scan, before anything is linked.
	prevC, c := seekAnchor(m.colAnchors, m.firstCol, col)
	colExists := c != nilIndex && m.colAnchors[c].id == col

	prevCE, ce := nilIndex, nilIndex
	if colExists {
		prevCE, ce = m.seekInCol(m.colAnchors[c].first, row)
		if ce != nilIndex && m.elements[ce].Row == row {
			return m.corrupt("set (%d, %d): present in column %d but missing from row %d", row, col, col, row)
		}
	}

	idx, err := m.newElement(row, col, value)
	if err != nil {
		return err
	}

	if rowExists {
		m.elements[idx].NextInRow = e
		if prevE == nilIndex {
			m.rowAnchors[r].first = idx
		} else {
			m.elements[prevE].NextInRow = idx
		}
	} else {
		nr := allocAnchor(&m.rowAnchors, &m.freeRows, row)
		m.rowAnchors[nr].first = idx
		m.rowAnchors[nr].next = r
		if prevR == nilIndex {
			m.firstRow = nr
		} else {
			m.rowAnchors[prevR].next = nr
		}
	}

	if colExists {
		m.elements[idx].NextInCol = ce
		if prevCE == nilIndex {
			m.colAnchors[c].first = idx
		} else {
			m.elements[prevCE].NextInCol = idx
		}
	} else {
		nc := allocAnchor(&m.colAnchors, &m.freeCols, col)
		m.colAnchors[nc].first = idx
		m.colAnchors[nc].next = c
		if prevC == nilIndex {
			m.firstCol = nc
		} else {
			m.colAnchors[prevC].next = nc
		}
	}

	return nil
}

// Delete removes the entry at (row, col) and returns its value. Anchors
// whose chains become empty are released.
func (m *Matrix) Delete(row, col int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}

	prevR, r := seekAnchor(m.rowAnchors, m.firstRow, row)
	if r == nilIndex || m.rowAnchors[r].id != row {
		return 0, fmt.Errorf("%w: row %d", ErrNotFound, row)
	}

	prevE, e := m.seekInRow(m.rowAnchors[r].first, col)
	if e == nilIndex || m.elements[e].Col != col {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrNotFound, row, col)
	}

	// Locate the same element in its column before unlinking anything.
	prevC, c := seekAnchor(m.colAnchors, m.firstCol, col)
	if c == nilIndex || m.colAnchors[c].id != col {
		return 0, m.corrupt("delete (%d, %d): column %d has no anchor", row, col, col)
	}
	prevCE, ce := m.seekInCol(m.colAnchors[c].first, row)
	if ce != e {
		return 0, m.corrupt("delete (%d, %d): row and column chains disagree", row, col)
	}

	element := m.elements[e]

	if prevE == nilIndex {
		m.rowAnchors[r].first = element.NextInRow
	} else {
		m.elements[prevE].NextInRow = element.NextInRow
	}

	if prevCE == nilIndex {
		m.colAnchors[c].first = element.NextInCol
	} else {
		m.elements[prevCE].NextInCol = element.NextInCol
	}

	m.releaseElement(e)

	if m.rowAnchors[r].first == nilIndex {
		if prevR == nilIndex {
			m.firstRow = m.rowAnchors[r].next
		} else {
			m.rowAnchors[prevR].next = m.rowAnchors[r].next
		}
		releaseAnchor(m.rowAnchors, &m.freeRows, r)
	}

	if m.colAnchors[c].first == nilIndex {
		if prevC == nilIndex {
			m.firstCol = m.colAnchors[c].next
		} else {
			m.colAnchors[prevC].next = m.colAnchors[c].next
		}
		releaseAnchor(m.colAnchors, &m.freeCols, c)
	}

	return element.Value, nil
}

// Search reports whether an entry is stored at (row, col).
func (m *Matrix) Search(row, col int) bool {
	_, ok := m.Get(row, col)
	return ok
}

// Get returns the stored value at (row, col) and whether it exists.
func (m *Matrix) Get(row, col int) (float64, bool) {
	if m == nil {
		return 0, false
	}

	r := findAnchor(m.rowAnchors, m.firstRow, row)
	if r == nilIndex {
		return 0, false
	}

	_, e := m.seekInRow(m.rowAnchors[r].first, col)
	if e == nilIndex || m.elements[e].Col != col {
		return 0, false
	}

	return m.elements[e].Value, true
}

// corrupt logs and returns an invariant violation.
func (m *Matrix) corrupt(format string, args ...any) error {
	err := fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
	log.Errorf("%v", err)
	return err
}
