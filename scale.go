package sparsecalc

// Scale multiplies every stored value by scalar in place. Entries are never
// added. Entries that become exactly zero (scalar 0, or underflow) stay
// stored unless Config.PurgeZeros is set, in which case they are deleted.
func (m *Matrix) Scale(scalar float64) {
	if m == nil {
		return
	}

	zeros := 0
	for r := m.firstRow; r != nilIndex; r = m.rowAnchors[r].next {
		for e := m.rowAnchors[r].first; e != nilIndex; e = m.elements[e].NextInRow {
			m.elements[e].Value *= scalar
			if m.elements[e].Value == 0 {
				zeros++
			}
		}
	}

	if zeros > 0 && m.Config.PurgeZeros {
		m.PurgeZeros()
	}
}

// PurgeZeros deletes every stored entry whose value is exactly zero and
// returns how many were removed.
func (m *Matrix) PurgeZeros() int {
	if m == nil {
		return 0
	}

	purged := 0
	for r := m.firstRow; r != nilIndex; {
		nextRow := m.rowAnchors[r].next
		for e := m.rowAnchors[r].first; e != nilIndex; {
			element := m.elements[e]
			if element.Value == 0 {
				if _, err := m.Delete(element.Row, element.Col); err != nil {
					return purged
				}
				purged++
			}
			e = element.NextInRow
		}
		r = nextRow
	}

	if purged > 0 {
		log.Debugf("purged %d zero elements", purged)
	}

	return purged
}
