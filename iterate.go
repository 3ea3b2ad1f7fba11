package sparsecalc

import "iter"

// All yields every stored entry in row-major, column-ascending order. The
// sequence is lazy and can be ranged over any number of times. The matrix
// must not be modified while a range over All is in progress.
func (m *Matrix) All() iter.Seq[Triplet] {
	return func(yield func(Triplet) bool) {
		if m == nil {
			return
		}
		for r := m.firstRow; r != nilIndex; r = m.rowAnchors[r].next {
			for e := m.rowAnchors[r].first; e != nilIndex; e = m.elements[e].NextInRow {
				element := &m.elements[e]
				if !yield(Triplet{Row: element.Row, Col: element.Col, Value: element.Value}) {
					return
				}
			}
		}
	}
}

// Triplets returns all stored entries in the order All yields them.
func (m *Matrix) Triplets() []Triplet {
	if m == nil {
		return nil
	}

	triplets := make([]Triplet, 0, m.count)
	for t := range m.All() {
		triplets = append(triplets, t)
	}
	return triplets
}

// RowIDs returns the ids of the rows that currently hold entries, ascending.
func (m *Matrix) RowIDs() []int {
	if m == nil {
		return nil
	}
	return anchorIDs(m.rowAnchors, m.firstRow)
}

// ColIDs returns the ids of the columns that currently hold entries, ascending.
func (m *Matrix) ColIDs() []int {
	if m == nil {
		return nil
	}
	return anchorIDs(m.colAnchors, m.firstCol)
}

func anchorIDs(arena []anchor, head int32) []int {
	ids := []int{}
	for a := head; a != nilIndex; a = arena[a].next {
		ids = append(ids, arena[a].id)
	}
	return ids
}
