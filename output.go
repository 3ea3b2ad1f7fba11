package sparsecalc

import (
	"fmt"
	"io"
	"math"
)

// Print writes m under name. FullView prints every declared cell, split into
// column blocks that fit Config.PrinterWidth; SparseView lists the stored
// entries one per line.
func (m *Matrix) Print(w io.Writer, name string, mode PrintMode) {
	if m == nil {
		return
	}

	precision := m.Config.Precision
	fmt.Fprintf(w, "Matrix %s [%d x %d]\n", name, m.rowCount, m.colCount)

	if mode == SparseView {
		for t := range m.All() {
			fmt.Fprintf(w, "(%d, %d) -> %.*f\n", t.Row, t.Col, precision, t.Value)
		}
		return
	}

	fieldWidth := precision + 4
	columns := max(m.Config.PrinterWidth/(fieldWidth+1), 1)

	for startCol := 0; startCol < m.colCount; startCol += columns {
		stopCol := min(startCol+columns, m.colCount)
		if columns < m.colCount {
			fmt.Fprintf(w, "Columns %d to %d.\n", startCol, stopCol-1)
		}

		r := m.firstRow
		for i := 0; i < m.rowCount; i++ {
			for r != nilIndex && m.rowAnchors[r].id < i {
				r = m.rowAnchors[r].next
			}

			e := nilIndex
			if r != nilIndex && m.rowAnchors[r].id == i {
				_, e = m.seekInRow(m.rowAnchors[r].first, startCol)
			}

			for j := startCol; j < stopCol; j++ {
				value := 0.0
				if e != nilIndex && m.elements[e].Col == j {
					value = m.elements[e].Value
					e = m.elements[e].NextInRow
				}
				fmt.Fprintf(w, "%*.*f ", fieldWidth, precision, value)
			}
			fmt.Fprintln(w)
		}

		if stopCol < m.colCount {
			fmt.Fprintln(w)
		}
	}
}

// PrintSummary writes size, element count, magnitude range and density.
func (m *Matrix) PrintSummary(w io.Writer) {
	if m == nil {
		return
	}

	stats := m.calculateStatistics()

	fmt.Fprintf(w, "MATRIX SUMMARY\n\n")
	fmt.Fprintf(w, "Size of matrix = %d x %d.\n", m.rowCount, m.colCount)
	fmt.Fprintf(w, "Stored elements = %d.\n", stats.elementCount)
	fmt.Fprintf(w, "Largest element in matrix = %-1.4g.\n", stats.largestElement)
	fmt.Fprintf(w, "Smallest element in matrix = %-1.4g.\n", stats.smallestElement)
	fmt.Fprintf(w, "Density = %.2f%%.\n", m.Density()*100)
}

type matrixStats struct {
	largestElement  float64
	smallestElement float64
	elementCount    int
}

func (m *Matrix) calculateStatistics() matrixStats {
	stats := matrixStats{
		smallestElement: math.MaxFloat64,
	}

	for t := range m.All() {
		stats.elementCount++

		magnitude := abs(t.Value)
		if magnitude > stats.largestElement {
			stats.largestElement = magnitude
		}
		if magnitude < stats.smallestElement && magnitude != 0 {
			stats.smallestElement = magnitude
		}
	}

	if stats.smallestElement == math.MaxFloat64 {
		stats.smallestElement = 0
	}

	return stats
}
