package sparsecalc

import (
	"fmt"
	"math"
	"slices"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("sparsecalc")

// Create returns an empty rows x cols matrix. Zero extents are allowed; they
// appear as the minors of 1 x 1 matrices.
func Create(rows, cols int, config *Configuration) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %d x %d", ErrBadShape, rows, cols)
	}

	defaultConfig := Configuration{
		ZeroInsert:            ZeroIgnore,
		PurgeZeros:            false,
		MaxElements:           0,
		ElementsPerAllocation: DEFAULT_ELEMENTS_PER_ALLOCATION,
		PrinterWidth:          DEFAULT_PRINTER_WIDTH,
		Precision:             DEFAULT_PRECISION,
	}

	if config == nil {
		config = &defaultConfig
	}

	m := &Matrix{
		Config:   *config,
		rowCount: rows,
		colCount: cols,
		firstRow: nilIndex,
		firstCol: nilIndex,
	}

	if m.Config.ElementsPerAllocation <= 0 {
		m.Config.ElementsPerAllocation = DEFAULT_ELEMENTS_PER_ALLOCATION
	}
	if m.Config.PrinterWidth <= 0 {
		m.Config.PrinterWidth = DEFAULT_PRINTER_WIDTH
	}
	if m.Config.Precision < 0 {
		m.Config.Precision = DEFAULT_PRECISION
	}

	return m, nil
}

// createLike returns an empty matrix sharing m's configuration.
func (m *Matrix) createLike(rows, cols int) *Matrix {
	// Extents are never negative here, Create cannot fail.
	result, _ := Create(rows, cols, &m.Config)
	return result
}

// Clear releases every element and anchor but keeps the declared extents.
func (m *Matrix) Clear() {
	if m == nil {
		return
	}

	m.elements = m.elements[:0]
	m.freeElems = m.freeElems[:0]
	m.rowAnchors = m.rowAnchors[:0]
	m.freeRows = m.freeRows[:0]
	m.colAnchors = m.colAnchors[:0]
	m.freeCols = m.freeCols[:0]

	m.firstRow = nilIndex
	m.firstCol = nilIndex
	m.count = 0
}

// Destroy releases everything. The matrix is left as an empty 0 x 0 matrix.
func (m *Matrix) Destroy() {
	if m == nil {
		return
	}

	m.elements = nil
	m.freeElems = nil
	m.rowAnchors = nil
	m.freeRows = nil
	m.colAnchors = nil
	m.freeCols = nil

	m.firstRow = nilIndex
	m.firstCol = nilIndex
	m.count = 0

	m.rowCount = 0
	m.colCount = 0
}

// Resize changes the declared extents. Elements whose coordinates fall
// outside the new extents are deleted together with their emptied anchors.
func (m *Matrix) Resize(rows, cols int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%w: %d x %d", ErrBadShape, rows, cols)
	}

	removed := 0
	for r := m.firstRow; r != nilIndex; {
		// Deleting may release this anchor, read its successor first.
		nextRow := m.rowAnchors[r].next
		for e := m.rowAnchors[r].first; e != nilIndex; {
			element := m.elements[e]
			if element.Row >= rows || element.Col >= cols {
				if _, err := m.Delete(element.Row, element.Col); err != nil {
					return err
				}
				removed++
			}
			e = element.NextInRow
		}
		r = nextRow
	}

	log.Debugf("resized %d x %d -> %d x %d, %d elements removed", m.rowCount, m.colCount, rows, cols, removed)

	m.rowCount = rows
	m.colCount = cols

	return nil
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}

	return &Matrix{
		Config:     m.Config,
		rowCount:   m.rowCount,
		colCount:   m.colCount,
		elements:   slices.Clone(m.elements),
		freeElems:  slices.Clone(m.freeElems),
		rowAnchors: slices.Clone(m.rowAnchors),
		freeRows:   slices.Clone(m.freeRows),
		colAnchors: slices.Clone(m.colAnchors),
		freeCols:   slices.Clone(m.freeCols),
		firstRow:   m.firstRow,
		firstCol:   m.firstCol,
		count:      m.count,
	}
}

func (m *Matrix) checkBounds(row, col int) error {
	if row < 0 || row >= m.rowCount || col < 0 || col >= m.colCount {
		return fmt.Errorf("%w: (%d, %d) in %d x %d", ErrOutOfBounds, row, col, m.rowCount, m.colCount)
	}
	return nil
}

// newElement takes a slot from the free list or grows the arena.
func (m *Matrix) newElement(row, col int, value float64) (int32, error) {
	if m.Config.MaxElements > 0 && m.count >= m.Config.MaxElements {
		return nilIndex, fmt.Errorf("%w: limit of %d elements reached", ErrResourceExhausted, m.Config.MaxElements)
	}

	element := Element{
		Value:     value,
		Row:       row,
		Col:       col,
		NextInRow: nilIndex,
		NextInCol: nilIndex,
	}

	if n := len(m.freeElems); n > 0 {
		idx := m.freeElems[n-1]
		m.freeElems = m.freeElems[:n-1]
		m.elements[idx] = element
		m.count++
		return idx, nil
	}

	if len(m.elements) >= math.MaxInt32 {
		return nilIndex, fmt.Errorf("%w: element arena full", ErrResourceExhausted)
	}
	if len(m.elements) == cap(m.elements) {
		m.elements = slices.Grow(m.elements, m.Config.ElementsPerAllocation)
	}

	m.elements = append(m.elements, element)
	m.count++

	return int32(len(m.elements) - 1), nil
}

func (m *Matrix) releaseElement(idx int32) {
	m.elements[idx] = Element{NextInRow: nilIndex, NextInCol: nilIndex}
	m.freeElems = append(m.freeElems, idx)
	m.count--
}

// allocAnchor places a new anchor for id into arena, reusing a free slot
// when one exists.
func allocAnchor(arena *[]anchor, free *[]int32, id int) int32 {
	a := anchor{id: id, first: nilIndex, next: nilIndex}

	if n := len(*free); n > 0 {
		idx := (*free)[n-1]
		*free = (*free)[:n-1]
		(*arena)[idx] = a
		return idx
	}

	*arena = append(*arena, a)
	return int32(len(*arena) - 1)
}

func releaseAnchor(arena []anchor, free *[]int32, idx int32) {
	arena[idx] = anchor{first: nilIndex, next: nilIndex}
	*free = append(*free, idx)
}

// seekAnchor returns the first anchor with id >= target and its predecessor.
func seekAnchor(arena []anchor, head int32, target int) (prev, cur int32) {
	prev, cur = nilIndex, head
	for cur != nilIndex && arena[cur].id < target {
		prev = cur
		cur = arena[cur].next
	}
	return prev, cur
}

// findAnchor returns the anchor with exactly id, or nilIndex.
func findAnchor(arena []anchor, head int32, id int) int32 {
	_, cur := seekAnchor(arena, head, id)
	if cur != nilIndex && arena[cur].id == id {
		return cur
	}
	return nilIndex
}

// seekInRow returns the first element of a row chain with Col >= col and
// its predecessor.
func (m *Matrix) seekInRow(first int32, col int) (prev, cur int32) {
	prev, cur = nilIndex, first
	for cur != nilIndex && m.elements[cur].Col < col {
		prev = cur
		cur = m.elements[cur].NextInRow
	}
	return prev, cur
}

// seekInCol returns the first element of a column chain with Row >= row and
// its predecessor.
func (m *Matrix) seekInCol(first int32, row int) (prev, cur int32) {
	prev, cur = nilIndex, first
	for cur != nilIndex && m.elements[cur].Row < row {
		prev = cur
		cur = m.elements[cur].NextInCol
	}
	return prev, cur
}
