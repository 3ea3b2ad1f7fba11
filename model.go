package sparsecalc

const (
	nilIndex int32 = -1 // end of chain

	DEFAULT_ELEMENTS_PER_ALLOCATION int = 16
	DEFAULT_PRINTER_WIDTH           int = 80
	DEFAULT_PRECISION               int = 2
)

// ZeroPolicy decides what Set does with a value of exactly zero.
type ZeroPolicy int

const (
	ZeroIgnore ZeroPolicy = iota // zero Set neither creates nor clears an entry
	ZeroDelete                   // zero Set removes the entry when present
)

// PrintMode selects the layout used by Print.
type PrintMode int

const (
	FullView PrintMode = iota
	SparseView
)

type Configuration struct {
	ZeroInsert ZeroPolicy // Zero value handling in Set
	PurgeZeros bool       // Scale removes entries that became exactly zero

	MaxElements           int // Allocation ceiling, 0: unlimited
	ElementsPerAllocation int // Arena growth chunk

	PrinterWidth int // Default: 80
	Precision    int // Digits after the decimal point in Print. Default: 2
}

type Matrix struct {
	Config Configuration

	rowCount int // Declared extent (rows)
	colCount int // Declared extent (columns)

	elements   []Element // Element arena
	freeElems  []int32   // Released element slots
	rowAnchors []anchor  // Row anchor arena
	freeRows   []int32   // Released row anchor slots
	colAnchors []anchor  // Column anchor arena
	freeCols   []int32   // Released column anchor slots

	firstRow int32 // Head of the row index, ascending by row id
	firstCol int32 // Head of the column index, ascending by column id

	count int // Live element count
}

// Element is one stored nonzero cell. NextInRow and NextInCol are arena
// indices, nilIndex at the end of a chain.
type Element struct {
	Value     float64
	Row       int
	Col       int
	NextInRow int32
	NextInCol int32
}

// anchor heads one chain. A row anchor owns a column-ascending chain linked
// through NextInRow, a column anchor a row-ascending chain through NextInCol.
type anchor struct {
	id    int
	first int32
	next  int32
}

// Triplet is one (row, col, value) item yielded by iteration.
type Triplet struct {
	Row   int
	Col   int
	Value float64
}
