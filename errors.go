package sparsecalc

import "errors"

// Sentinel errors. Callers match them with errors.Is; call sites may wrap them
// with fmt.Errorf("ctx: %w", ErrX) to add coordinates or shapes.
var (
	// ErrBadShape is returned when requested extents are negative.
	ErrBadShape = errors.New("sparsecalc: invalid shape")

	// ErrOutOfBounds indicates a row or column outside the declared extents.
	ErrOutOfBounds = errors.New("sparsecalc: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes for
	// Add/Subtract (shapes differ) or Multiply (a.Cols != b.Rows).
	ErrDimensionMismatch = errors.New("sparsecalc: dimension mismatch")

	// ErrNotFound is returned by Delete when the row or the entry is absent.
	ErrNotFound = errors.New("sparsecalc: element not found")

	// ErrNotSquare signals that a square matrix was required.
	ErrNotSquare = errors.New("sparsecalc: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is zero.
	ErrSingular = errors.New("sparsecalc: singular matrix")

	// ErrResourceExhausted is returned when an allocation would exceed
	// Configuration.MaxElements.
	ErrResourceExhausted = errors.New("sparsecalc: resource exhausted")

	// ErrInvariantViolation means the row and column indices disagree. The
	// matrix is corrupt and must not be used further.
	ErrInvariantViolation = errors.New("sparsecalc: invariant violation")

	// ErrNilMatrix indicates a nil *Matrix.
	ErrNilMatrix = errors.New("sparsecalc: nil matrix")
)
