package sparsecalc_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edp1096/sparsecalc"
)

func TestCreate_BadShape(t *testing.T) {
	_, err := sparsecalc.Create(-1, 3, nil)
	require.ErrorIs(t, err, sparsecalc.ErrBadShape)

	m, err := sparsecalc.Create(0, 0, nil)
	require.NoError(t, err)
	require.True(t, m.IsEmpty())
	require.ErrorIs(t, m.Set(0, 0, 1), sparsecalc.ErrOutOfBounds)
}

func TestCreate_DefaultConfig(t *testing.T) {
	m, err := sparsecalc.Create(2, 2, nil)
	require.NoError(t, err)
	require.Equal(t, sparsecalc.ZeroIgnore, m.Config.ZeroInsert)
	require.False(t, m.Config.PurgeZeros)
	require.Equal(t, sparsecalc.DEFAULT_PRINTER_WIDTH, m.Config.PrinterWidth)
	require.Equal(t, sparsecalc.DEFAULT_PRECISION, m.Config.Precision)
	require.Equal(t, sparsecalc.DEFAULT_ELEMENTS_PER_ALLOCATION, m.Config.ElementsPerAllocation)
}

func TestSet_Scenario(t *testing.T) {
	m := newMatrix(t, 3, 3, tr(0, 0, 5.0), tr(0, 2, 3.5), tr(2, 1, -7.2))

	require.True(t, m.Search(0, 2))
	require.False(t, m.Search(1, 1))
	require.Equal(t, []sparsecalc.Triplet{tr(0, 0, 5.0), tr(0, 2, 3.5), tr(2, 1, -7.2)}, m.Triplets())
	require.Equal(t, []int{0, 2}, m.RowIDs())
	require.Equal(t, []int{0, 1, 2}, m.ColIDs())
	require.Equal(t, 3, m.ElementCount())
}

func TestSet_OutOfOrderInsertKeepsChainsSorted(t *testing.T) {
	m := newMatrix(t, 4, 4, tr(3, 3, 1), tr(0, 3, 2), tr(3, 0, 3), tr(1, 2, 4), tr(0, 0, 5), tr(3, 1, 6))

	require.Equal(t, []sparsecalc.Triplet{
		tr(0, 0, 5), tr(0, 3, 2), tr(1, 2, 4), tr(3, 0, 3), tr(3, 1, 6), tr(3, 3, 1),
	}, m.Triplets())
	require.Equal(t, []int{0, 1, 3}, m.RowIDs())
	require.Equal(t, []int{0, 1, 2, 3}, m.ColIDs())
}

func TestSet_UpdateInPlace(t *testing.T) {
	m := newMatrix(t, 2, 2, tr(1, 1, 2))
	require.NoError(t, m.Set(1, 1, -4))
	require.NoError(t, m.Validate())

	v, ok := m.Get(1, 1)
	require.True(t, ok)
	require.Equal(t, -4.0, v)
	require.Equal(t, 1, m.ElementCount())
}

func TestSet_OutOfBounds(t *testing.T) {
	m := newMatrix(t, 2, 3)
	require.ErrorIs(t, m.Set(2, 0, 1), sparsecalc.ErrOutOfBounds)
	require.ErrorIs(t, m.Set(0, 3, 1), sparsecalc.ErrOutOfBounds)
	require.ErrorIs(t, m.Set(-1, 0, 1), sparsecalc.ErrOutOfBounds)
	require.True(t, m.IsEmpty())
}

func TestSet_ZeroIgnore(t *testing.T) {
	m := newMatrix(t, 2, 2, tr(0, 0, 3))

	require.NoError(t, m.Set(1, 1, 0))
	require.False(t, m.Search(1, 1))

	require.NoError(t, m.Set(0, 0, 0))
	v, ok := m.Get(0, 0)
	require.True(t, ok)
	require.Equal(t, 3.0, v)
	require.NoError(t, m.Validate())
}

func TestSet_ZeroDelete(t *testing.T) {
	m, err := sparsecalc.Create(2, 2, &sparsecalc.Configuration{ZeroInsert: sparsecalc.ZeroDelete})
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 3))

	require.NoError(t, m.Set(1, 1, 0))
	require.False(t, m.Search(1, 1))

	require.NoError(t, m.Set(0, 0, 0))
	require.False(t, m.Search(0, 0))
	require.Empty(t, m.RowIDs())
	require.Empty(t, m.ColIDs())
	require.NoError(t, m.Validate())
}

func TestDelete(t *testing.T) {
	m := newMatrix(t, 3, 3, tr(0, 0, 5.0), tr(0, 2, 3.5), tr(2, 1, -7.2))

	v, err := m.Delete(0, 2)
	require.NoError(t, err)
	require.Equal(t, 3.5, v)
	require.False(t, m.Search(0, 2))
	require.Equal(t, []int{0, 2}, m.RowIDs())
	require.Equal(t, []int{0, 1}, m.ColIDs())
	require.NoError(t, m.Validate())

	v, err = m.Delete(2, 1)
	require.NoError(t, err)
	require.Equal(t, -7.2, v)
	require.Equal(t, []int{0}, m.RowIDs())
	require.Equal(t, []int{0}, m.ColIDs())
	require.NoError(t, m.Validate())
}

func TestDelete_NotFound(t *testing.T) {
	m := newMatrix(t, 3, 3, tr(1, 1, 1))

	_, err := m.Delete(0, 0)
	require.ErrorIs(t, err, sparsecalc.ErrNotFound)
	_, err = m.Delete(1, 2)
	require.ErrorIs(t, err, sparsecalc.ErrNotFound)
	_, err = m.Delete(7, 7)
	require.ErrorIs(t, err, sparsecalc.ErrNotFound)
	require.Equal(t, 1, m.ElementCount())
}

func TestInsertThenDelete_RemovesAnchors(t *testing.T) {
	m := newMatrix(t, 5, 5)
	require.NoError(t, m.Set(3, 4, 9))
	require.True(t, m.Search(3, 4))

	_, err := m.Delete(3, 4)
	require.NoError(t, err)
	require.False(t, m.Search(3, 4))
	require.True(t, m.IsEmpty())
	require.Empty(t, m.RowIDs())
	require.Empty(t, m.ColIDs())
	require.NoError(t, m.Validate())
}

func TestDelete_ReusesFreedSlots(t *testing.T) {
	m := newMatrix(t, 4, 4, tr(0, 0, 1), tr(1, 1, 2), tr(2, 2, 3))
	size := sparsecalc.ArenaLen(m)

	_, err := m.Delete(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(3, 0, 4))

	require.Equal(t, size, sparsecalc.ArenaLen(m))
	require.Equal(t, []sparsecalc.Triplet{tr(0, 0, 1), tr(2, 2, 3), tr(3, 0, 4)}, m.Triplets())
	require.NoError(t, m.Validate())
}

func TestSet_ResourceExhausted(t *testing.T) {
	m, err := sparsecalc.Create(3, 3, &sparsecalc.Configuration{MaxElements: 2})
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 1, 1))

	require.ErrorIs(t, m.Set(2, 2, 1), sparsecalc.ErrResourceExhausted)
	require.False(t, m.Search(2, 2))
	require.NoError(t, m.Validate())

	// Updates need no allocation.
	require.NoError(t, m.Set(1, 1, 5))

	_, err = m.Delete(0, 0)
	require.NoError(t, err)
	require.NoError(t, m.Set(2, 2, 1))
	require.NoError(t, m.Validate())
}

func TestSet_InvariantViolation(t *testing.T) {
	m := newMatrix(t, 3, 3, tr(0, 0, 1), tr(0, 2, 2), tr(1, 2, 3))
	require.True(t, sparsecalc.UnlinkFromRow(m, 0, 2))

	err := m.Set(0, 2, 7)
	require.ErrorIs(t, err, sparsecalc.ErrInvariantViolation)
	require.ErrorIs(t, m.Validate(), sparsecalc.ErrInvariantViolation)
}

func TestDelete_InvariantViolation(t *testing.T) {
	m := newMatrix(t, 3, 3, tr(0, 0, 1), tr(0, 2, 2), tr(1, 2, 3))
	require.True(t, sparsecalc.UnlinkFromColumn(m, 0, 2))

	_, err := m.Delete(0, 2)
	require.ErrorIs(t, err, sparsecalc.ErrInvariantViolation)
	require.ErrorIs(t, m.Validate(), sparsecalc.ErrInvariantViolation)
}

func TestValidate_EmptyColumnAnchor(t *testing.T) {
	m := newMatrix(t, 2, 2, tr(1, 1, 1))
	require.True(t, sparsecalc.UnlinkFromColumn(m, 1, 1))
	require.ErrorIs(t, m.Validate(), sparsecalc.ErrInvariantViolation)
}

func TestNilMatrix(t *testing.T) {
	var m *sparsecalc.Matrix

	require.ErrorIs(t, m.Set(0, 0, 1), sparsecalc.ErrNilMatrix)
	_, err := m.Delete(0, 0)
	require.ErrorIs(t, err, sparsecalc.ErrNilMatrix)
	require.False(t, m.Search(0, 0))
	require.ErrorIs(t, m.Transpose(), sparsecalc.ErrNilMatrix)
	_, err = m.Determinant()
	require.ErrorIs(t, err, sparsecalc.ErrNilMatrix)
	_, err = sparsecalc.Add(m, m)
	require.ErrorIs(t, err, sparsecalc.ErrNilMatrix)
	require.Nil(t, m.Triplets())
	require.True(t, m.IsEmpty())
}

func TestClearAndDestroy(t *testing.T) {
	m := newMatrix(t, 3, 4, tr(0, 0, 1), tr(2, 3, 2))

	m.Clear()
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.ElementCount())
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.NoError(t, m.Validate())
	require.NoError(t, m.Set(2, 3, 5))
	require.NoError(t, m.Validate())

	m.Destroy()
	r, c := m.Dims()
	require.Equal(t, 0, r)
	require.Equal(t, 0, c)
	require.True(t, m.IsEmpty())
}

func TestResize(t *testing.T) {
	m := newMatrix(t, 4, 4, tr(0, 0, 1), tr(0, 3, 2), tr(2, 1, 3), tr(3, 3, 4), tr(3, 0, 5))

	require.NoError(t, m.Resize(3, 3))
	require.Equal(t, []sparsecalc.Triplet{tr(0, 0, 1), tr(2, 1, 3)}, m.Triplets())
	require.Equal(t, []int{0, 2}, m.RowIDs())
	require.Equal(t, []int{0, 1}, m.ColIDs())
	require.NoError(t, m.Validate())

	require.NoError(t, m.Resize(5, 6))
	require.Equal(t, 5, m.Rows())
	require.Equal(t, 6, m.Cols())
	require.NoError(t, m.Set(4, 5, 1))
	require.NoError(t, m.Validate())

	require.ErrorIs(t, m.Resize(-1, 2), sparsecalc.ErrBadShape)
}

func TestClone_IsIndependent(t *testing.T) {
	m := newMatrix(t, 2, 2, tr(0, 1, 1), tr(1, 0, 2))
	c := m.Clone()

	require.NoError(t, c.Set(0, 0, 9))
	_, err := c.Delete(1, 0)
	require.NoError(t, err)

	require.Equal(t, []sparsecalc.Triplet{tr(0, 1, 1), tr(1, 0, 2)}, m.Triplets())
	require.Equal(t, []sparsecalc.Triplet{tr(0, 0, 9), tr(0, 1, 1)}, c.Triplets())
	require.NoError(t, m.Validate())
	require.NoError(t, c.Validate())
}

func TestAll_RestartableAndStoppable(t *testing.T) {
	m := newMatrix(t, 3, 3, tr(0, 0, 1), tr(1, 1, 2), tr(2, 2, 3))

	first := make([]sparsecalc.Triplet, 0)
	for item := range m.All() {
		first = append(first, item)
	}
	second := make([]sparsecalc.Triplet, 0)
	for item := range m.All() {
		second = append(second, item)
	}
	require.Equal(t, first, second)

	n := 0
	for range m.All() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

// TestRandomOperations drives Set/Delete against a map model and checks
// the structure after every step.
func TestRandomOperations(t *testing.T) {
	type key struct{ row, col int }

	rng := rand.New(rand.NewSource(7))
	const rows, cols = 9, 7

	m := newMatrix(t, rows, cols)
	model := make(map[key]float64)

	for step := 0; step < 2000; step++ {
		k := key{rng.Intn(rows), rng.Intn(cols)}
		if rng.Intn(3) == 0 {
			v, err := m.Delete(k.row, k.col)
			if want, ok := model[k]; ok {
				require.NoError(t, err)
				require.Equal(t, want, v)
				delete(model, k)
			} else {
				require.ErrorIs(t, err, sparsecalc.ErrNotFound)
			}
		} else {
			v := float64(rng.Intn(19) - 9)
			require.NoError(t, m.Set(k.row, k.col, v))
			if v != 0 {
				model[k] = v
			}
		}
		require.NoError(t, m.Validate(), "step %d", step)
	}

	want := make([]sparsecalc.Triplet, 0, len(model))
	for k, v := range model {
		want = append(want, tr(k.row, k.col, v))
	}
	sort.Slice(want, func(i, j int) bool {
		if want[i].Row != want[j].Row {
			return want[i].Row < want[j].Row
		}
		return want[i].Col < want[j].Col
	})

	require.Equal(t, want, m.Triplets())
	require.Equal(t, len(model), m.ElementCount())
}
