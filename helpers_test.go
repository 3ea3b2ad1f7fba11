package sparsecalc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edp1096/sparsecalc"
)

// newMatrix builds a rows x cols matrix holding triplets and checks its
// structure.
func newMatrix(t testing.TB, rows, cols int, triplets ...sparsecalc.Triplet) *sparsecalc.Matrix {
	t.Helper()

	m, err := sparsecalc.Create(rows, cols, nil)
	require.NoError(t, err)
	for _, tr := range triplets {
		require.NoError(t, m.Set(tr.Row, tr.Col, tr.Value))
	}
	require.NoError(t, m.Validate())
	return m
}

// fromRows builds a matrix from dense rows, skipping zeros.
func fromRows(t testing.TB, rows [][]float64) *sparsecalc.Matrix {
	t.Helper()

	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := sparsecalc.Create(len(rows), cols, nil)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
	return m
}

func identity(t testing.TB, n int) *sparsecalc.Matrix {
	t.Helper()

	m, err := sparsecalc.Create(n, n, nil)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, 1))
	}
	return m
}

func tr(row, col int, value float64) sparsecalc.Triplet {
	return sparsecalc.Triplet{Row: row, Col: col, Value: value}
}

// requireSameEntries compares stored entries of two matrices within delta.
func requireSameEntries(t testing.TB, want, got *sparsecalc.Matrix, delta float64) {
	t.Helper()

	w, g := want.Triplets(), got.Triplets()
	require.Len(t, g, len(w))
	for i := range w {
		require.Equal(t, w[i].Row, g[i].Row)
		require.Equal(t, w[i].Col, g[i].Col)
		require.InDelta(t, w[i].Value, g[i].Value, delta)
	}
}
