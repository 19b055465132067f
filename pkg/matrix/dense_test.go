package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDenseSolve(t *testing.T) {
	t.Run("two unknowns", func(t *testing.T) {
		m := NewDense(2)
		m.AddElement(1, 1, 2)
		m.AddElement(1, 2, 1)
		m.AddElement(2, 1, 1)
		m.AddElement(2, 2, 3)
		m.AddRHS(1, 5)
		m.AddRHS(2, 10)

		require.NoError(t, m.Solve())

		sol := m.Solution()
		assert.InDelta(t, 1.0, sol[1], 1e-12)
		assert.InDelta(t, 3.0, sol[2], 1e-12)
	})

	t.Run("zero diagonal needs row swap", func(t *testing.T) {
		m := NewDense(2)
		m.AddElement(1, 2, 1)
		m.AddElement(2, 1, 1)
		m.AddRHS(1, 3)
		m.AddRHS(2, 7)

		require.NoError(t, m.Solve())

		sol := m.Solution()
		assert.InDelta(t, 7.0, sol[1], 1e-12)
		assert.InDelta(t, 3.0, sol[2], 1e-12)
	})

	t.Run("zero size is trivial", func(t *testing.T) {
		m := NewDense(0)
		require.NoError(t, m.Solve())
	})

	t.Run("singular matrix detected", func(t *testing.T) {
		m := NewDense(2)
		m.AddElement(1, 1, 1)
		m.AddElement(1, 2, 1)
		m.AddElement(2, 1, 1)
		m.AddElement(2, 2, 1)
		m.AddRHS(1, 1)
		m.AddRHS(2, 2)

		err := m.Solve()
		require.Error(t, err)

		var singErr *SingularMatrixError
		require.ErrorAs(t, err, &singErr)
		assert.Equal(t, 2, singErr.Column)
	})

	t.Run("all zero matrix detected", func(t *testing.T) {
		m := NewDense(3)

		var singErr *SingularMatrixError
		require.ErrorAs(t, m.Solve(), &singErr)
	})

	t.Run("repeated solve is bit identical", func(t *testing.T) {
		m := NewDense(2)
		m.AddElement(1, 1, 3)
		m.AddElement(1, 2, -1)
		m.AddElement(2, 1, -1)
		m.AddElement(2, 2, 7)
		m.AddRHS(1, 1.5)
		m.AddRHS(2, 0.25)

		require.NoError(t, m.Solve())
		first := append([]float64(nil), m.Solution()...)

		require.NoError(t, m.Solve())
		assert.Equal(t, first, m.Solution())
	})

	t.Run("out of range stamps are dropped", func(t *testing.T) {
		m := NewDense(1)
		m.AddElement(0, 1, 99)
		m.AddElement(1, 0, 99)
		m.AddElement(2, 1, 99)
		m.AddRHS(0, 99)
		m.AddElement(1, 1, 4)
		m.AddRHS(1, 2)

		require.NoError(t, m.Solve())
		assert.InDelta(t, 0.5, m.Solution()[1], 1e-12)
	})
}

func TestDenseSolveMatchesGonumLU(t *testing.T) {
	const n = 8

	m := NewDense(n)
	data := make([]float64, n*n)
	rhs := make([]float64, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 1.0 / float64(1+absInt(i-j))
			if i == j {
				v += 3.0
			}
			m.AddElement(i+1, j+1, v)
			data[i*n+j] = v
		}
		rhs[i] = float64(i + 1)
		m.AddRHS(i+1, rhs[i])
	}

	require.NoError(t, m.Solve())

	var x mat.VecDense
	require.NoError(t, x.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, rhs)))

	sol := m.Solution()
	for i := 0; i < n; i++ {
		assert.InDelta(t, x.AtVec(i), sol[i+1], 1e-9)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
