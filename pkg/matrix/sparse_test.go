package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseMatchesDense(t *testing.T) {
	const n = 5

	stamp := func(m CircuitMatrix) {
		for i := 1; i <= n; i++ {
			m.AddElement(i, i, 4)
			if i > 1 {
				m.AddElement(i, i-1, -1)
				m.AddElement(i-1, i, -1)
			}
			m.AddRHS(i, float64(i))
		}
	}

	dense := NewDense(n)
	stamp(dense)
	require.NoError(t, dense.Solve())

	sp, err := NewSparse(n)
	require.NoError(t, err)
	defer sp.Destroy()
	sp.SetupElements()
	stamp(sp)
	require.NoError(t, sp.Solve())

	for i := 1; i <= n; i++ {
		assert.InDelta(t, dense.Solution()[i], sp.Solution()[i], 1e-9)
	}
}

func TestSparseClearAndResolve(t *testing.T) {
	sp, err := NewSparse(2)
	require.NoError(t, err)
	defer sp.Destroy()
	sp.SetupElements()

	sp.AddElement(1, 1, 2)
	sp.AddElement(2, 2, 2)
	sp.AddRHS(1, 4)
	sp.AddRHS(2, 6)
	require.NoError(t, sp.Solve())
	assert.InDelta(t, 2.0, sp.Solution()[1], 1e-12)
	assert.InDelta(t, 3.0, sp.Solution()[2], 1e-12)

	sp.Clear()
	sp.AddElement(1, 1, 4)
	sp.AddElement(2, 2, 4)
	sp.AddRHS(1, 4)
	sp.AddRHS(2, 6)
	require.NoError(t, sp.Solve())
	assert.InDelta(t, 1.0, sp.Solution()[1], 1e-12)
	assert.InDelta(t, 1.5, sp.Solution()[2], 1e-12)
}
