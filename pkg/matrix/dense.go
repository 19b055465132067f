package matrix

import (
	"math"

	"dcsim/internal/consts"
)

// DenseMatrix is the default backend: a dense system solved by Gaussian
// elimination with partial pivoting. Circuits of tens to low hundreds of
// nodes have no sparsity worth exploiting, so a dense solve is both the
// simplest and the fastest option at that scale.
type DenseMatrix struct {
	size     int
	values   [][]float64 // 1-based
	rhs      []float64
	solution []float64
}

func NewDense(size int) *DenseMatrix {
	values := make([][]float64, size+1)
	for i := range values {
		values[i] = make([]float64, size+1)
	}

	return &DenseMatrix{
		size:     size,
		values:   values,
		rhs:      make([]float64, size+1),
		solution: make([]float64, size+1),
	}
}

func (m *DenseMatrix) Size() int { return m.size }

func (m *DenseMatrix) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > m.size || j > m.size {
		return
	}
	m.values[i][j] += value
}

func (m *DenseMatrix) AddRHS(i int, value float64) {
	if i <= 0 || i > m.size {
		return
	}
	m.rhs[i] += value
}

func (m *DenseMatrix) Clear() {
	for i := 1; i <= m.size; i++ {
		for j := 1; j <= m.size; j++ {
			m.values[i][j] = 0
		}
		m.rhs[i] = 0
	}
}

// Solve runs Gaussian elimination with partial pivoting over a scratch copy
// of the system, so the stamped matrix survives and a re-solve of the same
// circuit reproduces the solution bit for bit.
func (m *DenseMatrix) Solve() error {
	n := m.size
	if n == 0 {
		return nil
	}

	a := make([][]float64, n+1)
	for i := 1; i <= n; i++ {
		a[i] = make([]float64, n+1)
		copy(a[i], m.values[i])
	}
	b := make([]float64, n+1)
	copy(b, m.rhs)

	// Max-norm of the stamped matrix, reference for the pivot threshold.
	norm := 0.0
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if abs := math.Abs(a[i][j]); abs > norm {
				norm = abs
			}
		}
	}
	threshold := consts.PivotEpsilon * norm

	for col := 1; col <= n; col++ {
		pivotRow := col
		pivotMag := math.Abs(a[col][col])
		for row := col + 1; row <= n; row++ {
			if mag := math.Abs(a[row][col]); mag > pivotMag {
				pivotRow = row
				pivotMag = mag
			}
		}

		if pivotMag <= threshold {
			return &SingularMatrixError{Column: col, Reason: "no pivot above threshold"}
		}

		if pivotRow != col {
			a[col], a[pivotRow] = a[pivotRow], a[col]
			b[col], b[pivotRow] = b[pivotRow], b[col]
		}

		pivot := a[col][col]
		for row := col + 1; row <= n; row++ {
			factor := a[row][col] / pivot
			if factor == 0 {
				continue
			}
			a[row][col] = 0
			for j := col + 1; j <= n; j++ {
				a[row][j] -= factor * a[col][j]
			}
			b[row] -= factor * b[col]
		}
	}

	for row := n; row >= 1; row-- {
		sum := b[row]
		for j := row + 1; j <= n; j++ {
			sum -= a[row][j] * m.solution[j]
		}
		m.solution[row] = sum / a[row][row]
	}

	return nil
}

func (m *DenseMatrix) Solution() []float64 {
	return m.solution
}

func (m *DenseMatrix) Destroy() {
	m.values = nil
	m.rhs = nil
	m.solution = nil
	m.size = 0
}
