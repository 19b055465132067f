package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// SparseMatrix backs large systems with the Sparse1.4 LU factorization
// (Markowitz pivoting). Same stamping surface as the dense backend.
type SparseMatrix struct {
	size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
	config   *sparse.Configuration
}

func NewSparse(size int) (*SparseMatrix, error) {
	config := &sparse.Configuration{
		Real:           true,
		Complex:        false,
		Expandable:     true,
		Translate:      false,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
		PrinterWidth:   140,
		Annotate:       0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	return &SparseMatrix{
		size:     size,
		matrix:   mat,
		rhs:      make([]float64, size+1), // 1-based indexing
		solution: make([]float64, size+1),
		config:   config,
	}, nil
}

// SetupElements touches every position once so the element pattern exists
// before the first factorization.
func (m *SparseMatrix) SetupElements() {
	for i := 1; i <= m.size; i++ {
		for j := 1; j <= m.size; j++ {
			m.matrix.GetElement(int64(i), int64(j))
		}
	}
}

func (m *SparseMatrix) Size() int { return m.size }

func (m *SparseMatrix) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > m.size || j > m.size {
		return
	}
	m.matrix.GetElement(int64(i), int64(j)).Real += value
}

func (m *SparseMatrix) AddRHS(i int, value float64) {
	if i <= 0 || i > m.size {
		return
	}
	m.rhs[i] += value
}

func (m *SparseMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
}

func (m *SparseMatrix) Solve() error {
	if m.size == 0 {
		return nil
	}

	err := m.matrix.Factor()
	if err != nil {
		return &SingularMatrixError{Reason: fmt.Sprintf("factorization failed: %v", err)}
	}

	m.solution, err = m.matrix.Solve(m.rhs)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}

	return nil
}

func (m *SparseMatrix) Solution() []float64 {
	return m.solution
}

func (m *SparseMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
		m.matrix = nil
	}
}
