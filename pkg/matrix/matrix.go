// Package matrix holds the MNA linear system of a circuit. Devices stamp
// conductances and right-hand-side entries through DeviceMatrix; the system
// is then solved by one of two interchangeable backends: a dense Gaussian
// elimination solver and a sparse LU solver (github.com/edp1096/sparse).
package matrix

import "fmt"

// DeviceMatrix is the stamping surface handed to devices.
// Row/column 0 is ground and stamps against it are dropped.
type DeviceMatrix interface {
	AddElement(i, j int, value float64) // 1-based indexing
	AddRHS(i int, value float64)
}

// CircuitMatrix is a full MNA system: stamping plus factor/solve.
type CircuitMatrix interface {
	DeviceMatrix
	Size() int
	Clear()
	Solve() error
	Solution() []float64 // 1-based, Solution()[0] unused
	Destroy()
}

// SingularMatrixError reports a system without a unique solution.
type SingularMatrixError struct {
	Column int
	Reason string
}

func (e *SingularMatrixError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("singular matrix: %s (column %d)", e.Reason, e.Column)
	}
	return fmt.Sprintf("singular matrix: %s", e.Reason)
}
