package analysis

import (
	"fmt"

	"dcsim/pkg/circuit"
	"dcsim/pkg/device"
)

// OperatingPoint solves the bias point of a purely resistive DC network.
// The system is linear, so a single stamp-and-solve suffices.
type OperatingPoint struct{ BaseAnalysis }

func NewOP() *OperatingPoint {
	return &OperatingPoint{
		BaseAnalysis: *NewBaseAnalysis(),
	}
}

func (op *OperatingPoint) Setup(ckt *circuit.Circuit) error {
	op.Circuit = ckt
	return nil
}

func (op *OperatingPoint) Execute() error {
	if op.Circuit == nil {
		return fmt.Errorf("circuit not set")
	}

	op.Circuit.Status.Mode = device.OperatingPointAnalysis
	if err := op.Circuit.Solve(); err != nil {
		return fmt.Errorf("operating point solve: %w", err)
	}

	op.StoreSolution(op.Circuit.GetSolution())
	return nil
}

// ComponentResults exposes the per-component drops and currents of the
// solved bias point, in netlist order.
func (op *OperatingPoint) ComponentResults() ([]circuit.ComponentResult, error) {
	return op.Circuit.ComponentResults()
}
