package circuit

import (
	"fmt"

	"dcsim/pkg/device"
)

// ComponentResult is the per-component view of a solved circuit. The voltage
// drop is V(terminal A) - V(terminal B); current is positive when flowing
// from terminal A to terminal B inside the component.
type ComponentResult struct {
	Name        string
	Type        string
	VoltageDrop float64
	Current     float64
}

// ComponentResults extracts one result per component, in input order.
// Resistor current is drop over effective resistance; voltage source current
// is its MNA branch unknown; current source current is its fixed value.
func (c *Circuit) ComponentResults() ([]ComponentResult, error) {
	if !c.solved {
		return nil, fmt.Errorf("circuit %s: not solved", c.name)
	}

	sol := c.matrix.Solution()
	results := make([]ComponentResult, 0, len(c.devices))

	for _, dev := range c.devices {
		nodes := dev.GetNodes()
		va, vb := 0.0, 0.0
		if nodes[0] > 0 {
			va = sol[nodes[0]]
		}
		if nodes[1] > 0 {
			vb = sol[nodes[1]]
		}
		drop := va - vb

		var current float64
		switch d := dev.(type) {
		case *device.Resistor:
			current = drop / d.Resistance(c.Status.Temp)
		case *device.VoltageSource:
			current = sol[d.BranchIndex()]
		case *device.CurrentSource:
			current = d.GetValue()
		default:
			return nil, fmt.Errorf("device %s: unhandled type %s", dev.GetName(), dev.GetType())
		}

		results = append(results, ComponentResult{
			Name:        dev.GetName(),
			Type:        dev.GetType(),
			VoltageDrop: drop,
			Current:     current,
		})
	}

	return results, nil
}

// GetSolution returns the solved values keyed V(node) and I(component).
func (c *Circuit) GetSolution() map[string]float64 {
	solution := make(map[string]float64)
	if !c.solved {
		return solution
	}
	matrixSolution := c.matrix.Solution()

	// Node voltage
	for name, idx := range c.nodeMap {
		solution[fmt.Sprintf("V(%s)", name)] = matrixSolution[idx]
	}

	// Component current
	results, err := c.ComponentResults()
	if err != nil {
		return solution
	}
	for _, r := range results {
		solution[fmt.Sprintf("I(%s)", r.Name)] = r.Current
	}

	return solution
}

// GetNodeVoltage returns the solved voltage of a node by label. Ground and
// unknown labels read as 0.
func (c *Circuit) GetNodeVoltage(label string) float64 {
	if !c.solved {
		return 0
	}
	idx := c.nodeIndex(label)
	if idx <= 0 {
		return 0
	}

	solution := c.matrix.Solution()
	if idx >= len(solution) {
		return 0
	}
	return solution[idx]
}
