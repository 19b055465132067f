package device

import (
	"fmt"

	"dcsim/pkg/matrix"
)

// CurrentSource is an ideal DC source driving its value from the first
// terminal to the second inside the source. Pure RHS stamp, no auxiliary
// unknown.
type CurrentSource struct {
	BaseDevice
}

func NewDCCurrentSource(name string, nodeNames []string, value float64) *CurrentSource {
	return &CurrentSource{
		BaseDevice: BaseDevice{
			Name:      name,
			Nodes:     make([]int, len(nodeNames)),
			NodeNames: nodeNames,
			Value:     value,
		},
	}
}

func (c *CurrentSource) GetType() string { return "I" }

func (c *CurrentSource) Stamp(matrix matrix.DeviceMatrix, status *CircuitStatus) error {
	if len(c.Nodes) != 2 {
		return fmt.Errorf("current source %s: requires exactly 2 nodes", c.Name)
	}

	n1, n2 := c.Nodes[0], c.Nodes[1]

	if n1 != 0 {
		matrix.AddRHS(n1, -c.Value)
	}
	if n2 != 0 {
		matrix.AddRHS(n2, c.Value)
	}

	return nil
}
