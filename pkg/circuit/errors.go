package circuit

import "fmt"

// MalformedCircuitError reports an input shape problem: a component with
// fewer than two distinct terminals, or a circuit without a ground reference.
type MalformedCircuitError struct {
	Component string
	Reason    string
}

func (e *MalformedCircuitError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("malformed circuit: component %s: %s", e.Component, e.Reason)
	}
	return fmt.Sprintf("malformed circuit: %s", e.Reason)
}

// DisconnectedCircuitError reports a node with no path to ground. Such a
// node would yield an all-zero matrix row, so it is rejected before assembly.
type DisconnectedCircuitError struct {
	Node string
}

func (e *DisconnectedCircuitError) Error() string {
	return fmt.Sprintf("disconnected circuit: node %s is unreachable from ground", e.Node)
}

// InvalidComponentError reports a component value outside its legal range.
type InvalidComponentError struct {
	Component string
	Value     float64
	Reason    string
}

func (e *InvalidComponentError) Error() string {
	return fmt.Sprintf("invalid component %s: %s (value %g)", e.Component, e.Reason, e.Value)
}

// ResourceLimitError reports an unknown count above the configured ceiling,
// raised before the matrix is allocated.
type ResourceLimitError struct {
	Unknowns int
	Limit    int
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("circuit too large: %d unknowns exceeds limit of %d", e.Unknowns, e.Limit)
}
