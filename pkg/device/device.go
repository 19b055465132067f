// Package device holds the circuit component model. The variant set is
// closed (resistor, voltage source, current source); each variant knows how
// to stamp itself into the MNA system.
package device

import (
	"dcsim/pkg/matrix"
)

type Device interface {
	GetName() string
	GetType() string
	GetNodeNames() []string
	GetNodes() []int
	GetValue() float64
	SetNodes(nodes []int)
	Stamp(matrix matrix.DeviceMatrix, status *CircuitStatus) error
}

type BaseDevice struct {
	Name      string
	Nodes     []int
	Value     float64
	NodeNames []string
}

type AnalysisMode int

const (
	OperatingPointAnalysis AnalysisMode = iota
	DCSweepAnalysis
)

type CircuitStatus struct {
	Mode AnalysisMode
	Temp float64
}

func (d *BaseDevice) GetName() string {
	return d.Name
}

func (d *BaseDevice) GetNodes() []int {
	return d.Nodes
}

func (d *BaseDevice) GetNodeNames() []string {
	return d.NodeNames
}

func (d *BaseDevice) GetValue() float64 {
	return d.Value
}

func (d *BaseDevice) SetValue(value float64) {
	d.Value = value
}

func (d *BaseDevice) SetNodes(nodes []int) {
	d.Nodes = nodes
}
