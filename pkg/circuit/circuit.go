// Package circuit builds a solvable MNA system out of component descriptors:
// terminal labels become dense matrix indices with ground fixed at 0, voltage
// sources get auxiliary branch rows, and the whole network is validated
// (shape, values, connectivity, size) before any matrix work happens.
package circuit

import (
	"fmt"
	"math"

	"dcsim/internal/consts"
	"dcsim/pkg/device"
	"dcsim/pkg/matrix"
	"dcsim/pkg/netlist"
)

type SolverKind int

const (
	SolverAuto SolverKind = iota
	SolverDense
	SolverSparse
)

type Circuit struct {
	name        string
	nodeMap     map[string]int
	nodeNames   []string // matrix index -> label, [0] is ground
	branchMap   map[string]int
	devices     []device.Device
	numNodes    int
	matrix      matrix.CircuitMatrix
	solver      SolverKind
	maxUnknowns int
	groundNames map[string]bool
	solved      bool
	Status      *device.CircuitStatus
}

func New(name string) *Circuit {
	return NewWithSolver(name, SolverAuto)
}

func NewWithSolver(name string, solver SolverKind) *Circuit {
	return &Circuit{
		name:        name,
		nodeMap:     make(map[string]int),
		branchMap:   make(map[string]int),
		devices:     make([]device.Device, 0),
		solver:      solver,
		maxUnknowns: consts.MaxUnknowns,
		groundNames: map[string]bool{"0": true, "gnd": true},
		Status: &device.CircuitStatus{
			Mode: device.OperatingPointAnalysis,
			Temp: consts.DefaultTemp,
		},
	}
}

// SetGround replaces the default ground labels ("0", "gnd") with a single
// caller-designated terminal label. Must be called before Setup.
func (c *Circuit) SetGround(label string) {
	c.groundNames = map[string]bool{label: true}
}

// SetMaxUnknowns overrides the ceiling on system size. Must be called
// before Setup.
func (c *Circuit) SetMaxUnknowns(n int) {
	c.maxUnknowns = n
}

func (c *Circuit) isGround(label string) bool {
	return c.groundNames[label]
}

func (c *Circuit) nodeIndex(label string) int {
	if c.isGround(label) {
		return 0
	}
	return c.nodeMap[label]
}

// Setup runs the full build pipeline: index assignment, connectivity check,
// matrix allocation and device creation.
func (c *Circuit) Setup(elements []netlist.Element) error {
	var err error

	if err = c.AssignNodeBranchMaps(elements); err != nil {
		return err
	}
	if err = c.CheckConnectivity(elements); err != nil {
		return err
	}
	if err = c.CreateMatrix(); err != nil {
		return err
	}
	return c.SetupDevices(elements)
}

// AssignNodeBranchMaps resolves terminal labels into dense 1-based matrix
// indices in first-seen order. Voltage source branch rows follow the node
// rows. Ground contributes no unknown.
func (c *Circuit) AssignNodeBranchMaps(elements []netlist.Element) error {
	c.nodeNames = []string{"0"}

	touchesGround := false
	for _, elem := range elements {
		if len(elem.Nodes) != 2 {
			return &MalformedCircuitError{Component: elem.Name, Reason: "requires exactly 2 terminals"}
		}
		if elem.Nodes[0] == elem.Nodes[1] ||
			(c.isGround(elem.Nodes[0]) && c.isGround(elem.Nodes[1])) {
			return &MalformedCircuitError{Component: elem.Name, Reason: "both terminals reference the same node"}
		}

		for _, nodeName := range elem.Nodes {
			if c.isGround(nodeName) {
				touchesGround = true
				continue
			}
			if _, exists := c.nodeMap[nodeName]; !exists {
				idx := len(c.nodeMap) + 1
				c.nodeMap[nodeName] = idx
				c.nodeNames = append(c.nodeNames, nodeName)
			}
		}
	}

	if len(elements) > 0 && !touchesGround {
		return &MalformedCircuitError{Reason: "no component references the ground node"}
	}

	branchStart := len(c.nodeMap) + 1
	for _, elem := range elements {
		if elem.Type == "V" {
			c.branchMap[elem.Name] = branchStart
			branchStart++
		}
	}

	c.numNodes = len(c.nodeMap)
	return nil
}

// CheckConnectivity rejects any node without a path to ground. An
// unreachable node would make the conductance matrix singular, so it is
// caught here instead of surfacing later as a failed pivot.
func (c *Circuit) CheckConnectivity(elements []netlist.Element) error {
	if c.numNodes == 0 {
		return nil
	}

	ds := newDisjointSet(c.numNodes + 1)
	for _, elem := range elements {
		ds.union(c.nodeIndex(elem.Nodes[0]), c.nodeIndex(elem.Nodes[1]))
	}

	groundRoot := ds.find(0)
	for idx := 1; idx <= c.numNodes; idx++ {
		if ds.find(idx) != groundRoot {
			return &DisconnectedCircuitError{Node: c.nodeNames[idx]}
		}
	}
	return nil
}

// CreateMatrix allocates the MNA system. The size check runs first so an
// oversized circuit never allocates its dense matrix.
func (c *Circuit) CreateMatrix() error {
	size := len(c.nodeMap) + len(c.branchMap)
	if size > c.maxUnknowns {
		return &ResourceLimitError{Unknowns: size, Limit: c.maxUnknowns}
	}

	kind := c.solver
	if kind == SolverAuto {
		if size > consts.SparseThreshold {
			kind = SolverSparse
		} else {
			kind = SolverDense
		}
	}

	switch kind {
	case SolverSparse:
		sp, err := matrix.NewSparse(size)
		if err != nil {
			return fmt.Errorf("creating matrix: %w", err)
		}
		sp.SetupElements()
		c.matrix = sp
	default:
		c.matrix = matrix.NewDense(size)
	}
	return nil
}

// SetupDevices validates each descriptor and instantiates its device with
// resolved node indices.
func (c *Circuit) SetupDevices(elements []netlist.Element) error {
	for _, elem := range elements {
		if err := c.validateElement(elem); err != nil {
			return err
		}

		dev, err := netlist.CreateDevice(elem)
		if err != nil {
			return fmt.Errorf("creating device %s: %v", elem.Name, err)
		}

		nodeIndices := make([]int, len(elem.Nodes))
		for i, nodeName := range elem.Nodes {
			nodeIndices[i] = c.nodeIndex(nodeName)
		}
		dev.SetNodes(nodeIndices)

		if v, ok := dev.(*device.VoltageSource); ok {
			v.SetBranchIndex(c.branchMap[elem.Name])
		}

		c.devices = append(c.devices, dev)
	}
	return nil
}

func (c *Circuit) validateElement(elem netlist.Element) error {
	if math.IsNaN(elem.Value) || math.IsInf(elem.Value, 0) {
		return &InvalidComponentError{Component: elem.Name, Value: elem.Value, Reason: "value is not finite"}
	}
	if elem.Type == "R" && elem.Value <= 0 {
		return &InvalidComponentError{Component: elem.Name, Value: elem.Value, Reason: "resistance must be strictly positive"}
	}
	return nil
}

func (c *Circuit) Stamp(status *device.CircuitStatus) error {
	var err error

	for _, dev := range c.devices {
		err = dev.Stamp(c.matrix, status)
		if err != nil {
			return fmt.Errorf("stamping device %s: %v", dev.GetName(), err)
		}
	}
	return nil
}

// Solve restamps the system from scratch and solves it. The clear-stamp-solve
// sequence carries no state between calls, so repeated solves of the same
// circuit are bit-identical.
func (c *Circuit) Solve() error {
	if c.matrix == nil {
		return fmt.Errorf("circuit %s: not set up", c.name)
	}

	c.matrix.Clear()
	if err := c.Stamp(c.Status); err != nil {
		return err
	}
	if err := c.matrix.Solve(); err != nil {
		return err
	}

	c.solved = true
	return nil
}

func (c *Circuit) GetMatrix() matrix.CircuitMatrix {
	return c.matrix
}

func (c *Circuit) GetNodeMap() map[string]int {
	return c.nodeMap
}

func (c *Circuit) GetBranchMap() map[string]int {
	return c.branchMap
}

func (c *Circuit) GetDevices() []device.Device {
	return c.devices
}

func (c *Circuit) Name() string {
	return c.name
}

func (c *Circuit) GetNumNodes() int {
	return c.numNodes
}

func (c *Circuit) Destroy() {
	if c.matrix != nil {
		c.matrix.Destroy()
	}
}
