package analysis

import (
	"fmt"

	"dcsim/pkg/circuit"
	"dcsim/pkg/device"
)

// DCSweep steps one voltage source over a range, solving an operating point
// at each step. The source's original value is restored afterwards.
type DCSweep struct {
	BaseAnalysis
	sourceName string
	start      float64
	stop       float64
	increment  float64
	origVal    float64
}

func NewDCSweep(source string, start, stop, increment float64) *DCSweep {
	return &DCSweep{
		BaseAnalysis: *NewBaseAnalysis(),
		sourceName:   source,
		start:        start,
		stop:         stop,
		increment:    increment,
	}
}

func (dc *DCSweep) Setup(ckt *circuit.Circuit) error {
	dc.Circuit = ckt

	source := dc.findSource()
	if source == nil {
		return fmt.Errorf("source %s not found", dc.sourceName)
	}
	dc.origVal = source.GetValue()

	return nil
}

func (dc *DCSweep) Execute() error {
	if dc.Circuit == nil {
		return fmt.Errorf("circuit not set")
	}
	if dc.increment <= 0 {
		return fmt.Errorf("sweep increment must be positive, got %g", dc.increment)
	}

	source := dc.findSource()
	if source == nil {
		return fmt.Errorf("source %s not found", dc.sourceName)
	}
	defer source.SetValue(dc.origVal)

	dc.Circuit.Status.Mode = device.DCSweepAnalysis

	for val := dc.start; val <= dc.stop; val += dc.increment {
		source.SetValue(val)

		if err := dc.Circuit.Solve(); err != nil {
			return fmt.Errorf("sweep point %s=%g: %w", dc.sourceName, val, err)
		}

		dc.results["SWEEP1"] = append(dc.results["SWEEP1"], val)
		dc.StoreSolution(dc.Circuit.GetSolution())
	}

	return nil
}

func (dc *DCSweep) findSource() *device.VoltageSource {
	for _, dev := range dc.Circuit.GetDevices() {
		if dev.GetName() == dc.sourceName {
			if v, ok := dev.(*device.VoltageSource); ok {
				return v
			}
		}
	}
	return nil
}
