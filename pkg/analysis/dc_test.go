package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcsim/pkg/device"
)

func TestDCSweep(t *testing.T) {
	ckt, data := buildCircuit(t, `sweep divider
V1 in 0 10
R1 in out 1k
R2 out 0 1k
.dc V1 0 10 1`)
	defer ckt.Destroy()

	sweep := NewDCSweep(data.DCParam.Source, data.DCParam.Start, data.DCParam.Stop, data.DCParam.Increment)
	require.NoError(t, sweep.Setup(ckt))
	require.NoError(t, sweep.Execute())

	results := sweep.GetResults()
	require.Len(t, results["SWEEP1"], 11)
	require.Len(t, results["V(out)"], 11)

	for i, val := range results["SWEEP1"] {
		assert.InDelta(t, float64(i), val, 1e-9)
		assert.InDelta(t, val/2, results["V(out)"][i], 1e-9)
	}
}

func TestDCSweepRestoresSourceValue(t *testing.T) {
	ckt, _ := buildCircuit(t, `restore
V1 in 0 10
R1 in 0 1k
.dc V1 0 5 1`)
	defer ckt.Destroy()

	sweep := NewDCSweep("V1", 0, 5, 1)
	require.NoError(t, sweep.Setup(ckt))
	require.NoError(t, sweep.Execute())

	for _, dev := range ckt.GetDevices() {
		if v, ok := dev.(*device.VoltageSource); ok {
			assert.Equal(t, 10.0, v.GetValue())
		}
	}
}

func TestDCSweepUnknownSource(t *testing.T) {
	ckt, _ := buildCircuit(t, `missing
V1 in 0 10
R1 in 0 1k
.dc VX 0 5 1`)
	defer ckt.Destroy()

	sweep := NewDCSweep("VX", 0, 5, 1)
	assert.Error(t, sweep.Setup(ckt))
}

func TestDCSweepBadIncrement(t *testing.T) {
	ckt, _ := buildCircuit(t, `bad step
V1 in 0 10
R1 in 0 1k
.op`)
	defer ckt.Destroy()

	sweep := NewDCSweep("V1", 0, 5, 0)
	require.NoError(t, sweep.Setup(ckt))
	assert.Error(t, sweep.Execute())
}
