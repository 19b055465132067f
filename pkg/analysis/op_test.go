package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcsim/pkg/circuit"
	"dcsim/pkg/netlist"
)

func buildCircuit(t *testing.T, input string) (*circuit.Circuit, *netlist.NetlistData) {
	t.Helper()

	data, err := netlist.Parse(input)
	require.NoError(t, err)

	ckt := circuit.New(data.Title)
	require.NoError(t, ckt.Setup(data.Elements))
	return ckt, data
}

func TestOperatingPoint(t *testing.T) {
	ckt, _ := buildCircuit(t, `voltage divider
V1 in 0 10
R1 in out 1k
R2 out 0 1k
.op`)
	defer ckt.Destroy()

	op := NewOP()
	require.NoError(t, op.Setup(ckt))
	require.NoError(t, op.Execute())

	results := op.GetResults()
	require.Len(t, results["V(out)"], 1)
	assert.InDelta(t, 5.0, results["V(out)"][0], 1e-9)
	assert.InDelta(t, 10.0, results["V(in)"][0], 1e-9)
	assert.InDelta(t, -5e-3, results["I(V1)"][0], 1e-12)

	compResults, err := op.ComponentResults()
	require.NoError(t, err)
	require.Len(t, compResults, 3)
	assert.Equal(t, "V1", compResults[0].Name)
	assert.InDelta(t, 10.0, compResults[0].VoltageDrop, 1e-9)
}

func TestOperatingPointWithoutCircuit(t *testing.T) {
	op := NewOP()
	assert.Error(t, op.Execute())
}
