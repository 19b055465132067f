package consts

const (
	KELVIN      = 273.15        // Kelvin temperature (K)
	DefaultTemp = 27.0 + KELVIN // Nominal device temperature (K)

	PivotEpsilon    = 1e-12 // Pivot threshold, relative to the matrix max-norm
	MaxUnknowns     = 4096  // Default ceiling on unknown count
	SparseThreshold = 256   // Unknown count above which the sparse backend is picked
)
