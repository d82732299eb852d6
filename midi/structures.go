package midi

const (
	// TicksPerQuarter is fixed; it is not derived from tempo or meter.
	TicksPerQuarter = 96

	MaxValue = 0x7F

	// MaxVLQ is the largest delta a four byte variable length quantity holds.
	MaxVLQ = 0x0FFFFFFF
)
