package score

import "fmt"

const DefaultBPM = 120

// MetronomeMark is a tempo indication. The encoder never reads it.
type MetronomeMark struct {
	Number float64
	offset float64
}

func NewMetronomeMark(number float64) *MetronomeMark {
	return &MetronomeMark{Number: number}
}

func DefaultMetronomeMark() *MetronomeMark {
	return NewMetronomeMark(DefaultBPM)
}

func (m *MetronomeMark) Offset() float64          { return m.offset }
func (m *MetronomeMark) setOffset(offset float64) { m.offset = offset }
func (m *MetronomeMark) String() string           { return fmt.Sprintf("MetronomeMark(number=%v)", m.Number) }
