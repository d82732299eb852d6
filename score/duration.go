package score

import "fmt"

const DefaultQuarterLength = 1.0

// Duration is a length in quarter notes. Zero is a legal, zero-length event.
type Duration struct {
	QuarterLength float64
}

func NewDuration(quarterLength float64) Duration {
	return Duration{QuarterLength: quarterLength}
}

// DefaultDuration is one quarter note.
func DefaultDuration() Duration {
	return Duration{QuarterLength: DefaultQuarterLength}
}

func (d Duration) String() string {
	return fmt.Sprintf("Duration(%v)", d.QuarterLength)
}
