package score

import "fmt"

const DefaultVelocity = 100

// Volume carries a note-on velocity. The range is not enforced here.
type Volume struct {
	Velocity int
}

func NewVolume(velocity int) Volume {
	return Volume{Velocity: velocity}
}

func DefaultVolume() Volume {
	return Volume{Velocity: DefaultVelocity}
}

func (v Volume) String() string {
	return fmt.Sprintf("Volume(velocity=%d)", v.Velocity)
}

// Dynamic is a written dynamic marking like "mf". It is informational only.
type Dynamic struct {
	Value  string
	offset float64
}

func NewDynamic(value string) *Dynamic {
	if value == "" {
		value = "mf"
	}
	return &Dynamic{Value: value}
}

func (d *Dynamic) Offset() float64          { return d.offset }
func (d *Dynamic) setOffset(offset float64) { d.offset = offset }
func (d *Dynamic) String() string           { return fmt.Sprintf("Dynamic(%s)", d.Value) }
