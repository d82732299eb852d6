package score

import "fmt"

// PitchInput is what Note and Chord constructors accept for a pitch: a
// name in scientific pitch notation or a raw MIDI number.
type PitchInput interface {
	string | int
}

func toPitch[P PitchInput](p P) (Pitch, error) {
	switch v := any(p).(type) {
	case string:
		return ParsePitch(v)
	case int:
		return PitchFromMIDI(v), nil
	}
	panic(fmt.Sprintf("unexpected pitch input %T", p))
}

// Note is a pitched event. Its offset is owned by the Stream it was last
// placed in.
type Note struct {
	Pitch         Pitch
	Duration      Duration
	Volume        Volume
	Articulations []Articulation
	offset        float64
}

func NewNote[P PitchInput](p P, quarterLength float64, volume Volume) (*Note, error) {
	pitch, err := toPitch(p)
	if err != nil {
		return nil, err
	}
	return NoteFromPitch(pitch, quarterLength, volume), nil
}

func NoteFromPitch(p Pitch, quarterLength float64, volume Volume) *Note {
	return &Note{
		Pitch:    p,
		Duration: NewDuration(quarterLength),
		Volume:   volume,
	}
}

// DefaultNote is a quarter-note C4 at the default velocity.
func DefaultNote() *Note {
	return NoteFromPitch(MustParsePitch("C4"), DefaultQuarterLength, DefaultVolume())
}

func (n *Note) Offset() float64          { return n.offset }
func (n *Note) setOffset(offset float64) { n.offset = offset }
func (n *Note) Length() Duration         { return n.Duration }
func (n *Note) Velocity() int            { return n.Volume.Velocity }
func (n *Note) String() string           { return fmt.Sprintf("Note(%s)", n.Pitch.Name()) }
