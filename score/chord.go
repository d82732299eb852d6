package score

import (
	"fmt"
	"strings"
)

var defaultChord = []string{"C4", "E4", "G4"}

// Chord is a group of simultaneous notes. Members start out with the
// chord's duration and volume but can be changed on their own afterwards;
// encoding always uses the chord's Duration and Volume.
type Chord struct {
	Notes    []*Note
	Duration Duration
	Volume   Volume
	offset   float64
}

// NewChord builds one Note per pitch. With no pitches it builds a C major
// triad.
func NewChord[P PitchInput](pitches []P, quarterLength float64, volume Volume) (*Chord, error) {
	c := &Chord{
		Duration: NewDuration(quarterLength),
		Volume:   volume,
	}
	if len(pitches) == 0 {
		for _, name := range defaultChord {
			c.Notes = append(c.Notes, NoteFromPitch(MustParsePitch(name), quarterLength, volume))
		}
		return c, nil
	}
	for _, p := range pitches {
		n, err := NewNote(p, quarterLength, volume)
		if err != nil {
			return nil, err
		}
		c.Notes = append(c.Notes, n)
	}
	return c, nil
}

func (c *Chord) Offset() float64 { return c.offset }

func (c *Chord) setOffset(offset float64) {
	c.offset = offset
	for _, n := range c.Notes {
		n.offset = offset
	}
}

func (c *Chord) Length() Duration { return c.Duration }
func (c *Chord) Velocity() int    { return c.Volume.Velocity }

func (c *Chord) String() string {
	names := make([]string, 0, len(c.Notes))
	for _, n := range c.Notes {
		names = append(names, n.Pitch.Name())
	}
	return fmt.Sprintf("Chord([%s])", strings.Join(names, " "))
}
