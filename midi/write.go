package midi

import (
	"bytes"

	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Track collects the channel 0 note events of a single track chunk.
type Track struct {
	events smf.Track
}

func NewTrack() *Track {
	return &Track{}
}

func (t *Track) NoteOn(delta uint32, key, velocity uint8) {
	t.events.Add(delta, gomidi.NoteOn(0, key, velocity))
}

// NoteOff writes a note-off with release velocity 0.
func (t *Track) NoteOff(delta uint32, key uint8) {
	t.events.Add(delta, gomidi.NoteOff(0, key))
}

// Len is the number of events added so far.
func (t *Track) Len() int {
	return len(t.events)
}

// Bytes closes the track and frames it as a format 0 Standard MIDI File
// with TicksPerQuarter resolution. Running status is never used.
func (t *Track) Bytes() ([]byte, error) {
	t.events.Close(0)

	f := smf.New()
	f.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	f.NoRunningStatus = true
	if err := f.Add(t.events); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "could not write midi data")
	}
	return buf.Bytes(), nil
}

// Fallback is a minimal valid file holding one quarter-note C4. Callers that
// prefer some playable output over an error can write it after a failed
// encode.
func Fallback() []byte {
	t := NewTrack()
	t.NoteOn(0, 60, 100)
	t.NoteOff(TicksPerQuarter, 60)
	data, err := t.Bytes()
	if err != nil {
		// writing to memory does not fail
		panic(err)
	}
	return data
}
