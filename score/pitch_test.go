package score

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePitch(t *testing.T) {
	cases := []struct {
		name string
		midi int
		norm string
	}{
		{"C4", 60, "C4"},
		{"C#4", 61, "C#4"},
		{"Db4", 61, "Db4"},
		{"A4", 69, "A4"},
		{"c", 60, "C4"},
		{"bb3", 58, "Bb3"},
		{"F##2", 43, "F##2"},
		{"C-1", 0, "C-1"},
		{"G9", 127, "G9"},
		{"B+3", 59, "B3"},
		{"E10", 136, "E10"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := ParsePitch(c.name)
			require.NoError(t, err)
			assert.Equal(t, c.midi, p.MIDI())
			assert.Equal(t, c.norm, p.Name())
		})
	}
}

func TestParsePitchMixedAccidentalsTakeFirstSign(t *testing.T) {
	p, err := ParsePitch("C#b4")
	require.NoError(t, err)
	assert.Equal(t, 62, p.MIDI())

	p, err = ParsePitch("Cb#4")
	require.NoError(t, err)
	assert.Equal(t, 58, p.MIDI())
}

func TestParsePitchErrors(t *testing.T) {
	for _, name := range []string{"", "H4", "4", "C4x", "C#x", "#4"} {
		t.Run(fmt.Sprintf("%q", name), func(t *testing.T) {
			_, err := ParsePitch(name)
			var perr *ParseError
			assert.True(t, errors.As(err, &perr))
			assert.Equal(t, name, perr.Name)
		})
	}
}

func TestPitchFromMIDI(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#4", PitchFromMIDI(61).Name())
	assert.Equal("C4", PitchFromMIDI(60).Name())
	assert.Equal("B3", PitchFromMIDI(59).Name())
	assert.Equal("C-1", PitchFromMIDI(0).Name())
	assert.Equal("G9", PitchFromMIDI(127).Name())
	assert.Equal("B-2", PitchFromMIDI(-1).Name())
}

func TestPitchRoundTrip(t *testing.T) {
	for _, name := range []string{"C4", "C#4", "D4", "D#4", "E4", "F4", "F#4", "G4", "G#4", "A4", "A#4", "B4", "C#0", "A#7"} {
		p := MustParsePitch(name)
		assert.Equal(t, name, PitchFromMIDI(p.MIDI()).Name())
	}

	// flats come back spelled as sharps
	assert.Equal(t, "C#4", PitchFromMIDI(MustParsePitch("Db4").MIDI()).Name())
}
