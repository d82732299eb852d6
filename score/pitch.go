package score

import (
	"fmt"
	"strconv"
	"strings"
)

const defaultOctave = 4

var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var chromaticNames = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// ParseError is returned when a pitch name does not follow scientific pitch
// notation.
type ParseError struct {
	Name   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid pitch name %q: %s", e.Name, e.Reason)
}

// Pitch is a MIDI note number paired with a name. The number is not clamped
// here; the encoder clamps it to 0-127.
type Pitch struct {
	midi int
	name string
}

func (p Pitch) MIDI() int      { return p.midi }
func (p Pitch) Name() string   { return p.name }
func (p Pitch) String() string { return p.name }

// ParsePitch reads names like "C4", "c#", "Bb3" or "F##-1". A run of
// accidentals takes the sign of its first character, so a mixed run like
// "#b" counts as two sharps. The octave defaults to 4.
func ParsePitch(name string) (Pitch, error) {
	if name == "" {
		return Pitch{}, &ParseError{Name: name, Reason: "empty name"}
	}

	letter := strings.ToUpper(name[:1])[0]
	semitone, ok := letterSemitones[letter]
	if !ok {
		return Pitch{}, &ParseError{Name: name, Reason: "unknown note letter"}
	}

	rest := name[1:]
	accidentals := 0
	for accidentals < len(rest) && (rest[accidentals] == '#' || rest[accidentals] == 'b') {
		accidentals++
	}
	alter := 0
	if accidentals > 0 {
		alter = accidentals
		if rest[0] == 'b' {
			alter = -accidentals
		}
	}

	octave := defaultOctave
	octaveText := rest[accidentals:]
	if octaveText != "" {
		n, err := strconv.Atoi(octaveText)
		if err != nil {
			return Pitch{}, &ParseError{Name: name, Reason: "bad octave " + strconv.Quote(octaveText)}
		}
		octave = n
	}

	return Pitch{
		midi: (octave+1)*12 + semitone + alter,
		name: string(letter) + rest[:accidentals] + strconv.Itoa(octave),
	}, nil
}

// MustParsePitch is like ParsePitch but panics on a bad name.
func MustParsePitch(name string) Pitch {
	p, err := ParsePitch(name)
	if err != nil {
		panic(err)
	}
	return p
}

// PitchFromMIDI names n with the sharp spelling of its pitch class.
func PitchFromMIDI(n int) Pitch {
	return Pitch{midi: n, name: MIDIName(n)}
}

// MIDIName returns the sharp-spelled name of a MIDI note number, e.g. 61 is
// "C#4". Flat spellings never come back out.
func MIDIName(n int) string {
	octave := floorDiv(n, 12) - 1
	class := n - floorDiv(n, 12)*12
	return chromaticNames[class] + strconv.Itoa(octave)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
