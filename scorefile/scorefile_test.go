package scorefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sriramreddydwarampudi/sridaw/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demo = `
tempo: 100
events:
  - note: C4
    length: 0.5
  - note: 62
    length: 0.5
    velocity: 90
  - chord: [C4, E4, 67]
    length: 2
    at: 4
  - dynamic: ff
  - tempo: 80
    at: 8
`

func TestBuildYAML(t *testing.T) {
	doc, err := Decode([]byte(demo), YAML)
	require.NoError(t, err)
	s, err := doc.Build()
	require.NoError(t, err)

	assert := assert.New(t)
	marks := score.ElementsByClass[*score.MetronomeMark](s)
	require.Len(t, marks, 2)
	assert.Equal(100.0, marks[0].Number)
	assert.Equal(0.0, marks[0].Offset())
	assert.Equal(8.0, marks[1].Offset())

	notes := score.ElementsByClass[*score.Note](s)
	require.Len(t, notes, 2)
	assert.Equal(0.0, notes[0].Offset())
	assert.Equal(0.5, notes[1].Offset())
	assert.Equal(62, notes[1].Pitch.MIDI())
	assert.Equal(90, notes[1].Volume.Velocity)
	assert.Equal(score.DefaultVelocity, notes[0].Volume.Velocity)

	chords := score.ElementsByClass[*score.Chord](s)
	require.Len(t, chords, 1)
	assert.Equal(4.0, chords[0].Offset())
	assert.Equal(2.0, chords[0].Duration.QuarterLength)
	assert.Equal("Chord([C4 E4 G4])", chords[0].String())

	dyn := score.ElementsByClass[*score.Dynamic](s)
	require.Len(t, dyn, 1)
	assert.Equal(6.0, dyn[0].Offset())

	assert.Equal(8.0, s.Duration().QuarterLength)
}

func TestBuildJSON(t *testing.T) {
	body := `{"events": [{"note": "A4"}, {"chord": [60, 64.0], "length": 1.5, "velocity": 70}]}`
	doc, err := Decode([]byte(body), JSON)
	require.NoError(t, err)
	s, err := doc.Build()
	require.NoError(t, err)

	notes := s.Recurse().Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, 1.0, notes[1].Offset())
	assert.Equal(t, 70, notes[1].Velocity())
	assert.Empty(t, score.ElementsByClass[*score.MetronomeMark](s))
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode([]byte("events:\n  - note: C4\n    lenght: 2\n"), YAML)
	assert.Error(t, err)

	_, err = Decode([]byte(`{"events": [{"note": "C4", "lenght": 2}]}`), JSON)
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	cases := map[string]string{
		"no kind":     "events:\n  - length: 1\n",
		"two kinds":   "events:\n  - note: C4\n    dynamic: p\n",
		"empty chord": "events:\n  - chord: []\n",
		"bad pitch":   "events:\n  - note: H4\n",
		"bad value":   "events:\n  - note: [1]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := Decode([]byte(body), YAML)
			require.NoError(t, err)
			_, err = doc.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "event 0")
		})
	}
}

func TestBuildPropagatesParseError(t *testing.T) {
	doc, err := Decode([]byte("events:\n  - note: C4\n  - chord: [C4, Q2]\n"), YAML)
	require.NoError(t, err)
	_, err = doc.Build()
	var perr *score.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Q2", perr.Name)
	assert.Contains(t, err.Error(), "event 1")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demo), 0644))
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, JSON, KindOf("song.JSON"))
	assert.Equal(t, JSON, KindOf("application/json; charset=utf-8"))
	assert.Equal(t, YAML, KindOf("song.yml"))
	assert.Equal(t, YAML, KindOf("application/yaml"))
	assert.Equal(t, YAML, KindOf(""))
}

func TestFromStreamRoundTrip(t *testing.T) {
	doc, err := Decode([]byte(demo), YAML)
	require.NoError(t, err)
	s, err := doc.Build()
	require.NoError(t, err)
	want, err := s.EncodeMIDI()
	require.NoError(t, err)

	for _, kind := range []Kind{YAML, JSON} {
		data, err := FromStream(s).Encode(kind)
		require.NoError(t, err)

		again, err := Decode(data, kind)
		require.NoError(t, err, string(data))
		rebuilt, err := again.Build()
		require.NoError(t, err)

		got, err := rebuilt.EncodeMIDI()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s.Len(), rebuilt.Len())
		assert.Equal(t, s.Duration(), rebuilt.Duration())
	}
}

func TestFromStreamUsesSharpNames(t *testing.T) {
	s := score.New()
	n, err := score.NewNote(61, 1, score.DefaultVolume())
	require.NoError(t, err)
	s.Append(n)
	data, err := FromStream(s).Encode(YAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "C#4")
}
