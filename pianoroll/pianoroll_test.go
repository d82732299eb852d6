package pianoroll

import (
	"testing"

	"github.com/sriramreddydwarampudi/sridaw/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyRoll(t *testing.T) {
	roll := FromStream(score.New())
	assert.Empty(t, roll.Notes)
	assert.Equal(t, []int{60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71}, roll.Visible)
	assert.Equal(t, DefaultWidth, roll.Width)
}

func TestRollExpandsChords(t *testing.T) {
	s := score.New()
	s.Append(score.NewMetronomeMark(90))
	n, err := score.NewNote("G4", 1, score.NewVolume(110))
	require.NoError(t, err)
	s.Append(n)
	c, err := score.NewChord([]string{"E4", "C4"}, 2, score.DefaultVolume())
	require.NoError(t, err)
	c.Notes[0].Volume.Velocity = 5
	s.Append(c)

	roll := FromStream(s)
	assert.Equal(t, []Rect{
		{Offset: 1, MIDI: 60, Length: 2, Velocity: 100},
		{Offset: 1, MIDI: 64, Length: 2, Velocity: 100},
		{Offset: 0, MIDI: 67, Length: 1, Velocity: 110},
	}, roll.Notes)
	assert.Equal(t, []int{60, 64, 67}, roll.Visible)
	assert.Equal(t, 3.0, roll.Width)
	assert.True(t, roll.Notes[2].Highlight())
	assert.False(t, roll.Notes[0].Highlight())

	row, ok := roll.Row(64)
	assert.True(t, ok)
	assert.Equal(t, 1, row)
	_, ok = roll.Row(61)
	assert.False(t, ok)
}

func TestRollWidthIgnoresZeroLength(t *testing.T) {
	s := score.New()
	n, err := score.NewNote("C4", 0, score.DefaultVolume())
	require.NoError(t, err)
	s.Insert(20, n)
	assert.Equal(t, DefaultWidth, FromStream(s).Width)

	m, err := score.NewNote("D4", 1, score.DefaultVolume())
	require.NoError(t, err)
	s.Insert(2, m)
	assert.Equal(t, 3.0, FromStream(s).Width)
}

func TestHit(t *testing.T) {
	roll := Roll{Notes: []Rect{{Offset: 1, MIDI: 60, Length: 2, Velocity: 100}}}
	r, ok := roll.Hit(2.5, 60)
	assert.True(t, ok)
	assert.Equal(t, 60, r.MIDI)

	_, ok = roll.Hit(3.5, 60)
	assert.False(t, ok)
	_, ok = roll.Hit(2, 61)
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	assert.True(t, IsBlackKey(61))
	assert.True(t, IsBlackKey(70))
	assert.False(t, IsBlackKey(60))
	assert.False(t, IsBlackKey(64))
	assert.True(t, IsBlackKey(-11))
	assert.Equal(t, "A#4", NoteName(70))
}
