package playback

import (
	"testing"
	"time"

	"github.com/sriramreddydwarampudi/sridaw/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTempo(t *testing.T) {
	s := score.New()
	n, err := score.NewNote("C4", 4, score.DefaultVolume())
	require.NoError(t, err)
	s.Append(n)

	tl := New(s)
	assert.Equal(t, DefaultBPM, tl.BPM)
	assert.Equal(t, time.Second, tl.BeatDuration())
	assert.Equal(t, 4*time.Second, tl.Length())
}

func TestFirstTempoMarkWins(t *testing.T) {
	s := score.New()
	s.Append(score.NewMetronomeMark(120))
	n, err := score.NewNote("C4", 8, score.DefaultVolume())
	require.NoError(t, err)
	s.Append(n)
	s.Insert(4, score.NewMetronomeMark(30))

	tl := New(s)
	assert := assert.New(t)
	assert.Equal(120.0, tl.BPM)
	assert.Equal(500*time.Millisecond, tl.BeatDuration())
	assert.Equal(4*time.Second, tl.Length())
	assert.InDelta(3.0, tl.CurrentBeat(1500*time.Millisecond), 1e-9)
	assert.False(tl.Done(4 * time.Second))
	assert.True(tl.Done(4*time.Second + time.Millisecond))
}

func TestZeroTempoFallsBack(t *testing.T) {
	s := score.New()
	s.Append(score.NewMetronomeMark(0))
	assert.Equal(t, DefaultBPM, New(s).BPM)
}
