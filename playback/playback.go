// Package playback maps wall-clock time onto beats for a playhead. It uses
// the stream's first tempo mark and ignores later tempo changes.
package playback

import (
	"time"

	"github.com/sriramreddydwarampudi/sridaw/score"
)

// DefaultBPM applies when a stream has no usable tempo mark.
const DefaultBPM = 60.0

type Timeline struct {
	BPM   float64
	Beats float64
}

func New(s *score.Stream) Timeline {
	t := Timeline{BPM: DefaultBPM, Beats: s.Duration().QuarterLength}
	marks := score.ElementsByClass[*score.MetronomeMark](s.Flat())
	if len(marks) > 0 && marks[0].Number > 0 {
		t.BPM = marks[0].Number
	}
	return t
}

func (t Timeline) BeatDuration() time.Duration {
	return time.Duration(60 / t.BPM * float64(time.Second))
}

// Length is how long the whole stream takes to play.
func (t Timeline) Length() time.Duration {
	return time.Duration(t.Beats * float64(t.BeatDuration()))
}

func (t Timeline) CurrentBeat(elapsed time.Duration) float64 {
	return elapsed.Seconds() / t.BeatDuration().Seconds()
}

// Done reports whether the playhead has run past the end of the stream.
func (t Timeline) Done(elapsed time.Duration) bool {
	return t.CurrentBeat(elapsed) > t.Beats
}
