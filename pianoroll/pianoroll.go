// Package pianoroll lays out the notes of a stream as piano-roll
// rectangles.
package pianoroll

import (
	"github.com/sriramreddydwarampudi/sridaw/score"
	"github.com/sriramreddydwarampudi/sridaw/util"
	"golang.org/x/exp/slices"
)

const (
	// DefaultWidth is used when no note has a positive length.
	DefaultWidth = 10.0

	highlightVelocity = 100
)

var defaultVisible = []int{60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71}

type Rect struct {
	Offset   float64 `json:"offset"`
	MIDI     int     `json:"midi"`
	Length   float64 `json:"length"`
	Velocity int     `json:"velocity"`
}

// Highlight marks accented notes.
func (r Rect) Highlight() bool {
	return r.Velocity > highlightVelocity
}

func (r Rect) End() float64 {
	return r.Offset + r.Length
}

type Roll struct {
	Notes   []Rect  `json:"notes"`
	Visible []int   `json:"visible"`
	Width   float64 `json:"width"`
}

// FromStream builds one rectangle per sounding pitch. Chord members take the
// chord's offset, length and velocity. Rectangles are ordered by pitch.
func FromStream(s *score.Stream) Roll {
	var roll Roll
	pitches := make(map[int]bool)

	for _, el := range s.Recurse().Notes() {
		var members []*score.Note
		switch v := el.(type) {
		case *score.Note:
			members = []*score.Note{v}
		case *score.Chord:
			members = v.Notes
		}
		for _, n := range members {
			pitches[n.Pitch.MIDI()] = true
			roll.Notes = append(roll.Notes, Rect{
				Offset:   el.Offset(),
				MIDI:     n.Pitch.MIDI(),
				Length:   el.Length().QuarterLength,
				Velocity: el.Velocity(),
			})
		}
	}

	slices.SortStableFunc(roll.Notes, func(a, b Rect) bool {
		return a.MIDI < b.MIDI
	})

	if len(pitches) > 0 {
		roll.Visible = util.SortedKeys(pitches)
	} else {
		roll.Visible = slices.Clone(defaultVisible)
	}

	found := false
	for _, r := range roll.Notes {
		if r.Length > 0 {
			roll.Width = util.Max(roll.Width, r.End())
			found = true
		}
	}
	if !found {
		roll.Width = DefaultWidth
	}
	return roll
}

// Row is the index of a pitch among the visible rows.
func (r Roll) Row(midi int) (int, bool) {
	i := slices.Index(r.Visible, midi)
	return i, i >= 0
}

// Hit returns the note under a beat position on a pitch row.
func (r Roll) Hit(beat float64, midi int) (Rect, bool) {
	for _, n := range r.Notes {
		if n.MIDI == midi && n.Offset <= beat && beat <= n.End() {
			return n, true
		}
	}
	return Rect{}, false
}

func IsBlackKey(midi int) bool {
	switch ((midi % 12) + 12) % 12 {
	case 1, 3, 6, 8, 10:
		return true
	}
	return false
}

func NoteName(midi int) string {
	return score.MIDIName(midi)
}
