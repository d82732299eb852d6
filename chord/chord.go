// Package chord rebuilds a score stream from the note events of a Standard
// MIDI File, grouping notes that start and stop together into chords.
package chord

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/sriramreddydwarampudi/sridaw/score"
	"gitlab.com/gomidi/midi/v2/smf"
)

// sounded is a note-on paired with its note-off, in absolute ticks. Notes
// whose note-ons follow each other with no other event in between share a
// run.
type sounded struct {
	on, off  int64
	key, vel uint8
	seq, run int
}

type tempoMark struct {
	tick int64
	bpm  float64
}

type pressed struct {
	tick     int64
	vel      uint8
	seq, run int
}

// CreateChordKey names a set of MIDI keys independent of their order, e.g.
// "60-64-67".
func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

func collect(s *smf.SMF) ([]sounded, []tempoMark) {
	var notes []sounded
	var tempos []tempoMark
	seq, run := 0, 0

	for _, events := range s.Tracks {
		var absTicks int64
		inRun := false
		held := make(map[uint8][]pressed)
		release := func(key uint8, tick int64) {
			starts := held[key]
			if len(starts) == 0 {
				return
			}
			p := starts[0]
			held[key] = starts[1:]
			notes = append(notes, sounded{on: p.tick, off: tick, key: key, vel: p.vel, seq: p.seq, run: p.run})
		}

		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			var bpm float64
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				if !inRun {
					run++
					inRun = true
				}
				held[key] = append(held[key], pressed{tick: absTicks, vel: velocity, seq: seq, run: run})
				seq++
				continue
			case event.Message.GetNoteEnd(&channel, &key):
				release(key, absTicks)
			case event.Message.GetMetaTempo(&bpm):
				tempos = append(tempos, tempoMark{tick: absTicks, bpm: bpm})
			}
			inRun = false
		}

		// notes still held at the end of a track stop there
		for key := range held {
			for len(held[key]) > 0 {
				release(key, absTicks)
			}
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].on != notes[j].on {
			return notes[i].on < notes[j].on
		}
		return notes[i].seq < notes[j].seq
	})
	return notes, tempos
}

// sameChord reports whether two notes were struck together and released
// together. Notes that stop before the next one starts are kept apart even
// when their ticks match, as happens with zero length notes.
func sameChord(a, b sounded) bool {
	return a.run == b.run && a.on == b.on && a.off == b.off && a.vel == b.vel
}

// FromSMF converts the note events of every track into Notes and Chords
// placed at their offsets. Tempo meta events become MetronomeMarks.
func FromSMF(s *smf.SMF) (*score.Stream, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok || ticks == 0 {
		return nil, errors.Errorf("unsupported time format %v", s.TimeFormat)
	}
	resolution := float64(ticks)
	notes, tempos := collect(s)

	res := score.New()
	for _, t := range tempos {
		res.Insert(float64(t.tick)/resolution, score.NewMetronomeMark(t.bpm))
	}

	for i := 0; i < len(notes); {
		j := i + 1
		for j < len(notes) && sameChord(notes[i], notes[j]) {
			j++
		}

		first := notes[i]
		offset := float64(first.on) / resolution
		length := float64(first.off-first.on) / resolution
		volume := score.NewVolume(int(first.vel))

		if j-i == 1 {
			res.Insert(offset, score.NoteFromPitch(score.PitchFromMIDI(int(first.key)), length, volume))
		} else {
			c := &score.Chord{Duration: score.NewDuration(length), Volume: volume}
			for _, n := range notes[i:j] {
				c.Notes = append(c.Notes, score.NoteFromPitch(score.PitchFromMIDI(int(n.key)), length, volume))
			}
			res.Insert(offset, c)
		}
		i = j
	}
	return res, nil
}

// Keys lists the MIDI keys a chord sounds.
func Keys(c *score.Chord) []uint8 {
	keys := make([]uint8, 0, len(c.Notes))
	for _, n := range c.Notes {
		keys = append(keys, uint8(n.Pitch.MIDI()))
	}
	return keys
}
