// Package scorefile reads declarative score documents and turns them into
// streams.
package scorefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sriramreddydwarampudi/sridaw/score"
	"gopkg.in/yaml.v2"
)

type Kind int

const (
	YAML Kind = iota
	JSON
)

// KindOf picks the document kind from a file extension or a content type.
func KindOf(nameOrContentType string) Kind {
	s := strings.ToLower(nameOrContentType)
	if filepath.Ext(s) == ".json" || strings.Contains(s, "json") {
		return JSON
	}
	return YAML
}

type Document struct {
	Tempo  float64 `yaml:"tempo,omitempty" json:"tempo,omitempty"`
	Events []Event `yaml:"events" json:"events"`
}

// Event holds exactly one of Note, Chord, Tempo or Dynamic. Pitches are
// names or MIDI numbers.
type Event struct {
	Note    interface{}   `yaml:"note,omitempty" json:"note,omitempty"`
	Chord   []interface{} `yaml:"chord,omitempty" json:"chord,omitempty"`
	Tempo   *float64      `yaml:"tempo,omitempty" json:"tempo,omitempty"`
	Dynamic string        `yaml:"dynamic,omitempty" json:"dynamic,omitempty"`

	Length   *float64 `yaml:"length,omitempty" json:"length,omitempty"`
	Velocity *int     `yaml:"velocity,omitempty" json:"velocity,omitempty"`
	At       *float64 `yaml:"at,omitempty" json:"at,omitempty"`
}

func Decode(data []byte, kind Kind) (*Document, error) {
	var doc Document
	switch kind {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "could not decode json score")
		}
	default:
		if err := yaml.UnmarshalStrict(data, &doc); err != nil {
			return nil, errors.Wrap(err, "could not decode yaml score")
		}
	}
	return &doc, nil
}

// Load reads and builds the score document at path.
func Load(path string) (*score.Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read score")
	}
	doc, err := Decode(data, KindOf(path))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	s, err := doc.Build()
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return s, nil
}

// Build creates a stream from the document. Events with "at" are inserted
// at that offset, the rest are appended in order.
func (d *Document) Build() (*score.Stream, error) {
	s := score.New()
	if d.Tempo > 0 {
		s.Insert(0, score.NewMetronomeMark(d.Tempo))
	}
	for i, ev := range d.Events {
		e, err := ev.element()
		if err != nil {
			return nil, errors.Wrapf(err, "event %d", i)
		}
		if ev.At != nil {
			s.Insert(*ev.At, e)
		} else {
			s.Append(e)
		}
	}
	return s, nil
}

func (ev Event) kinds() int {
	n := 0
	if ev.Note != nil {
		n++
	}
	if ev.Chord != nil {
		n++
	}
	if ev.Tempo != nil {
		n++
	}
	if ev.Dynamic != "" {
		n++
	}
	return n
}

func (ev Event) element() (score.Element, error) {
	if k := ev.kinds(); k != 1 {
		return nil, fmt.Errorf("need exactly one of note, chord, tempo or dynamic, got %d", k)
	}

	length := score.DefaultQuarterLength
	if ev.Length != nil {
		length = *ev.Length
	}
	volume := score.DefaultVolume()
	if ev.Velocity != nil {
		volume = score.NewVolume(*ev.Velocity)
	}

	switch {
	case ev.Note != nil:
		p, err := pitchOf(ev.Note)
		if err != nil {
			return nil, err
		}
		return score.NoteFromPitch(p, length, volume), nil
	case ev.Chord != nil:
		if len(ev.Chord) == 0 {
			return nil, errors.New("empty chord")
		}
		c := &score.Chord{
			Duration: score.NewDuration(length),
			Volume:   volume,
		}
		for _, v := range ev.Chord {
			p, err := pitchOf(v)
			if err != nil {
				return nil, err
			}
			c.Notes = append(c.Notes, score.NoteFromPitch(p, length, volume))
		}
		return c, nil
	case ev.Tempo != nil:
		return score.NewMetronomeMark(*ev.Tempo), nil
	default:
		return score.NewDynamic(ev.Dynamic), nil
	}
}

func pitchOf(v interface{}) (score.Pitch, error) {
	switch p := v.(type) {
	case string:
		return score.ParsePitch(p)
	case int:
		return score.PitchFromMIDI(p), nil
	case float64:
		if p != math.Trunc(p) {
			return score.Pitch{}, fmt.Errorf("pitch number %v is not an integer", p)
		}
		return score.PitchFromMIDI(int(p)), nil
	}
	return score.Pitch{}, fmt.Errorf("unsupported pitch value %v (%T)", v, v)
}

// FromStream describes every element of s with an explicit offset, so
// building the document again reproduces the same placement.
func FromStream(s *score.Stream) *Document {
	doc := &Document{}
	for _, e := range s.Elements() {
		at := e.Offset()
		ev := Event{At: &at}
		switch v := e.(type) {
		case *score.Note:
			ev.Note = v.Pitch.Name()
			ev.Length, ev.Velocity = lengthAndVelocity(v)
		case *score.Chord:
			for _, n := range v.Notes {
				ev.Chord = append(ev.Chord, n.Pitch.Name())
			}
			ev.Length, ev.Velocity = lengthAndVelocity(v)
		case *score.MetronomeMark:
			bpm := v.Number
			ev.Tempo = &bpm
		case *score.Dynamic:
			ev.Dynamic = v.Value
		}
		doc.Events = append(doc.Events, ev)
	}
	return doc
}

func lengthAndVelocity(e score.Sounding) (*float64, *int) {
	length := e.Length().QuarterLength
	velocity := e.Velocity()
	return &length, &velocity
}

func (d *Document) Encode(kind Kind) ([]byte, error) {
	if kind == JSON {
		return json.MarshalIndent(d, "", "  ")
	}
	return yaml.Marshal(d)
}
