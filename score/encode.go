package score

import (
	"fmt"
	"io"
	"math"

	"github.com/sriramreddydwarampudi/sridaw/midi"
	"github.com/sriramreddydwarampudi/sridaw/util"
	"golang.org/x/exp/slices"
)

const FormatMIDI = "midi"

type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %q", e.Format)
}

// RangeError reports a value that strict encoding refused to clamp.
type RangeError struct {
	Element Element
	Field   string
	Value   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %s %v out of range", e.Element, e.Field, e.Value)
}

type encodeConfig struct {
	strict bool
}

type EncodeOption func(*encodeConfig)

// Strict makes the encoder fail with a *RangeError instead of clamping
// pitches, velocities, negative lengths and oversized deltas.
func Strict() EncodeOption {
	return func(c *encodeConfig) {
		c.strict = true
	}
}

// Write encodes the stream in the given format and stores it at path. Only
// "midi" is supported.
func (s *Stream) Write(format string, path string, opts ...EncodeOption) error {
	if format != FormatMIDI {
		return &UnsupportedFormatError{Format: format}
	}
	data, err := s.EncodeMIDI(opts...)
	if err != nil {
		return err
	}
	return midi.WriteFile(path, data)
}

func (s *Stream) WriteMIDI(w io.Writer, opts ...EncodeOption) error {
	data, err := s.EncodeMIDI(opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// EncodeMIDI renders the stream as a format 0 Standard MIDI File with
// midi.TicksPerQuarter resolution. Notes and chords are emitted in offset
// order, ties in storage order; markers are skipped. The stream is not
// modified.
func (s *Stream) EncodeMIDI(opts ...EncodeOption) ([]byte, error) {
	var cfg encodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var sounding []Element
	for _, e := range s.elements {
		switch e.(type) {
		case *Note, *Chord:
			sounding = append(sounding, e)
		case *MetronomeMark, *Dynamic:
		default:
			panic(fmt.Sprintf("unknown stream element %T", e))
		}
	}
	slices.SortStableFunc(sounding, func(a, b Element) bool {
		return a.Offset() < b.Offset()
	})

	enc := encoder{cfg: cfg, track: midi.NewTrack()}
	for _, e := range sounding {
		var err error
		switch v := e.(type) {
		case *Note:
			err = enc.note(v)
		case *Chord:
			err = enc.chord(v)
		}
		if err != nil {
			return nil, err
		}
	}
	return enc.track.Bytes()
}

type encoder struct {
	cfg      encodeConfig
	track    *midi.Track
	lastTick int64
}

func toTicks(quarterLength float64) int64 {
	return int64(math.Round(quarterLength * midi.TicksPerQuarter))
}

func (enc *encoder) timing(e Sounding) (offsetTicks, durationTicks int64, err error) {
	ql := e.Length().QuarterLength
	if ql < 0 {
		if enc.cfg.strict {
			return 0, 0, &RangeError{Element: e, Field: "quarterLength", Value: ql}
		}
		ql = 0
	}
	return toTicks(e.Offset()), toTicks(ql), nil
}

func (enc *encoder) delta(e Element, ticks int64) (uint32, error) {
	if enc.cfg.strict && ticks > midi.MaxVLQ {
		return 0, &RangeError{Element: e, Field: "delta", Value: float64(ticks)}
	}
	return uint32(util.Clamp(ticks, 0, midi.MaxVLQ)), nil
}

func (enc *encoder) key(e Element, p Pitch) (uint8, error) {
	if enc.cfg.strict && (p.midi < 0 || p.midi > midi.MaxValue) {
		return 0, &RangeError{Element: e, Field: "pitch", Value: float64(p.midi)}
	}
	return uint8(util.Clamp(p.midi, 0, midi.MaxValue)), nil
}

// velocity is never 0 in a note-on, which would read as a note-off.
func (enc *encoder) velocity(e Element, v Volume) (uint8, error) {
	if enc.cfg.strict && (v.Velocity < 1 || v.Velocity > midi.MaxValue) {
		return 0, &RangeError{Element: e, Field: "velocity", Value: float64(v.Velocity)}
	}
	return uint8(util.Clamp(v.Velocity, 1, midi.MaxValue)), nil
}

func (enc *encoder) note(n *Note) error {
	offsetTicks, durationTicks, err := enc.timing(n)
	if err != nil {
		return err
	}
	key, err := enc.key(n, n.Pitch)
	if err != nil {
		return err
	}
	vel, err := enc.velocity(n, n.Volume)
	if err != nil {
		return err
	}
	onDelta, err := enc.delta(n, offsetTicks-enc.lastTick)
	if err != nil {
		return err
	}
	offDelta, err := enc.delta(n, durationTicks)
	if err != nil {
		return err
	}

	enc.track.NoteOn(onDelta, key, vel)
	enc.track.NoteOff(offDelta, key)
	enc.lastTick = offsetTicks + durationTicks
	return nil
}

// chord uses the chord's own length and velocity for every member. Only the
// first note-on and the first note-off carry a delta.
func (enc *encoder) chord(c *Chord) error {
	if len(c.Notes) == 0 {
		return nil
	}
	offsetTicks, durationTicks, err := enc.timing(c)
	if err != nil {
		return err
	}
	vel, err := enc.velocity(c, c.Volume)
	if err != nil {
		return err
	}
	keys := make([]uint8, len(c.Notes))
	for i, n := range c.Notes {
		if keys[i], err = enc.key(c, n.Pitch); err != nil {
			return err
		}
	}
	onDelta, err := enc.delta(c, offsetTicks-enc.lastTick)
	if err != nil {
		return err
	}
	offDelta, err := enc.delta(c, durationTicks)
	if err != nil {
		return err
	}

	for i, key := range keys {
		if i == 0 {
			enc.track.NoteOn(onDelta, key, vel)
		} else {
			enc.track.NoteOn(0, key, vel)
		}
	}
	for i, key := range keys {
		if i == 0 {
			enc.track.NoteOff(offDelta, key)
		} else {
			enc.track.NoteOff(0, key)
		}
	}
	enc.lastTick = offsetTicks + durationTicks
	return nil
}
