package score

// Element is anything a Stream can hold. The set of implementations is
// closed: *Note, *Chord, *MetronomeMark and *Dynamic.
type Element interface {
	Offset() float64
	setOffset(offset float64)
}

// Sounding is an element that has a length and produces MIDI events.
type Sounding interface {
	Element
	Length() Duration
	Velocity() int
}
