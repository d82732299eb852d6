package score

// Stream is an ordered container of elements. Storage order is insertion
// order; offsets need not be sorted.
//
// A Stream does no locking. Callers that write from a background goroutine
// must not Append or Insert until the write returns, or should encode a
// Flat snapshot instead.
type Stream struct {
	elements []Element
	duration *Duration
}

func New() *Stream {
	return &Stream{}
}

// Append places e directly after the current end of the stream.
func (s *Stream) Append(e Element) {
	e.setOffset(s.Duration().QuarterLength)
	s.elements = append(s.elements, e)
	s.duration = nil
}

// Insert places e at an explicit offset in quarter notes. Elements may
// overlap or leave gaps.
func (s *Stream) Insert(offset float64, e Element) {
	e.setOffset(offset)
	s.elements = append(s.elements, e)
	s.duration = nil
}

// Duration is the furthest end point of any element: offset plus length
// for sounding elements, offset alone for markers.
func (s *Stream) Duration() Duration {
	if s.duration != nil {
		return *s.duration
	}

	var maxEnd float64
	for _, e := range s.elements {
		end := e.Offset()
		if snd, ok := e.(Sounding); ok {
			end += snd.Length().QuarterLength
		}
		if end > maxEnd {
			maxEnd = end
		}
	}
	d := NewDuration(maxEnd)
	s.duration = &d
	return d
}

func (s *Stream) Len() int {
	return len(s.elements)
}

// Elements returns the elements in storage order.
func (s *Stream) Elements() []Element {
	res := make([]Element, len(s.elements))
	copy(res, s.elements)
	return res
}

// Flat returns a view holding the same elements. Streams do not nest, so
// nothing is re-offset; the view keeps its own element list and is not
// affected by later Append or Insert calls on s.
func (s *Stream) Flat() *Stream {
	return &Stream{elements: s.Elements()}
}

func (s *Stream) Recurse() *Iterator {
	return &Iterator{stream: s}
}

// ElementsByClass returns the elements of s that have type T, in storage
// order.
func ElementsByClass[T Element](s *Stream) []T {
	var res []T
	for _, e := range s.elements {
		if v, ok := e.(T); ok {
			res = append(res, v)
		}
	}
	return res
}

// Iterator walks a stream's elements.
type Iterator struct {
	stream *Stream
}

// Notes returns the notes and chords of the stream in storage order.
func (it *Iterator) Notes() []Sounding {
	return ElementsByClass[Sounding](it.stream)
}
