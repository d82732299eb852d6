package score

// Articulation is an inert performance marking attached to a Note.
type Articulation string

const (
	Staccato Articulation = "staccato"
	Legato   Articulation = "legato"
)
