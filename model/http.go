package model

import "github.com/sriramreddydwarampudi/sridaw/pianoroll"

type RenderResult struct {
	ID            string  `json:"id"`
	QuarterLength float64 `json:"quarter_length"`
	BPM           float64 `json:"bpm"`
	Seconds       float64 `json:"seconds"`
	Bytes         int     `json:"bytes"`
}

type PianoRollResponse struct {
	pianoroll.Roll
	BPM float64 `json:"bpm"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
