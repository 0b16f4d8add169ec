package domain

import "strings"

// PlaybackState is the single "currently playing" slot of a page.
//
// The zero value is closed. Opening a video while another one is open
// replaces it; there is never more than one session.
type PlaybackState struct {
	id string
}

// Open sets the playing video, replacing any previous one.
func (s *PlaybackState) Open(id string) { s.id = id }

// Close clears the playing video.
func (s *PlaybackState) Close() { s.id = "" }

// Current returns the playing video id, if any.
func (s PlaybackState) Current() (string, bool) { return s.id, s.id != "" }

// IsOpen reports whether a video is playing.
func (s PlaybackState) IsOpen() bool { return s.id != "" }

// PlaybackFromQuery resolves the raw "play" query value against the catalog.
// Malformed or unknown ids yield a closed state.
func PlaybackFromQuery(cat *Catalog, raw string) PlaybackState {
	var state PlaybackState

	id := strings.TrimSpace(raw)
	if id == "" || cat == nil {
		return state
	}
	if ValidateExternalID(id) != nil {
		return state
	}
	if _, _, ok := cat.FindVideo(id); !ok {
		return state
	}

	state.Open(id)
	return state
}
