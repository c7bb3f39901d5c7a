package ui

import "time"

// hintPhase is the lifecycle of the instructional hint shown to new users.
type hintPhase int

const (
	hintPending hintPhase = iota
	hintFadingIn
	hintShown
	hintFadingOut
	hintRemoved
)

const (
	hintDelay   = time.Second
	hintFadeIn  = 100 * time.Millisecond
	hintLife    = 5 * time.Second
	hintFadeOut = 300 * time.Millisecond
)

// visible reports whether the hint occupies screen space in this phase.
func (p hintPhase) visible() bool {
	return p == hintFadingIn || p == hintShown || p == hintFadingOut
}

// faded reports whether the hint is mid-transition and drawn dimmed.
func (p hintPhase) faded() bool {
	return p == hintFadingIn || p == hintFadingOut
}
