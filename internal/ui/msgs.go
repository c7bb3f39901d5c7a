package ui

import "github.com/mark3labs/raindrop/internal/translate"

// thresholdMsg fires submitDelay after the input first reached Threshold
// characters. gen ties it to the input session it was scheduled in.
type thresholdMsg struct {
	gen  int
	text string
}

// completeClearMsg ends the progress bar's "complete" mark. Only the most
// recently scheduled clear (matching seq) takes effect.
type completeClearMsg struct {
	seq int
}

// translatedMsg carries the outcome of one submission back to its entry.
type translatedMsg struct {
	id     string
	output string
	err    error
}

// hintMsg advances the startup hint to phase.
type hintMsg struct {
	phase hintPhase
}

// healthMsg reports the startup health probe.
type healthMsg struct {
	health translate.Health
	err    error
}
