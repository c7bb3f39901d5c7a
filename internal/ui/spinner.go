package ui

import (
	"fmt"
	"image/color"
	"io"
	"sync"
	"time"

	"charm.land/lipgloss/v2"
)

var (
	rainFrames = []string{"☁  ", "🌦 ", "🌧 ", "🌧 ", "🌦 "}
	rainFPS    = time.Second / 6
)

// Spinner is a line-mode loading indicator for commands that run without the
// interactive widget. It redraws a single line on w from its own goroutine
// until Stop is called.
type Spinner struct {
	w       io.Writer
	message string
	frames  []string
	fps     time.Duration
	color   color.Color
	done    chan struct{}
	exited  chan struct{}
	started sync.Once
	stopped sync.Once
}

// NewSpinner creates a spinner that writes message to w.
func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{
		w:       w,
		message: message,
		frames:  rainFrames,
		fps:     rainFPS,
		color:   GetTheme().Rain,
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
}

// Start begins the animation. Calls after the first are no-ops.
func (s *Spinner) Start() {
	s.started.Do(func() { go s.run() })
}

// Stop ends the animation and clears the line. It returns once the line is
// cleared, so output written afterwards is not overdrawn. Stopping a spinner
// that never started returns at once and writes nothing.
func (s *Spinner) Stop() {
	s.started.Do(func() { close(s.exited) })
	s.stopped.Do(func() { close(s.done) })
	<-s.exited
}

func (s *Spinner) run() {
	defer close(s.exited)

	frameStyle := lipgloss.NewStyle().Foreground(s.color)
	messageStyle := StyleMuted(GetTheme())

	ticker := time.NewTicker(s.fps)
	defer ticker.Stop()

	var frame int
	for {
		select {
		case <-s.done:
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-ticker.C:
			f := s.frames[frame%len(s.frames)]
			fmt.Fprintf(s.w, "\r%s %s", frameStyle.Render(f), messageStyle.Render(s.message))
			frame++
		}
	}
}
