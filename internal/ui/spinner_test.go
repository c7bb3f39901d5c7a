package ui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer shared with the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_DrawsAndClears(t *testing.T) {
	var out syncBuffer
	s := NewSpinner(&out, "Translating...")
	s.fps = time.Millisecond

	s.Start()
	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(out.String(), "Translating...") {
		if time.Now().After(deadline) {
			t.Fatal("spinner never drew a frame")
		}
		time.Sleep(time.Millisecond)
	}
	s.Stop()

	if !strings.HasSuffix(out.String(), "\r\033[K") {
		t.Errorf("expected the line to be cleared on stop, got %q", out.String())
	}
}

func TestSpinner_StopTwice(t *testing.T) {
	s := NewSpinner(&syncBuffer{}, "x")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinner_StopWithoutStart(t *testing.T) {
	var out syncBuffer
	s := NewSpinner(&out, "x")

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked on a spinner that never started")
	}
	if out.String() != "" {
		t.Errorf("expected no output, got %q", out.String())
	}

	s.Start()
	s.Stop()
}
