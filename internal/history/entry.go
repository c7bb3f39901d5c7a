package history

import (
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle state of an entry's translation.
type State int

const (
	// Pending means the translation request is still in flight.
	Pending State = iota
	// Resolved means the server returned a translation.
	Resolved
	// Failed means the request failed; Output holds the message to show.
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// TimestampLayout formats entry timestamps as 24h HH:MM:SS.
const TimestampLayout = "15:04:05"

// Entry is one submitted text plus its eventual translation.
type Entry struct {
	ID        string
	Original  string
	Timestamp string
	// Output is empty while Pending, the translated text when Resolved and
	// the user-facing error message when Failed.
	Output string
	State  State
}

// NewEntry creates a Pending entry for text submitted at now.
func NewEntry(text string, now time.Time) *Entry {
	return &Entry{
		ID:        uuid.NewString(),
		Original:  text,
		Timestamp: now.Format(TimestampLayout),
		State:     Pending,
	}
}

// Settled reports whether the entry has left the Pending state.
func (e *Entry) Settled() bool {
	return e.State != Pending
}
