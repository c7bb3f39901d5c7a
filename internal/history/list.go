package history

// Capacity is the maximum number of entries a List keeps.
const Capacity = 10

// List holds entries newest first. It is not safe for concurrent use; the
// UI mutates it only from its update loop.
type List struct {
	entries []*Entry
	cap     int
}

// NewList returns an empty list holding at most Capacity entries.
func NewList() *List {
	return &List{cap: Capacity}
}

// Push inserts e at the head. If that takes the list past capacity the
// oldest entry is removed and returned.
func (l *List) Push(e *Entry) (evicted *Entry) {
	l.entries = append([]*Entry{e}, l.entries...)
	if len(l.entries) > l.cap {
		evicted = l.entries[len(l.entries)-1]
		l.entries[len(l.entries)-1] = nil
		l.entries = l.entries[:len(l.entries)-1]
	}
	return evicted
}

// Resolve marks the entry with the given ID as translated. It returns false
// when no such entry is in the list or it has already settled.
func (l *List) Resolve(id, output string) bool {
	return l.settle(id, Resolved, output)
}

// Fail marks the entry with the given ID as failed with message.
func (l *List) Fail(id, message string) bool {
	return l.settle(id, Failed, message)
}

func (l *List) settle(id string, state State, output string) bool {
	e := l.Get(id)
	if e == nil || e.Settled() {
		return false
	}
	e.State = state
	e.Output = output
	return true
}

// Get returns the entry with the given ID, or nil once it has been evicted.
func (l *List) Get(id string) *Entry {
	for _, e := range l.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Entries returns the entries newest first. The slice must not be modified.
func (l *List) Entries() []*Entry {
	return l.entries
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Empty reports whether the list has no entries.
func (l *List) Empty() bool {
	return len(l.entries) == 0
}

// Pending returns the number of entries still waiting for a result.
func (l *List) Pending() int {
	n := 0
	for _, e := range l.entries {
		if !e.Settled() {
			n++
		}
	}
	return n
}
