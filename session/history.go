package session

import (
	"sync"
	"time"
)

// Turn is one exchange in the UI chat history.
type Turn struct {
	Role      string
	Text      string
	Timestamp time.Time
}

// History is the append-only chat turn log for one session. It is cleared
// only by an explicit Reset.
// threadsafe
type History struct {
	turns []Turn
	mtx   sync.RWMutex
}

func NewHistory() *History {
	return &History{}
}

// Append records one turn.
func (h *History) Append(role, text string) {
	h.mtx.Lock()
	h.turns = append(h.turns, Turn{Role: role, Text: text, Timestamp: time.Now()})
	h.mtx.Unlock()
}

// Turns returns a copy of the recorded turns in order.
func (h *History) Turns() []Turn {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	turns := make([]Turn, len(h.turns))
	copy(turns, h.turns)
	return turns
}

// Len returns the number of recorded turns.
func (h *History) Len() int {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	return len(h.turns)
}

// Reset clears the history for a new session.
func (h *History) Reset() {
	h.mtx.Lock()
	h.turns = nil
	h.mtx.Unlock()
}
