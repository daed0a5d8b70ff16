package advisor

import "sync"

// maxHistoryTurns caps the rolling conversation log. Oldest turns are
// discarded first; the window exists for continuity, not semantic memory.
const maxHistoryTurns = 20

// History is a bounded rolling log of exchanged messages. Appends and reads
// are mutex-guarded because the HTTP server handles requests concurrently.
type History struct {
	mu    sync.Mutex
	turns []Turn
}

// NewHistory creates an empty conversation history.
func NewHistory() *History {
	return &History{}
}

// AppendExchange records a user/assistant pair and trims to the window.
func (h *History) AppendExchange(userMessage, assistantMessage string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.turns = append(h.turns,
		Turn{Role: RoleUser, Content: userMessage},
		Turn{Role: RoleAssistant, Content: assistantMessage},
	)

	if len(h.turns) > maxHistoryTurns {
		h.turns = h.turns[len(h.turns)-maxHistoryTurns:]
	}
}

// Turns returns a copy of the current window, oldest first.
func (h *History) Turns() []Turn {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out
}

// Len returns the number of turns in the window.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.turns)
}

// Reset clears the history. Idempotent.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = nil
}
