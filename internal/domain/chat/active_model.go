package chat

import "sync/atomic"

// ModelCell owns the process-wide active model identifier. Reads and writes
// go through an atomic swap; concurrent updates are last-write-wins, which is
// acceptable because a stale model id costs at most one extra failed call
// before fallback.
type ModelCell struct {
	value atomic.Value
}

func NewModelCell(initial string) *ModelCell {
	cell := &ModelCell{}
	cell.value.Store(initial)
	return cell
}

// Get returns the currently active model identifier.
func (m *ModelCell) Get() string {
	return m.value.Load().(string)
}

// Set replaces the active model identifier. The new value must be non-empty.
func (m *ModelCell) Set(model string) {
	if model == "" {
		return
	}
	m.value.Store(model)
}
