package store

import "sort"

// history is a bounded buffer of recent change events kept ordered by the
// start of their time span. Once full, the oldest entry is dropped on insert.
// Single-goroutine ownership, like the store that owns it.
type history struct {
	data   []TimeBoundedEvent
	maxLen int
}

func newHistory(maxLen int) *history {
	return &history{
		data:   make([]TimeBoundedEvent, 0, maxLen),
		maxLen: maxLen,
	}
}

func (h *history) insert(e TimeBoundedEvent) {
	idx := sort.Search(len(h.data), func(i int) bool {
		return e.TimeSpan.Start().Before(h.data[i].TimeSpan.Start())
	})

	h.data = append(h.data, e)
	copy(h.data[idx+1:], h.data[idx:])
	h.data[idx] = e

	if len(h.data) > h.maxLen {
		h.data = h.data[1:]
	}
}

func (h *history) recent() []TimeBoundedEvent {
	out := make([]TimeBoundedEvent, len(h.data))
	copy(out, h.data)
	return out
}
