package domain

// Histogram maps n-gram keys to occurrence counts.
// Keys remember the order in which they were first added so that
// ranking ties resolve deterministically.
type Histogram struct {
	n      int
	counts map[string]int
	order  []string
	total  int
}

// NewHistogram creates an empty histogram for n-grams of length n.
func NewHistogram(n int) *Histogram {
	return &Histogram{
		n:      n,
		counts: make(map[string]int),
	}
}

// Add increments the count of key by one.
func (h *Histogram) Add(key string) {
	if _, ok := h.counts[key]; !ok {
		h.order = append(h.order, key)
	}
	h.counts[key]++
	h.total++
}

// N returns the n-gram length the histogram was built for.
func (h *Histogram) N() int {
	return h.n
}

// Count returns the count for key, or 0 if absent.
func (h *Histogram) Count(key string) int {
	return h.counts[key]
}

// Len returns the number of distinct keys.
func (h *Histogram) Len() int {
	return len(h.order)
}

// Total returns the sum of all counts.
func (h *Histogram) Total() int {
	return h.total
}

// Keys returns the distinct keys in first-occurrence order.
func (h *Histogram) Keys() []string {
	keys := make([]string, len(h.order))
	copy(keys, h.order)
	return keys
}

// Entries returns every (key, count) pair in first-occurrence order.
func (h *Histogram) Entries() []Entry {
	entries := make([]Entry, len(h.order))
	for i, key := range h.order {
		entries[i] = Entry{Key: key, Count: h.counts[key]}
	}
	return entries
}

// Counts returns a copy of the key to count mapping.
func (h *Histogram) Counts() map[string]int {
	out := make(map[string]int, len(h.counts))
	for k, v := range h.counts {
		out[k] = v
	}
	return out
}

// IsEmpty returns true if no n-gram was counted.
func (h *Histogram) IsEmpty() bool {
	return h.total == 0
}

// Entry is a single ranked n-gram.
type Entry struct {
	Key   string `json:"ngram"`
	Count int    `json:"count"`
}
