package buffer

// History is an append-only float log that keeps every element in the order it was added.
type History struct {
	values []float64
}

// NewHistory creates a new empty history.
func NewHistory() *History {
	return &History{
		values: make([]float64, 0),
	}
}

// Push appends an element to the history.
func (h *History) Push(x float64) {
	h.values = append(h.values, x)
}

// Len returns the number of elements pushed so far.
func (h *History) Len() int {
	return len(h.values)
}

// Get returns the history elements in the order they were added.
// The returned slice is a copy.
func (h *History) Get() []float64 {
	vv := make([]float64, len(h.values))
	copy(vv, h.values)
	return vv
}
