package buffer

// Ring is a ring buffer keeping the last x values.
type Ring struct {
	index  int
	count  int
	values []float64
}

// NewRing creates a new ring with the given buffer size.
func NewRing(size int) *Ring {
	return &Ring{
		values: make([]float64, size),
	}
}

// Size returns the number of values within the ring.
func (r *Ring) Size() int {
	if r.count < len(r.values) {
		return r.count
	}
	return len(r.values)
}

// Push adds a value to the ring, overwriting the oldest one if the ring is full.
func (r *Ring) Push(v float64) {
	if len(r.values) == 0 {
		return
	}
	r.values[r.index] = v
	r.index = r.next(r.index)
	r.count++
}

func (r *Ring) next(index int) int {
	return (index + 1) % len(r.values)
}

// Get returns the values of the ring, oldest first.
func (r *Ring) Get() []float64 {
	l := r.Size()
	v := make([]float64, l)
	start := 0
	if r.count > len(r.values) {
		start = r.index
	}
	for i := 0; i < l; i++ {
		v[i] = r.values[(start+i)%len(r.values)]
	}
	return v
}
