package ilfmt

// DefaultRingCapacity bounds the number of stringified temporaries a single
// [Str] call keeps alive at once: one slot per non-trivial argument.
const DefaultRingCapacity = 16

// ring is a bounded scratch buffer of owned strings. A slot's contents stay
// valid until capacity further puts reuse it. Each Str call owns its own
// ring, so slots never alias across calls.
type ring struct {
	slots []string
	idx   int
}

func newRing(capacity int) *ring {
	return &ring{slots: make([]string, capacity)}
}

// put assigns s into the current slot, advances the cursor modulo capacity,
// and returns the slot's contents.
func (r *ring) put(s string) string {
	r.slots[r.idx] = s
	r.idx = (r.idx + 1) % len(r.slots)
	return s
}
