package topology

// RingGenerator links every element to its successor in input order and the
// last element back to the first. After n pairs it starts over.
type RingGenerator[E comparable] struct {
	elements []E
	next     int
}

// NewRingGenerator creates a ring generator
func NewRingGenerator[E comparable](elements []E) (*RingGenerator[E], error) {
	if err := validate(elements); err != nil {
		return nil, err
	}
	return &RingGenerator[E]{elements: clone(elements)}, nil
}

// Next returns the next neighbour pair
func (g *RingGenerator[E]) Next() Pair[E] {
	n := len(g.elements)
	pair := Pair[E]{Left: g.elements[g.next], Right: g.elements[(g.next+1)%n]}
	g.next = (g.next + 1) % n
	return pair
}

// Len returns the number of distinct pairs before the sequence repeats
func (g *RingGenerator[E]) Len() int {
	return len(g.elements)
}
