package topology

import "math/rand"

// RandomGenerator pairs elements randomly but never an element with itself.
// The source is seeded explicitly so a run can be reproduced.
type RandomGenerator[E comparable] struct {
	elements []E
	random   *rand.Rand
}

// NewRandomGenerator creates a random generator seeded with seed
func NewRandomGenerator[E comparable](elements []E, seed int64) (*RandomGenerator[E], error) {
	if err := validate(elements); err != nil {
		return nil, err
	}
	return &RandomGenerator[E]{
		elements: clone(elements),
		random:   rand.New(rand.NewSource(seed)),
	}, nil
}

// Next draws a left element, then redraws the right one until it differs
func (g *RandomGenerator[E]) Next() Pair[E] {
	left := g.randomIndex()
	right := g.randomIndex()
	for right == left {
		right = g.randomIndex()
	}
	return Pair[E]{Left: g.elements[left], Right: g.elements[right]}
}

func (g *RandomGenerator[E]) randomIndex() int {
	return g.random.Intn(len(g.elements))
}
