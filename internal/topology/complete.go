package topology

// CompleteGenerator enumerates all unordered pairs of a complete graph.
// For i < j it yields (elements[i], elements[j]) in lexicographic index
// order and restarts with the first pair once all n(n-1)/2 are consumed.
type CompleteGenerator[E comparable] struct {
	elements []E
	i, j     int
}

// NewCompleteGenerator creates a complete-graph generator
func NewCompleteGenerator[E comparable](elements []E) (*CompleteGenerator[E], error) {
	if err := validate(elements); err != nil {
		return nil, err
	}
	return &CompleteGenerator[E]{
		elements: clone(elements),
		i:        0,
		j:        1,
	}, nil
}

// Next returns the next unordered pair
func (g *CompleteGenerator[E]) Next() Pair[E] {
	pair := Pair[E]{Left: g.elements[g.i], Right: g.elements[g.j]}

	g.j++
	if g.j == len(g.elements) {
		g.i++
		g.j = g.i + 1
	}
	if g.j >= len(g.elements) {
		g.i, g.j = 0, 1
	}

	return pair
}

// Len returns the number of distinct pairs before the sequence repeats
func (g *CompleteGenerator[E]) Len() int {
	n := len(g.elements)
	return n * (n - 1) / 2
}
