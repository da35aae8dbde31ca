package topology

import (
	"fmt"

	"topogen/internal/domain"
)

// DefaultSeed seeds the random generator unless the caller picks another one
const DefaultSeed int64 = 42

// Pair is an ordered tuple of two distinct entities
type Pair[E comparable] struct {
	Left  E
	Right E
}

// PairGenerator produces pairs for one topology shape.
// Next may be called any number of times.
type PairGenerator[E comparable] interface {
	Next() Pair[E]
}

// New creates the pair generator for the given topology
func New[E comparable](topology domain.Topology, elements []E, seed int64) (PairGenerator[E], error) {
	switch topology {
	case domain.TopologyComplete:
		return NewCompleteGenerator(elements)
	case domain.TopologyRing:
		return NewRingGenerator(elements)
	case domain.TopologyRandom:
		return NewRandomGenerator(elements, seed)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTopology, topology)
	}
}

// validate checks that elements can be paired
func validate[E comparable](elements []E) error {
	if len(elements) < 2 {
		return fmt.Errorf("%w: need at least 2 elements in list to make a pair, got %d",
			domain.ErrInvalidTopologyInput, len(elements))
	}

	seen := make(map[E]struct{}, len(elements))
	for i, e := range elements {
		if _, ok := seen[e]; ok {
			return fmt.Errorf("%w: list contains a duplicate at index %d", domain.ErrInvalidTopologyInput, i)
		}
		seen[e] = struct{}{}
	}
	return nil
}

// clone copies elements so later changes by the caller do not leak in
func clone[E comparable](elements []E) []E {
	out := make([]E, len(elements))
	copy(out, elements)
	return out
}
