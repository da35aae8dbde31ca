package topology

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"topogen/internal/domain"
)

// distinctInts turns a size into the elements 0..n-1
func distinctInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// TestPairGeneratorProperties checks the invariants every shape must hold
func TestPairGeneratorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	for _, shape := range domain.Topologies {
		shape := shape

		properties.Property(string(shape)+" never pairs an element with itself", prop.ForAll(
			func(n int, calls int, seed int64) bool {
				g, err := New(shape, distinctInts(n), seed)
				if err != nil {
					return false
				}
				for i := 0; i < calls; i++ {
					p := g.Next()
					if p.Left == p.Right {
						return false
					}
				}
				return true
			},
			gen.IntRange(2, 40),
			gen.IntRange(1, 500),
			gen.Int64(),
		))

		properties.Property(string(shape)+" is deterministic", prop.ForAll(
			func(n int, seed int64) bool {
				a, errA := New(shape, distinctInts(n), seed)
				b, errB := New(shape, distinctInts(n), seed)
				if errA != nil || errB != nil {
					return false
				}
				for i := 0; i < 3*n; i++ {
					if a.Next() != b.Next() {
						return false
					}
				}
				return true
			},
			gen.IntRange(2, 30),
			gen.Int64(),
		))
	}

	properties.Property("complete covers every pair before repeating", prop.ForAll(
		func(n int) bool {
			g, err := NewCompleteGenerator(distinctInts(n))
			if err != nil {
				return false
			}
			seen := make(map[Pair[int]]bool)
			for i := 0; i < g.Len(); i++ {
				p := g.Next()
				if seen[p] || p.Left >= p.Right {
					return false
				}
				seen[p] = true
			}
			return len(seen) == n*(n-1)/2 && g.Next() == Pair[int]{Left: 0, Right: 1}
		},
		gen.IntRange(2, 30),
	))

	properties.Property("ring visits each element once as left side", prop.ForAll(
		func(n int) bool {
			g, err := NewRingGenerator(distinctInts(n))
			if err != nil {
				return false
			}
			for i := 0; i < n; i++ {
				p := g.Next()
				if p.Left != i || p.Right != (i+1)%n {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 50),
	))

	properties.TestingRun(t)
}
