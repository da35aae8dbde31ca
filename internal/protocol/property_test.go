package protocol

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"topogen/internal/domain"
)

// TestLinkProperties checks that every protocol writes two halves per pair
// with unique ids that point at each other
func TestLinkProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)

	for _, p := range domain.Protocols {
		p := p
		properties.Property(string(p)+" links come in mirrored pairs", prop.ForAll(
			func(nodes, pairs, shape int) bool {
				syn, err := For(p)
				if err != nil {
					return false
				}
				topology := domain.Topologies[shape]
				network := newNetwork(p, topology, nodes)
				err = syn.Synthesize(NewSession(42, polled), network, Plan{
					Topology: topology,
					Elements: nodes,
					Pairs:    pairs,
				})
				if err != nil {
					return false
				}

				links := network.Links()
				if len(links) != 2*pairs {
					return false
				}
				seen := make(map[int]bool, len(links))
				for i, l := range links {
					if l.LinkID() != i || seen[l.LinkID()] {
						return false
					}
					seen[l.LinkID()] = true
				}
				for i := 0; i < len(links); i += 2 {
					if links[i].NodeID() == links[i+1].NodeID() {
						return false
					}
				}
				return true
			},
			gen.IntRange(2, 12),
			gen.IntRange(1, 60),
			gen.IntRange(0, len(domain.Topologies)-1),
		))
	}

	properties.TestingRun(t)
}
