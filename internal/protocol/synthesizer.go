package protocol

import (
	"context"
	"fmt"

	"topogen/internal/domain"
	"topogen/internal/logger"
	"topogen/internal/repository"
	"topogen/internal/topology"
)

// Plan describes what a synthesizer has to add to a network
type Plan struct {
	Topology domain.Topology
	// Elements is the number of leading nodes that get a protocol element
	Elements int
	// Pairs is the number of pairs drawn, each one becoming two links
	Pairs int
}

// PairsFor returns how many pairs produce at least amountLinks link halves
func PairsFor(amountLinks int) int {
	return amountLinks/2 + amountLinks%2
}

// Synthesizer creates and persists the protocol specific part of a network
type Synthesizer interface {
	Protocol() domain.Protocol

	// Synthesize adds elements and links for the network's nodes
	Synthesize(s *Session, network *domain.Network, plan Plan) error

	PersistElements(ctx context.Context, p repository.Persister, network *domain.Network) error
	PersistLinks(ctx context.Context, p repository.Persister, network *domain.Network) error
}

// For returns the synthesizer of a protocol
func For(protocol domain.Protocol) (Synthesizer, error) {
	switch protocol {
	case domain.ProtocolCdp:
		return &Cdp{}, nil
	case domain.ProtocolIsIs:
		return &IsIs{}, nil
	case domain.ProtocolLldp:
		return &Lldp{}, nil
	case domain.ProtocolOspf:
		return &Ospf{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProtocol, protocol)
	}
}

// mirrorFunc builds both halves of the adjacency between left and right.
// index is the zero based pair number, a and b the link ids of the halves.
type mirrorFunc[E comparable] func(index, a, b int, left, right E) error

// linkPairs draws plan.Pairs pairs over elements and mirrors each of them
func linkPairs[E comparable](s *Session, plan Plan, elements []E, node func(E) *domain.Node, mirror mirrorFunc[E]) error {
	pairs, err := topology.New(plan.Topology, elements, s.Seed())
	if err != nil {
		return err
	}

	for i := 0; i < plan.Pairs; i++ {
		pair := pairs.Next()
		a, b := s.NextLinkID(), s.NextLinkID()
		if err := mirror(i, a, b, pair.Left, pair.Right); err != nil {
			return err
		}
		logger.Debug("Linked node", "source", node(pair.Left).Label, "target", node(pair.Right).Label)
	}
	return nil
}

// leadingNodes returns the nodes that get an element
func leadingNodes(network *domain.Network, plan Plan) ([]*domain.Node, error) {
	if plan.Elements > len(network.Nodes) {
		return nil, fmt.Errorf("%w: %d elements requested for %d nodes",
			domain.ErrInvalidConfig, plan.Elements, len(network.Nodes))
	}
	return network.Nodes[:plan.Elements], nil
}
