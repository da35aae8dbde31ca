package protocol

import (
	"context"
	"fmt"

	"topogen/internal/domain"
	"topogen/internal/repository"
)

// chassisIDPrefix precedes the random part of every LLDP chassis id
const chassisIDPrefix = "lLdpChassisId"

// Lldp synthesizes LLDP elements and remote table entries
type Lldp struct{}

func (l *Lldp) Protocol() domain.Protocol {
	return domain.ProtocolLldp
}

func (l *Lldp) Synthesize(s *Session, network *domain.Network, plan Plan) error {
	nodes, err := leadingNodes(network, plan)
	if err != nil {
		return err
	}

	elements := make([]*domain.LldpElement, 0, len(nodes))
	for _, node := range nodes {
		elements = append(elements, domain.NewLldpElement(node, chassisIDPrefix+s.NewUUID(), s.Now()))
	}
	network.LldpElements = elements

	links := make([]*domain.LldpLink, 0, 2*plan.Pairs)
	err = linkPairs(s, plan, elements,
		func(e *domain.LldpElement) *domain.Node { return e.Node },
		func(_, a, b int, left, right *domain.LldpElement) error {
			port := domain.LldpPort{ID: s.NewUUID(), SubType: domain.LldpPortIDSubTypeMacAddress}
			remote := domain.LldpPort{ID: s.NewUUID(), SubType: domain.LldpPortIDSubTypeMacAddress}
			links = append(links,
				domain.NewLldpLink(a, left.Node, port, remote, right.ChassisID, s.Now()),
				domain.NewLldpLink(b, right.Node, remote, port, left.ChassisID, s.Now()))
			return nil
		})
	if err != nil {
		return fmt.Errorf("failed to link lldp elements: %w", err)
	}
	network.LldpLinks = links
	return nil
}

func (l *Lldp) PersistElements(ctx context.Context, p repository.Persister, network *domain.Network) error {
	return p.PersistLldpElements(ctx, network.LldpElements)
}

func (l *Lldp) PersistLinks(ctx context.Context, p repository.Persister, network *domain.Network) error {
	return p.PersistLldpLinks(ctx, network.LldpLinks)
}
