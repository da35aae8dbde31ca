package protocol

import (
	"context"
	"fmt"

	"topogen/internal/domain"
	"topogen/internal/repository"
)

// Cdp synthesizes CDP elements and cache entries
type Cdp struct{}

func (c *Cdp) Protocol() domain.Protocol {
	return domain.ProtocolCdp
}

func (c *Cdp) Synthesize(s *Session, network *domain.Network, plan Plan) error {
	nodes, err := leadingNodes(network, plan)
	if err != nil {
		return err
	}

	elements := make([]*domain.CdpElement, 0, len(nodes))
	for _, node := range nodes {
		elements = append(elements, domain.NewCdpElement(node, s.Now()))
	}
	network.CdpElements = elements

	links := make([]*domain.CdpLink, 0, 2*plan.Pairs)
	err = linkPairs(s, plan, elements,
		func(e *domain.CdpElement) *domain.Node { return e.Node },
		func(_, a, b int, left, right *domain.CdpElement) error {
			source := domain.NewCdpLink(a, left.Node, s.NewUUID(), s.NewUUID(), right.GlobalDeviceID, s.Now())
			// the target sees the source's ports from the other side
			target := domain.NewCdpLink(b, right.Node, source.CacheDevicePort, source.InterfaceName, left.GlobalDeviceID, s.Now())
			links = append(links, source, target)
			return nil
		})
	if err != nil {
		return fmt.Errorf("failed to link cdp elements: %w", err)
	}
	network.CdpLinks = links
	return nil
}

func (c *Cdp) PersistElements(ctx context.Context, p repository.Persister, network *domain.Network) error {
	return p.PersistCdpElements(ctx, network.CdpElements)
}

func (c *Cdp) PersistLinks(ctx context.Context, p repository.Persister, network *domain.Network) error {
	return p.PersistCdpLinks(ctx, network.CdpLinks)
}
