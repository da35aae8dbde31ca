package protocol

import (
	"context"
	"fmt"

	"topogen/internal/domain"
	"topogen/internal/repository"
)

// IsIs synthesizes IS-IS elements and adjacencies
type IsIs struct{}

func (i *IsIs) Protocol() domain.Protocol {
	return domain.ProtocolIsIs
}

func (i *IsIs) Synthesize(s *Session, network *domain.Network, plan Plan) error {
	nodes, err := leadingNodes(network, plan)
	if err != nil {
		return err
	}

	elements := make([]*domain.IsIsElement, 0, len(nodes))
	for _, node := range nodes {
		elements = append(elements, domain.NewIsIsElement(node, s.Now()))
	}
	network.IsIsElements = elements

	links := make([]*domain.IsIsLink, 0, 2*plan.Pairs)
	err = linkPairs(s, plan, elements,
		func(e *domain.IsIsElement) *domain.Node { return e.Node },
		func(index, a, b int, left, right *domain.IsIsElement) error {
			links = append(links,
				domain.NewIsIsLink(a, left.Node, index, right.SysID, s.Now()),
				domain.NewIsIsLink(b, right.Node, index, left.SysID, s.Now()))
			return nil
		})
	if err != nil {
		return fmt.Errorf("failed to link isis elements: %w", err)
	}
	network.IsIsLinks = links
	return nil
}

func (i *IsIs) PersistElements(ctx context.Context, p repository.Persister, network *domain.Network) error {
	return p.PersistIsIsElements(ctx, network.IsIsElements)
}

func (i *IsIs) PersistLinks(ctx context.Context, p repository.Persister, network *domain.Network) error {
	return p.PersistIsIsLinks(ctx, network.IsIsLinks)
}
