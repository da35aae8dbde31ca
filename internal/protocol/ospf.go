package protocol

import (
	"context"
	"fmt"
	"net/netip"

	"topogen/internal/domain"
	"topogen/internal/repository"
)

// Ospf synthesizes OSPF neighbour links directly between nodes.
// OSPF has no element table.
type Ospf struct{}

func (o *Ospf) Protocol() domain.Protocol {
	return domain.ProtocolOspf
}

func (o *Ospf) Synthesize(s *Session, network *domain.Network, plan Plan) error {
	links := make([]*domain.OspfLink, 0, 2*plan.Pairs)
	err := linkPairs(s, plan, network.Nodes,
		func(n *domain.Node) *domain.Node { return n },
		func(_, a, b int, left, right *domain.Node) error {
			ip, err := s.NextAddress()
			if err != nil {
				return err
			}
			remIP, err := s.NextAddress()
			if err != nil {
				return err
			}

			source, err := o.link(s, a, left, ip, remIP)
			if err != nil {
				return err
			}
			target, err := o.link(s, b, right, remIP, ip)
			if err != nil {
				return err
			}
			links = append(links, source, target)
			return nil
		})
	if err != nil {
		return fmt.Errorf("failed to link ospf nodes: %w", err)
	}
	network.OspfLinks = links
	return nil
}

// link draws the mask and router id of one half
func (o *Ospf) link(s *Session, id int, node *domain.Node, ip, remIP netip.Addr) (*domain.OspfLink, error) {
	mask, err := s.NextAddress()
	if err != nil {
		return nil, err
	}
	routerID, err := s.NextAddress()
	if err != nil {
		return nil, err
	}
	return domain.NewOspfLink(id, node, ip, remIP, mask, routerID, s.Now()), nil
}

// PersistElements is a no-op, OSPF links reference nodes directly
func (o *Ospf) PersistElements(ctx context.Context, p repository.Persister, network *domain.Network) error {
	return nil
}

func (o *Ospf) PersistLinks(ctx context.Context, p repository.Persister, network *domain.Network) error {
	return p.PersistOspfLinks(ctx, network.OspfLinks)
}
