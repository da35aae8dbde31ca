// Package file implements a dry-run persister: batches are collected in
// memory and the whole network is written through a codec on Close.
package file

import (
	"context"
	"fmt"
	"io"
	"os"

	"topogen/internal/codec"
	"topogen/internal/domain"
)

// Persister collects batches into a network and exports it on Close
type Persister struct {
	network  *domain.Network
	exporter codec.Exporter
	open     func() (io.WriteCloser, error)
}

// New creates a persister writing to path, "-" meaning stdout
func New(path string, exporter codec.Exporter, topology domain.Topology, protocol domain.Protocol) *Persister {
	return NewWriter(func() (io.WriteCloser, error) {
		if path == "" || path == "-" {
			return nopCloser{os.Stdout}, nil
		}
		return os.Create(path)
	}, exporter, topology, protocol)
}

// NewWriter creates a persister writing to the writer returned by open
func NewWriter(open func() (io.WriteCloser, error), exporter codec.Exporter, topology domain.Topology, protocol domain.Protocol) *Persister {
	return &Persister{
		network:  domain.NewNetwork(topology, protocol),
		exporter: exporter,
		open:     open,
	}
}

// Network returns what has been persisted so far
func (p *Persister) Network() *domain.Network {
	return p.network
}

// DeleteTopology drops everything collected so far
func (p *Persister) DeleteTopology(ctx context.Context) error {
	p.network = domain.NewNetwork(p.network.Topology, p.network.Protocol)
	return nil
}

func (p *Persister) PersistNodes(ctx context.Context, nodes []*domain.Node) error {
	p.network.Nodes = append(p.network.Nodes, nodes...)
	if p.network.Location == nil && len(nodes) > 0 {
		p.network.Location = nodes[0].Location
	}
	return nil
}

func (p *Persister) PersistCdpElements(ctx context.Context, elements []*domain.CdpElement) error {
	p.network.CdpElements = append(p.network.CdpElements, elements...)
	return nil
}

func (p *Persister) PersistIsIsElements(ctx context.Context, elements []*domain.IsIsElement) error {
	p.network.IsIsElements = append(p.network.IsIsElements, elements...)
	return nil
}

func (p *Persister) PersistLldpElements(ctx context.Context, elements []*domain.LldpElement) error {
	p.network.LldpElements = append(p.network.LldpElements, elements...)
	return nil
}

func (p *Persister) PersistCdpLinks(ctx context.Context, links []*domain.CdpLink) error {
	p.network.CdpLinks = append(p.network.CdpLinks, links...)
	return nil
}

func (p *Persister) PersistIsIsLinks(ctx context.Context, links []*domain.IsIsLink) error {
	p.network.IsIsLinks = append(p.network.IsIsLinks, links...)
	return nil
}

func (p *Persister) PersistLldpLinks(ctx context.Context, links []*domain.LldpLink) error {
	p.network.LldpLinks = append(p.network.LldpLinks, links...)
	return nil
}

func (p *Persister) PersistOspfLinks(ctx context.Context, links []*domain.OspfLink) error {
	p.network.OspfLinks = append(p.network.OspfLinks, links...)
	return nil
}

func (p *Persister) PersistSnmpInterfaces(ctx context.Context, interfaces []*domain.SnmpInterface) error {
	p.network.SnmpInterfaces = append(p.network.SnmpInterfaces, interfaces...)
	return nil
}

func (p *Persister) PersistIpInterfaces(ctx context.Context, interfaces []*domain.IpInterface) error {
	p.network.IpInterfaces = append(p.network.IpInterfaces, interfaces...)
	return nil
}

// Counts reports collected entities keyed like the SQL tables
func (p *Persister) Counts(ctx context.Context) (map[string]int, error) {
	n := p.network
	return map[string]int{
		"node":          len(n.Nodes),
		"cdpelement":    len(n.CdpElements),
		"isiselement":   len(n.IsIsElements),
		"lldpelement":   len(n.LldpElements),
		"cdplink":       len(n.CdpLinks),
		"isislink":      len(n.IsIsLinks),
		"lldplink":      len(n.LldpLinks),
		"ospflink":      len(n.OspfLinks),
		"snmpinterface": len(n.SnmpInterfaces),
		"ipinterface":   len(n.IpInterfaces),
	}, nil
}

// Close exports the collected network
func (p *Persister) Close() error {
	w, err := p.open()
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}

	if err := p.exporter.Export(p.network, w); err != nil {
		w.Close()
		return err
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
