package repository

import (
	"context"

	"topogen/internal/domain"
)

// Persister stores the batches of a generated network.
// Each call receives one fully built batch; implementations do not retry.
type Persister interface {
	// DeleteTopology removes all previously generated entities
	DeleteTopology(ctx context.Context) error

	PersistNodes(ctx context.Context, nodes []*domain.Node) error

	// Elements
	PersistCdpElements(ctx context.Context, elements []*domain.CdpElement) error
	PersistIsIsElements(ctx context.Context, elements []*domain.IsIsElement) error
	PersistLldpElements(ctx context.Context, elements []*domain.LldpElement) error

	// Links
	PersistCdpLinks(ctx context.Context, links []*domain.CdpLink) error
	PersistIsIsLinks(ctx context.Context, links []*domain.IsIsLink) error
	PersistLldpLinks(ctx context.Context, links []*domain.LldpLink) error
	PersistOspfLinks(ctx context.Context, links []*domain.OspfLink) error

	// Interfaces
	PersistSnmpInterfaces(ctx context.Context, interfaces []*domain.SnmpInterface) error
	PersistIpInterfaces(ctx context.Context, interfaces []*domain.IpInterface) error

	// Close releases resources
	Close() error
}

// Counter is implemented by persisters that can report stored row counts
type Counter interface {
	Counts(ctx context.Context) (map[string]int, error)
}
