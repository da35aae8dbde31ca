package generator

import (
	"context"
	"fmt"
	"time"

	"topogen/internal/config"
	"topogen/internal/domain"
	"topogen/internal/logger"
	"topogen/internal/metrics"
	"topogen/internal/protocol"
	"topogen/internal/repository"
)

// Generator runs generations against one persister
type Generator struct {
	persister repository.Persister
	metrics   *metrics.Registry
	events    *EventBus
	now       func() time.Time
}

// Option configures a Generator
type Option func(*Generator)

// WithMetrics records entity counts and batch timings in r
func WithMetrics(r *metrics.Registry) Option {
	return func(g *Generator) { g.metrics = r }
}

// WithEventBus publishes progress events on bus
func WithEventBus(bus *EventBus) Option {
	return func(g *Generator) { g.events = bus }
}

// New creates a generator persisting to p
func New(p repository.Persister, opts ...Option) *Generator {
	g := &Generator{
		persister: p,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Build creates the complete network in memory.
// cfg is resolved and validated first, no entity is created for invalid input.
func Build(cfg config.Generation, s *protocol.Session) (*domain.Network, error) {
	cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	synthesizer, err := protocol.For(cfg.Protocol)
	if err != nil {
		return nil, err
	}
	return build(cfg, synthesizer, s)
}

// build expects a resolved and validated cfg
func build(cfg config.Generation, synthesizer protocol.Synthesizer, s *protocol.Session) (*domain.Network, error) {
	network := domain.NewNetwork(cfg.Topology, cfg.Protocol)
	network.Location = domain.DefaultLocation()
	network.Nodes = CreateNodes(cfg.Nodes, network.Location)

	plan := protocol.Plan{
		Topology: cfg.Topology,
		Elements: cfg.Elements,
		Pairs:    protocol.PairsFor(cfg.Links),
	}
	if err := synthesizer.Synthesize(s, network, plan); err != nil {
		return nil, err
	}

	network.SnmpInterfaces = CreateSnmpInterfaces(network.Nodes, cfg.SnmpInterfaces, s.Now())
	ipInterfaces, err := CreateIpInterfaces(network.SnmpInterfaces, cfg.IpInterfaces, s.Now())
	if err != nil {
		return nil, err
	}
	network.IpInterfaces = ipInterfaces

	return network, nil
}

// Run generates a network and persists it batch by batch
func (g *Generator) Run(ctx context.Context, cfg config.Generation) (*domain.Network, error) {
	start := time.Now()

	cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	synthesizer, err := protocol.For(cfg.Protocol)
	if err != nil {
		return nil, err
	}

	if cfg.Delete {
		if err := g.Purge(ctx); err != nil {
			return nil, err
		}
	}

	logger.Info(fmt.Sprintf("creating %s %s topology", cfg.Topology, cfg.Protocol),
		"nodes", cfg.Nodes,
		"elements", cfg.Elements,
		"links", cfg.Links,
		"snmpInterfaces", cfg.SnmpInterfaces,
		"ipInterfaces", cfg.IpInterfaces)

	polled := cfg.PollTime
	if polled.IsZero() {
		polled = g.now()
	}
	network, err := build(cfg, synthesizer, protocol.NewSession(cfg.Seed, polled))
	if err != nil {
		return nil, err
	}
	g.events.Publish(Event{Type: EventNetworkBuilt, Count: len(network.Nodes)})
	g.recordEntities(network)

	steps := []struct {
		batch string
		count int
		fn    func() error
	}{
		{"nodes", len(network.Nodes), func() error { return g.persister.PersistNodes(ctx, network.Nodes) }},
		{"elements", network.ElementCount(), func() error { return synthesizer.PersistElements(ctx, g.persister, network) }},
		{"snmpinterfaces", len(network.SnmpInterfaces), func() error { return g.persister.PersistSnmpInterfaces(ctx, network.SnmpInterfaces) }},
		{"ipinterfaces", len(network.IpInterfaces), func() error { return g.persister.PersistIpInterfaces(ctx, network.IpInterfaces) }},
		{"links", network.LinkCount(), func() error { return synthesizer.PersistLinks(ctx, g.persister, network) }},
	}
	for _, step := range steps {
		if !cfg.Protocol.HasElements() && step.batch == "elements" {
			continue
		}
		if err := g.persist(step.batch, step.count, step.fn); err != nil {
			return nil, err
		}
	}

	if g.metrics != nil {
		g.metrics.RecordRun(time.Since(start))
	}
	logger.Info("created "+network.Summary(), "duration", time.Since(start).Round(time.Millisecond))
	return network, nil
}

// Purge removes all previously generated entities
func (g *Generator) Purge(ctx context.Context) error {
	if err := g.persist("delete", 0, func() error { return g.persister.DeleteTopology(ctx) }); err != nil {
		return err
	}
	logger.Info("deleted existing topology")
	g.events.Publish(Event{Type: EventTopologyDeleted})
	return nil
}

func (g *Generator) persist(batch string, count int, fn func() error) error {
	start := time.Now()
	err := fn()
	if g.metrics != nil {
		g.metrics.RecordPersist(batch, time.Since(start), err)
	}
	if err != nil {
		return fmt.Errorf("failed to persist %s: %w", batch, err)
	}

	if batch != "delete" {
		g.events.Publish(Event{Type: EventBatchPersisted, Batch: batch, Count: count})
	}
	return nil
}

func (g *Generator) recordEntities(n *domain.Network) {
	if g.metrics == nil {
		return
	}
	g.metrics.RecordEntities("node", len(n.Nodes))
	if n.Protocol.HasElements() {
		g.metrics.RecordEntities(string(n.Protocol)+"element", n.ElementCount())
	}
	g.metrics.RecordEntities(string(n.Protocol)+"link", n.LinkCount())
	g.metrics.RecordEntities("snmpinterface", len(n.SnmpInterfaces))
	g.metrics.RecordEntities("ipinterface", len(n.IpInterfaces))
}
