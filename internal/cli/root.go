// Package cli provides the command-line interface for topogen.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"topogen/internal/config"
	"topogen/internal/domain"
	"topogen/internal/generator"
	"topogen/internal/logger"
	"topogen/internal/logger/console"
	"topogen/internal/metrics"
)

// options holds the raw flag values; only flags the user set override the config
type options struct {
	configPath     string
	debug          bool
	nodes          int
	elements       int
	links          int
	topology       string
	protocol       string
	snmpInterfaces int
	ipInterfaces   int
	delete         bool
	seed           int64
	pollTime       string
	driver         string
	dsn            string
	format         string
	metricsOut     string
}

// NewRootCommand creates the topogen command with its subcommands
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "topogen",
		Short: "Generate synthetic network topologies for load testing",
		Long: `topogen creates nodes, discovery elements and mirrored link pairs ` +
			`for CDP, IS-IS, LLDP or OSPF in a complete, ring or random shape ` +
			`and writes them to SQLite, PostgreSQL or a YAML/JSON file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(console.New(console.Params{Debug: opts.debug, Output: cmd.ErrOrStderr()}))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default: $TOPOGEN_CONFIG, ./topogen.yaml, ~/.config/topogen/config.yaml)")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	pf.StringVar(&opts.driver, "db-driver", "sqlite", "persistence driver (sqlite | postgres | file)")
	pf.StringVar(&opts.dsn, "db-dsn", "", "sqlite path, postgres url or output file (- for stdout)")
	pf.StringVar(&opts.format, "format", "yaml", "output format of the file driver (yaml | json)")

	f := cmd.Flags()
	f.IntVar(&opts.nodes, "nodes", config.DefaultNodes, "generate <N> nodes")
	f.IntVar(&opts.elements, "elements", -1, "generate <N> elements (default: nodes)")
	f.IntVar(&opts.links, "links", -1, "generate <N> links (default: elements² - elements)")
	f.StringVar(&opts.topology, "topology", string(domain.TopologyRandom), "type of topology (complete | ring | random)")
	f.StringVar(&opts.protocol, "protocol", string(domain.ProtocolCdp), "type of protocol (cdp | isis | lldp | ospf)")
	f.IntVar(&opts.snmpInterfaces, "snmpinterfaces", 0, "generate <N> snmp interfaces")
	f.IntVar(&opts.ipInterfaces, "ipinterfaces", 0, "generate <N> ip interfaces")
	f.BoolVar(&opts.delete, "delete", false, "delete existing topology before generating")
	f.Int64Var(&opts.seed, "seed", 42, "seed of the random topology and identities")
	f.StringVar(&opts.pollTime, "poll-time", "", "RFC 3339 timestamp stamped on every entity (default: now)")
	f.StringVar(&opts.metricsOut, "metrics-out", "", "write prometheus metrics to this textfile")

	cmd.AddCommand(newPurgeCommand(opts))
	cmd.AddCommand(newConfigCommand())
	return cmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, config file, environment and changed flags
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	config.LoadEnv()

	var (
		cfg  *config.Config
		path string
		err  error
	)
	if opts.configPath != "" {
		cfg, path, err = config.LoadFromPath(opts.configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}

	cfg.ApplyEnv()
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	g := &cfg.Generation

	if changed("debug") {
		cfg.Debug = opts.debug
	}
	if changed("nodes") {
		g.Nodes = opts.nodes
	}
	if changed("elements") {
		g.Elements = opts.elements
	}
	if changed("links") {
		g.Links = opts.links
	}
	if changed("topology") {
		t, err := domain.ParseTopology(opts.topology)
		if err != nil {
			return err
		}
		g.Topology = t
	}
	if changed("protocol") {
		p, err := domain.ParseProtocol(opts.protocol)
		if err != nil {
			return err
		}
		g.Protocol = p
	}
	if changed("snmpinterfaces") {
		g.SnmpInterfaces = opts.snmpInterfaces
	}
	if changed("ipinterfaces") {
		g.IpInterfaces = opts.ipInterfaces
	}
	if changed("delete") {
		g.Delete = opts.delete
	}
	if changed("seed") {
		g.Seed = opts.seed
	}
	if changed("poll-time") {
		t, err := time.Parse(time.RFC3339, opts.pollTime)
		if err != nil {
			return fmt.Errorf("%w: poll-time: %w", domain.ErrInvalidConfig, err)
		}
		g.PollTime = t
	}
	if changed("db-driver") {
		cfg.Database.Driver = opts.driver
	}
	if changed("db-dsn") {
		cfg.Database.DSN = opts.dsn
	}
	if changed("format") {
		cfg.Output.Format = opts.format
	}
	if changed("metrics-out") {
		cfg.Metrics.Textfile = opts.metricsOut
	}
	return nil
}

func runGenerate(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if cfg.Debug {
		logger.Init(console.New(console.Params{Debug: true, Output: cmd.ErrOrStderr()}))
	}
	logger.Debug("configuration", "summary", cfg.Summary())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	persister, err := openPersister(ctx, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	registry := metrics.NewRegistry()
	bus := generator.NewEventBus()
	events := make(chan generator.Event, 32)
	bus.Subscribe(events)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range events {
			if e.Type == generator.EventBatchPersisted {
				logger.Info("persisted", "batch", e.Batch, "count", e.Count)
			}
		}
	}()

	_, runErr := generator.New(persister, generator.WithMetrics(registry), generator.WithEventBus(bus)).
		Run(ctx, cfg.Generation)
	close(events)
	<-done

	if runErr == nil {
		logCounts(ctx, persister)
	}
	if err := persister.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to close %s persister: %w", cfg.Database.Driver, err)
	}

	if cfg.Metrics.Textfile != "" {
		if err := registry.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn("failed to write metrics", "path", cfg.Metrics.Textfile, "error", err)
		}
	}
	return runErr
}
