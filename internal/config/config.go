// Package config provides configuration management for topogen.
//
// Values are layered: defaults, then the config file, then environment,
// then command line flags.
//
// Config file locations (priority order):
//  1. $TOPOGEN_CONFIG
//  2. ./topogen.yaml
//  3. $XDG_CONFIG_HOME/topogen/config.yaml
//  4. ~/.config/topogen/config.yaml
//  5. /etc/topogen/config.yaml
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"topogen/internal/domain"
	"topogen/internal/topology"
)

const (
	DefaultNodes          = 10
	DefaultDatabasePath   = "./topogen.db"
	DefaultConnectTimeout = 10 * time.Second

	// MaxNodes keeps the default link count, nodes² - nodes, below MaxLinks
	MaxNodes = 1 << 15
	// MaxLinks bounds the link records of one run
	MaxLinks = 1 << 30
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the defaults of the command line tool
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Generation: Generation{
			Topology: domain.TopologyRandom,
			Protocol: domain.ProtocolCdp,
			Nodes:    DefaultNodes,
			Elements: -1,
			Links:    -1,
			Seed:     topology.DefaultSeed,
		},
		Database: DatabaseConfig{
			Driver:         "sqlite",
			ConnectTimeout: Duration(DefaultConnectTimeout),
		},
		Output: OutputConfig{Format: "yaml"},
	}
}

// applyDefaults fills in values the file left empty
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Generation.Topology == "" {
		c.Generation.Topology = domain.TopologyRandom
	}
	if c.Generation.Protocol == "" {
		c.Generation.Protocol = domain.ProtocolCdp
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.ConnectTimeout == 0 {
		c.Database.ConnectTimeout = Duration(DefaultConnectTimeout)
	}
	if c.Output.Format == "" {
		c.Output.Format = "yaml"
	}
}

// DatabaseDSN returns the configured DSN or the default of the driver:
// the sqlite file path, or stdout for the file driver
func (c *Config) DatabaseDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	switch c.Database.Driver {
	case "sqlite":
		return DefaultDatabasePath
	case "file":
		return "-"
	}
	return ""
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	g := c.Generation
	return fmt.Sprintf("%s %s topology, nodes=%d elements=%d links=%d seed=%d, driver=%s",
		g.Topology, g.Protocol, g.Nodes, g.Elements, g.Links, g.Seed, c.Database.Driver)
}
