package config

import (
	"time"

	"topogen/internal/domain"
)

// Config is the root configuration structure
type Config struct {
	Version    int            `yaml:"version"`
	Debug      bool           `yaml:"debug"`
	Generation Generation     `yaml:"generation"`
	Database   DatabaseConfig `yaml:"database"`
	Output     OutputConfig   `yaml:"output"`
	Metrics    MetricsConfig  `yaml:"metrics"`
}

// Generation holds the shape and size of the synthesized network.
// Elements and Links accept -1 for "derive from the other counts".
type Generation struct {
	Topology       domain.Topology `yaml:"topology" validate:"required,oneof=complete ring random"`
	Protocol       domain.Protocol `yaml:"protocol" validate:"required,oneof=cdp isis lldp ospf"`
	Nodes          int             `yaml:"nodes"`
	Elements       int             `yaml:"elements" validate:"min=-1"`
	Links          int             `yaml:"links" validate:"min=-1"`
	SnmpInterfaces int             `yaml:"snmp_interfaces" validate:"min=0"`
	IpInterfaces   int             `yaml:"ip_interfaces" validate:"min=0"`
	Delete         bool            `yaml:"delete"`
	Seed           int64           `yaml:"seed"`
	// PollTime stamps every entity, the current time when zero
	PollTime time.Time `yaml:"poll_time,omitempty"`
}

// DatabaseConfig selects where generated batches are persisted
type DatabaseConfig struct {
	Driver         string   `yaml:"driver" validate:"required,oneof=sqlite postgres file"`
	DSN            string   `yaml:"dsn"`
	ConnectTimeout Duration `yaml:"connect_timeout"`
}

// OutputConfig holds settings of the file driver
type OutputConfig struct {
	Format string `yaml:"format" validate:"required,oneof=yaml yml json"`
}

// MetricsConfig holds metric export settings
type MetricsConfig struct {
	// Textfile is written after the run when set
	Textfile string `yaml:"textfile"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
