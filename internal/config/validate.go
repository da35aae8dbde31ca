package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"topogen/internal/domain"
)

// validate is a singleton validator instance
var validate = validator.New()

// Validate checks the whole configuration.
// Generation counts are resolved first so that -1 defaults pass.
func (c *Config) Validate() error {
	c.Generation.Resolve()

	if err := c.Generation.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Resolve replaces the -1 defaults: elements equal nodes and links become
// elements² - elements, enough for every ordered pair of a complete topology
func (g *Generation) Resolve() {
	if g.Elements == -1 {
		g.Elements = g.Nodes
	}
	if g.Links == -1 {
		g.Links = g.Elements*g.Elements - g.Elements
	}
}

// Validate checks the generation counts, in the order the errors are reported
func (g *Generation) Validate() error {
	if _, err := domain.ParseTopology(string(g.Topology)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	if _, err := domain.ParseProtocol(string(g.Protocol)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	checks := []struct {
		message  string
		expected int
		actual   int
	}{
		{"we need at least as many nodes as elements", g.Elements, g.Nodes},
		{"we need at least 2 nodes", 2, g.Nodes},
		{"we need at least 2 elements", 2, g.Elements},
		{"we need at least 1 link", 1, g.Links},
		{"we need a non negative amount of snmp interfaces", 0, g.SnmpInterfaces},
		{"we need a non negative amount of ip interfaces", 0, g.IpInterfaces},
	}
	for _, c := range checks {
		if c.actual < c.expected {
			return fmt.Errorf("%w: %s minimum expected=%d but found actual=%d",
				domain.ErrInvalidConfig, c.message, c.expected, c.actual)
		}
	}

	limits := []struct {
		message  string
		expected int
		actual   int
	}{
		{"we need at most %d nodes", MaxNodes, g.Nodes},
		{"we need at most %d links", MaxLinks, g.Links},
	}
	for _, l := range limits {
		if l.actual > l.expected {
			return fmt.Errorf("%w: %s maximum expected=%d but found actual=%d",
				domain.ErrInvalidConfig, fmt.Sprintf(l.message, l.expected), l.expected, l.actual)
		}
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// report the first failure only
	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%w: %s: field is required", domain.ErrInvalidConfig, field)
		case "min":
			return fmt.Errorf("%w: %s: must be at least %s", domain.ErrInvalidConfig, field, e.Param())
		case "oneof":
			return fmt.Errorf("%w: %s: must be one of %s, got %v", domain.ErrInvalidConfig, field, e.Param(), e.Value())
		default:
			return fmt.Errorf("%w: %s: validation failed (%s)", domain.ErrInvalidConfig, field, e.Tag())
		}
	}
	return err
}
