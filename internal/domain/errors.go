package domain

import "errors"

var (
	// ErrInvalidConfig is returned when generation counts are out of range.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidTopologyInput is returned when a pair generator is built over
	// fewer than two entities or over a set containing duplicates.
	ErrInvalidTopologyInput = errors.New("invalid topology input")

	// ErrUnknownTopology is returned for topology names outside complete, ring and random.
	ErrUnknownTopology = errors.New("unknown topology")

	// ErrUnknownProtocol is returned for protocol names outside cdp, isis, lldp and ospf.
	ErrUnknownProtocol = errors.New("unknown protocol")
)
