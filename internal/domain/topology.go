package domain

import (
	"fmt"
	"strings"
)

// Topology is the macro shape governing which entities get paired
type Topology string

const (
	TopologyComplete Topology = "complete"
	TopologyRing     Topology = "ring"
	TopologyRandom   Topology = "random"
)

// Topologies lists every supported topology in CLI help order
var Topologies = []Topology{TopologyComplete, TopologyRing, TopologyRandom}

// ParseTopology converts a name into a Topology
func ParseTopology(s string) (Topology, error) {
	t := Topology(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TopologyComplete, TopologyRing, TopologyRandom:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q (complete | ring | random)", ErrUnknownTopology, s)
}

func (t Topology) String() string {
	return string(t)
}

// Protocol is the discovery protocol whose links get synthesized
type Protocol string

const (
	ProtocolCdp  Protocol = "cdp"
	ProtocolIsIs Protocol = "isis"
	ProtocolLldp Protocol = "lldp"
	ProtocolOspf Protocol = "ospf"
)

// Protocols lists every supported protocol in CLI help order
var Protocols = []Protocol{ProtocolCdp, ProtocolIsIs, ProtocolLldp, ProtocolOspf}

// ParseProtocol converts a name into a Protocol
func ParseProtocol(s string) (Protocol, error) {
	p := Protocol(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case ProtocolCdp, ProtocolIsIs, ProtocolLldp, ProtocolOspf:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q (cdp | isis | lldp | ospf)", ErrUnknownProtocol, s)
}

func (p Protocol) String() string {
	return string(p)
}

// HasElements reports whether the protocol attaches a discovery element to each node.
// OSPF pairs nodes directly.
func (p Protocol) HasElements() bool {
	return p != ProtocolOspf
}
