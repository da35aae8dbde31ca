// Package domain defines the entities of a synthetic network topology.
//
// A generation run produces a Network: a set of nodes sharing one
// MonitoringLocation, protocol discovery elements attached 1:1 to nodes, and
// links. Links always come in mirrored pairs: for link A owned by node X that
// points at the identity of node Y there is a companion link B owned by Y
// that points back at X, with local and remote fields swapped.
//
// # Protocols
//
// Four discovery protocols are modelled: CDP, IS-IS and LLDP carry an element
// per node, OSPF links nodes directly and synthesizes IPv4 addresses instead.
//
// # Topologies
//
// Topology names the macro shape of the generated graph: a complete graph, a
// ring, or random pairs.
//
// # Design Principles
//
// - No database or external dependencies
// - Entities reference nodes, they never own them
// - Static placeholder values are constants, not configuration
package domain
