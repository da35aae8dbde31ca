package domain

import "fmt"

// Network is the complete in-memory dataset of one generation run
type Network struct {
	Topology Topology            `json:"topology" yaml:"topology"`
	Protocol Protocol            `json:"protocol" yaml:"protocol"`
	Location *MonitoringLocation `json:"location" yaml:"location"`
	Nodes    []*Node             `json:"nodes" yaml:"nodes"`

	CdpElements  []*CdpElement  `json:"cdp_elements,omitempty" yaml:"cdp_elements,omitempty"`
	IsIsElements []*IsIsElement `json:"isis_elements,omitempty" yaml:"isis_elements,omitempty"`
	LldpElements []*LldpElement `json:"lldp_elements,omitempty" yaml:"lldp_elements,omitempty"`

	CdpLinks  []*CdpLink  `json:"cdp_links,omitempty" yaml:"cdp_links,omitempty"`
	IsIsLinks []*IsIsLink `json:"isis_links,omitempty" yaml:"isis_links,omitempty"`
	LldpLinks []*LldpLink `json:"lldp_links,omitempty" yaml:"lldp_links,omitempty"`
	OspfLinks []*OspfLink `json:"ospf_links,omitempty" yaml:"ospf_links,omitempty"`

	SnmpInterfaces []*SnmpInterface `json:"snmp_interfaces,omitempty" yaml:"snmp_interfaces,omitempty"`
	IpInterfaces   []*IpInterface   `json:"ip_interfaces,omitempty" yaml:"ip_interfaces,omitempty"`
}

// NewNetwork creates an empty network for the given shape and protocol
func NewNetwork(topology Topology, protocol Protocol) *Network {
	return &Network{
		Topology: topology,
		Protocol: protocol,
		Nodes:    make([]*Node, 0),
	}
}

// ElementCount returns the number of protocol elements, whatever the protocol
func (n *Network) ElementCount() int {
	return len(n.CdpElements) + len(n.IsIsElements) + len(n.LldpElements)
}

// Links returns every link half in generation order
func (n *Network) Links() []Link {
	links := make([]Link, 0, n.LinkCount())
	for _, l := range n.CdpLinks {
		links = append(links, l)
	}
	for _, l := range n.IsIsLinks {
		links = append(links, l)
	}
	for _, l := range n.LldpLinks {
		links = append(links, l)
	}
	for _, l := range n.OspfLinks {
		links = append(links, l)
	}
	return links
}

// LinkCount returns the number of link halves, whatever the protocol
func (n *Network) LinkCount() int {
	return len(n.CdpLinks) + len(n.IsIsLinks) + len(n.LldpLinks) + len(n.OspfLinks)
}

// Summary returns a one-line description of the network
func (n *Network) Summary() string {
	return fmt.Sprintf("%s %s topology with %d Nodes, %d Elements, %d Links, %d SnmpInterfaces, %d IpInterfaces",
		n.Topology, n.Protocol, len(n.Nodes), n.ElementCount(), n.LinkCount(),
		len(n.SnmpInterfaces), len(n.IpInterfaces))
}
