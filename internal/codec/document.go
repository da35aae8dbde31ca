package codec

import "topogen/internal/domain"

// document is the exported shape of a network. Entities carry the id of the
// node they belong to instead of a pointer.
type document struct {
	Topology       domain.Topology            `json:"topology,omitempty" yaml:"topology,omitempty"`
	Protocol       domain.Protocol            `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	Location       *domain.MonitoringLocation `json:"location,omitempty" yaml:"location,omitempty"`
	Nodes          []node                     `json:"nodes" yaml:"nodes"`
	CdpElements    []cdpElement               `json:"cdp_elements,omitempty" yaml:"cdp_elements,omitempty"`
	IsIsElements   []isisElement              `json:"isis_elements,omitempty" yaml:"isis_elements,omitempty"`
	LldpElements   []lldpElement              `json:"lldp_elements,omitempty" yaml:"lldp_elements,omitempty"`
	CdpLinks       []cdpLink                  `json:"cdp_links,omitempty" yaml:"cdp_links,omitempty"`
	IsIsLinks      []isisLink                 `json:"isis_links,omitempty" yaml:"isis_links,omitempty"`
	LldpLinks      []lldpLink                 `json:"lldp_links,omitempty" yaml:"lldp_links,omitempty"`
	OspfLinks      []ospfLink                 `json:"ospf_links,omitempty" yaml:"ospf_links,omitempty"`
	SnmpInterfaces []snmpInterface            `json:"snmp_interfaces,omitempty" yaml:"snmp_interfaces,omitempty"`
	IpInterfaces   []ipInterface              `json:"ip_interfaces,omitempty" yaml:"ip_interfaces,omitempty"`
}

type node struct {
	domain.Node `yaml:",inline"`
	Location    string `json:"location" yaml:"location"`
}

type cdpElement struct {
	NodeID            int `json:"node_id" yaml:"node_id"`
	domain.CdpElement `yaml:",inline"`
}

type isisElement struct {
	NodeID             int `json:"node_id" yaml:"node_id"`
	domain.IsIsElement `yaml:",inline"`
}

type lldpElement struct {
	NodeID             int `json:"node_id" yaml:"node_id"`
	domain.LldpElement `yaml:",inline"`
}

type cdpLink struct {
	NodeID         int `json:"node_id" yaml:"node_id"`
	domain.CdpLink `yaml:",inline"`
}

type isisLink struct {
	NodeID          int `json:"node_id" yaml:"node_id"`
	domain.IsIsLink `yaml:",inline"`
}

type lldpLink struct {
	NodeID          int `json:"node_id" yaml:"node_id"`
	domain.LldpLink `yaml:",inline"`
}

type ospfLink struct {
	NodeID          int `json:"node_id" yaml:"node_id"`
	domain.OspfLink `yaml:",inline"`
}

type snmpInterface struct {
	NodeID               int `json:"node_id" yaml:"node_id"`
	domain.SnmpInterface `yaml:",inline"`
}

type ipInterface struct {
	NodeID             int `json:"node_id" yaml:"node_id"`
	domain.IpInterface `yaml:",inline"`
}

// newDocument converts a network into its exported shape
func newDocument(n *domain.Network) *document {
	doc := &document{
		Topology: n.Topology,
		Protocol: n.Protocol,
		Location: n.Location,
		Nodes:    make([]node, 0, len(n.Nodes)),
	}

	for _, v := range n.Nodes {
		doc.Nodes = append(doc.Nodes, node{Node: *v, Location: v.LocationName()})
	}
	for _, v := range n.CdpElements {
		doc.CdpElements = append(doc.CdpElements, cdpElement{NodeID: v.Node.ID, CdpElement: *v})
	}
	for _, v := range n.IsIsElements {
		doc.IsIsElements = append(doc.IsIsElements, isisElement{NodeID: v.Node.ID, IsIsElement: *v})
	}
	for _, v := range n.LldpElements {
		doc.LldpElements = append(doc.LldpElements, lldpElement{NodeID: v.Node.ID, LldpElement: *v})
	}
	for _, v := range n.CdpLinks {
		doc.CdpLinks = append(doc.CdpLinks, cdpLink{NodeID: v.Node.ID, CdpLink: *v})
	}
	for _, v := range n.IsIsLinks {
		doc.IsIsLinks = append(doc.IsIsLinks, isisLink{NodeID: v.Node.ID, IsIsLink: *v})
	}
	for _, v := range n.LldpLinks {
		doc.LldpLinks = append(doc.LldpLinks, lldpLink{NodeID: v.Node.ID, LldpLink: *v})
	}
	for _, v := range n.OspfLinks {
		doc.OspfLinks = append(doc.OspfLinks, ospfLink{NodeID: v.Node.ID, OspfLink: *v})
	}
	for _, v := range n.SnmpInterfaces {
		doc.SnmpInterfaces = append(doc.SnmpInterfaces, snmpInterface{NodeID: v.Node.ID, SnmpInterface: *v})
	}
	for _, v := range n.IpInterfaces {
		doc.IpInterfaces = append(doc.IpInterfaces, ipInterface{NodeID: v.Node.ID, IpInterface: *v})
	}

	return doc
}
