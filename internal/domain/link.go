package domain

import (
	"net/netip"
	"time"
)

// CiscoNetworkProtocolType is the address family of a CDP cache entry
type CiscoNetworkProtocolType int

const (
	CiscoNetworkProtocolIP    CiscoNetworkProtocolType = 1
	CiscoNetworkProtocolChaos CiscoNetworkProtocolType = 17
)

// IsIsAdjState is the state of an IS-IS adjacency
type IsIsAdjState int

const (
	IsIsAdjStateDown IsIsAdjState = 1
	IsIsAdjStateUp   IsIsAdjState = 3
)

// IsIsAdjNeighSysType is the neighbour system type of an IS-IS adjacency
type IsIsAdjNeighSysType int

const (
	IsIsAdjNeighSysTypeL1IntermediateSystem IsIsAdjNeighSysType = 1
	IsIsAdjNeighSysTypeL2IntermediateSystem IsIsAdjNeighSysType = 2
)

// LldpPortIDSubType identifies how an LLDP port id is encoded
type LldpPortIDSubType int

const (
	LldpPortIDSubTypeInterfaceName LldpPortIDSubType = 5
	LldpPortIDSubTypeMacAddress    LldpPortIDSubType = 3
)

// Link is implemented by every protocol link half
type Link interface {
	LinkID() int
	NodeID() int
}

// CdpLink is one directed half of a CDP adjacency.
// CacheDeviceID is the remote element's global device id.
type CdpLink struct {
	ID                  int                      `json:"id" yaml:"id"`
	Node                *Node                    `json:"-" yaml:"-"`
	InterfaceName       string                   `json:"interface_name" yaml:"interface_name"`
	CacheDevicePort     string                   `json:"cache_device_port" yaml:"cache_device_port"`
	CacheDeviceID       string                   `json:"cache_device_id" yaml:"cache_device_id"`
	CacheAddressType    CiscoNetworkProtocolType `json:"cache_address_type" yaml:"cache_address_type"`
	CacheAddress        string                   `json:"cache_address" yaml:"cache_address"`
	CacheDeviceIndex    int                      `json:"cache_device_index" yaml:"cache_device_index"`
	CacheDevicePlatform string                   `json:"cache_device_platform" yaml:"cache_device_platform"`
	CacheIfIndex        int                      `json:"cache_if_index" yaml:"cache_if_index"`
	CacheVersion        string                   `json:"cache_version" yaml:"cache_version"`
	LastPollTime        time.Time                `json:"last_poll_time" yaml:"last_poll_time"`
}

// NewCdpLink creates a CDP link half with static cache attributes
func NewCdpLink(id int, node *Node, interfaceName, cacheDevicePort, cacheDeviceID string, polled time.Time) *CdpLink {
	return &CdpLink{
		ID:                  id,
		Node:                node,
		InterfaceName:       interfaceName,
		CacheDevicePort:     cacheDevicePort,
		CacheDeviceID:       cacheDeviceID,
		CacheAddressType:    CiscoNetworkProtocolChaos,
		CacheAddress:        "CdpCacheAddress",
		CacheDeviceIndex:    33,
		CacheDevicePlatform: "CdpCacheDevicePlatform",
		CacheIfIndex:        33,
		CacheVersion:        "CdpCacheVersion",
		LastPollTime:        polled,
	}
}

func (l *CdpLink) LinkID() int { return l.ID }
func (l *CdpLink) NodeID() int { return l.Node.ID }

// IsIsLink is one directed half of an IS-IS adjacency.
// AdjNeighSysID is the remote element's system id.
type IsIsLink struct {
	ID                   int                 `json:"id" yaml:"id"`
	Node                 *Node               `json:"-" yaml:"-"`
	AdjIndex             int                 `json:"adj_index" yaml:"adj_index"`
	AdjNeighSysID        string              `json:"adj_neigh_sys_id" yaml:"adj_neigh_sys_id"`
	CircIndex            int                 `json:"circ_index" yaml:"circ_index"`
	AdjState             IsIsAdjState        `json:"adj_state" yaml:"adj_state"`
	AdjNeighSNPAAddress  string              `json:"adj_neigh_snpa_address" yaml:"adj_neigh_snpa_address"`
	AdjNeighSysType      IsIsAdjNeighSysType `json:"adj_neigh_sys_type" yaml:"adj_neigh_sys_type"`
	AdjNbrExtendedCircID int                 `json:"adj_nbr_extended_circ_id" yaml:"adj_nbr_extended_circ_id"`
	CircIfIndex          int                 `json:"circ_if_index" yaml:"circ_if_index"`
	CircAdminState       IsIsAdminState      `json:"circ_admin_state" yaml:"circ_admin_state"`
	LastPollTime         time.Time           `json:"last_poll_time" yaml:"last_poll_time"`
}

// NewIsIsLink creates an IS-IS link half with static circuit attributes
func NewIsIsLink(id int, node *Node, adjIndex int, adjNeighSysID string, polled time.Time) *IsIsLink {
	return &IsIsLink{
		ID:                   id,
		Node:                 node,
		AdjIndex:             adjIndex,
		AdjNeighSysID:        adjNeighSysID,
		CircIndex:            3,
		AdjState:             IsIsAdjStateUp,
		AdjNeighSNPAAddress:  "isisISAdjNeighSNPAAddress",
		AdjNeighSysType:      IsIsAdjNeighSysTypeL1IntermediateSystem,
		AdjNbrExtendedCircID: 3,
		CircIfIndex:          3,
		CircAdminState:       IsIsAdminStateOn,
		LastPollTime:         polled,
	}
}

func (l *IsIsLink) LinkID() int { return l.ID }
func (l *IsIsLink) NodeID() int { return l.Node.ID }

// LldpPort is the port id half of an LLDP adjacency
type LldpPort struct {
	ID      string            `json:"id" yaml:"id"`
	SubType LldpPortIDSubType `json:"sub_type" yaml:"sub_type"`
}

// LldpLink is one directed half of an LLDP adjacency.
// RemChassisID is the remote element's chassis id.
type LldpLink struct {
	ID                  int                  `json:"id" yaml:"id"`
	Node                *Node                `json:"-" yaml:"-"`
	Port                LldpPort             `json:"port" yaml:"port"`
	RemPort             LldpPort             `json:"rem_port" yaml:"rem_port"`
	RemChassisID        string               `json:"rem_chassis_id" yaml:"rem_chassis_id"`
	RemChassisIDSubType LldpChassisIDSubType `json:"rem_chassis_id_sub_type" yaml:"rem_chassis_id_sub_type"`
	LocalPortNum        int                  `json:"local_port_num" yaml:"local_port_num"`
	PortIfIndex         int                  `json:"port_if_index" yaml:"port_if_index"`
	PortDescr           string               `json:"port_descr" yaml:"port_descr"`
	RemSysname          string               `json:"rem_sysname" yaml:"rem_sysname"`
	RemPortDescr        string               `json:"rem_port_descr" yaml:"rem_port_descr"`
	LastPollTime        time.Time            `json:"last_poll_time" yaml:"last_poll_time"`
}

// NewLldpLink creates an LLDP link half with static port attributes
func NewLldpLink(id int, node *Node, port, remPort LldpPort, remChassisID string, polled time.Time) *LldpLink {
	return &LldpLink{
		ID:           id,
		Node:         node,
		Port:         port,
		RemPort:      remPort,
		RemChassisID: remChassisID,
		// not relevant for link matching
		RemChassisIDSubType: LldpChassisIDSubTypeChassisComponent,
		LocalPortNum:        123,
		PortIfIndex:         123,
		PortDescr:           "lldpPortDescr",
		RemSysname:          "lldpRemSysname",
		RemPortDescr:        "lldpRemPortDescr",
		LastPollTime:        polled,
	}
}

func (l *LldpLink) LinkID() int { return l.ID }
func (l *LldpLink) NodeID() int { return l.Node.ID }

// OspfLink is one directed half of an OSPF adjacency.
// RemIPAddr is the remote interface address.
type OspfLink struct {
	ID                  int        `json:"id" yaml:"id"`
	Node                *Node      `json:"-" yaml:"-"`
	IPAddr              netip.Addr `json:"ip_addr" yaml:"ip_addr"`
	RemIPAddr           netip.Addr `json:"rem_ip_addr" yaml:"rem_ip_addr"`
	IPMask              netip.Addr `json:"ip_mask" yaml:"ip_mask"`
	RemRouterID         netip.Addr `json:"rem_router_id" yaml:"rem_router_id"`
	AddressLessIndex    int        `json:"address_less_index" yaml:"address_less_index"`
	IfIndex             int        `json:"if_index" yaml:"if_index"`
	RemAddressLessIndex int        `json:"rem_address_less_index" yaml:"rem_address_less_index"`
	LastPollTime        time.Time  `json:"last_poll_time" yaml:"last_poll_time"`
}

// NewOspfLink creates an OSPF link half with static index attributes
func NewOspfLink(id int, node *Node, ipAddr, remIPAddr, ipMask, remRouterID netip.Addr, polled time.Time) *OspfLink {
	return &OspfLink{
		ID:                  id,
		Node:                node,
		IPAddr:              ipAddr,
		RemIPAddr:           remIPAddr,
		IPMask:              ipMask,
		RemRouterID:         remRouterID,
		AddressLessIndex:    3,
		IfIndex:             3,
		RemAddressLessIndex: 3,
		LastPollTime:        polled,
	}
}

func (l *OspfLink) LinkID() int { return l.ID }
func (l *OspfLink) NodeID() int { return l.Node.ID }
