package domain

import (
	"net/netip"
	"time"
)

// SnmpInterface is an SNMP interface attached to a node
type SnmpInterface struct {
	ID            int       `json:"id" yaml:"id"`
	Node          *Node     `json:"-" yaml:"-"`
	IfIndex       int       `json:"if_index" yaml:"if_index"`
	IfType        int       `json:"if_type" yaml:"if_type"`
	IfSpeed       int64     `json:"if_speed" yaml:"if_speed"`
	IfAdminStatus int       `json:"if_admin_status" yaml:"if_admin_status"`
	IfOperStatus  int       `json:"if_oper_status" yaml:"if_oper_status"`
	LastCapsdPoll time.Time `json:"last_capsd_poll" yaml:"last_capsd_poll"`
	LastSnmpPoll  time.Time `json:"last_snmp_poll" yaml:"last_snmp_poll"`
}

// NewSnmpInterface creates the SNMP interface of a node, sharing the node's id
func NewSnmpInterface(node *Node, polled time.Time) *SnmpInterface {
	return &SnmpInterface{
		ID:            node.ID,
		Node:          node,
		IfIndex:       3,
		IfType:        4,
		IfSpeed:       5,
		IfAdminStatus: 6,
		IfOperStatus:  7,
		LastCapsdPoll: polled,
		LastSnmpPoll:  polled,
	}
}

// IpInterface is an IP interface bound to an SNMP interface
type IpInterface struct {
	ID              int            `json:"id" yaml:"id"`
	Node            *Node          `json:"-" yaml:"-"`
	SnmpInterface   *SnmpInterface `json:"-" yaml:"-"`
	IPAddress       netip.Addr     `json:"ip_address" yaml:"ip_address"`
	IPLastCapsdPoll time.Time      `json:"ip_last_capsd_poll" yaml:"ip_last_capsd_poll"`
}

// NewIpInterface creates an IP interface sharing the SNMP interface's id
func NewIpInterface(snmp *SnmpInterface, addr netip.Addr, polled time.Time) *IpInterface {
	return &IpInterface{
		ID:              snmp.ID,
		Node:            snmp.Node,
		SnmpInterface:   snmp,
		IPAddress:       addr,
		IPLastCapsdPoll: polled,
	}
}
