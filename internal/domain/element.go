package domain

import (
	"fmt"
	"time"
)

// TruthValue mirrors the SNMP TruthValue textual convention
type TruthValue int

const (
	TruthValueTrue  TruthValue = 1
	TruthValueFalse TruthValue = 2
)

// IsIsAdminState is the administrative state of an IS-IS instance or circuit
type IsIsAdminState int

const (
	IsIsAdminStateOn  IsIsAdminState = 1
	IsIsAdminStateOff IsIsAdminState = 2
)

// LldpChassisIDSubType identifies how an LLDP chassis id is encoded
type LldpChassisIDSubType int

const (
	LldpChassisIDSubTypeChassisComponent LldpChassisIDSubType = 1
	LldpChassisIDSubTypeMacAddress       LldpChassisIDSubType = 4
)

// LldpSysname is the system name reported by every synthetic LLDP element
const LldpSysname = "LldpSysname"

// CdpElement is the CDP discovery record of a node
type CdpElement struct {
	ID             int        `json:"id" yaml:"id"`
	Node           *Node      `json:"-" yaml:"-"`
	GlobalDeviceID string     `json:"global_device_id" yaml:"global_device_id"`
	GlobalRun      TruthValue `json:"global_run" yaml:"global_run"`
	LastPollTime   time.Time  `json:"last_poll_time" yaml:"last_poll_time"`
}

// NewCdpElement creates the CDP element of a node, sharing the node's id
func NewCdpElement(node *Node, polled time.Time) *CdpElement {
	return &CdpElement{
		ID:             node.ID,
		Node:           node,
		GlobalDeviceID: fmt.Sprintf("CdpElementForNode%d", node.ID),
		GlobalRun:      TruthValueFalse,
		LastPollTime:   polled,
	}
}

// IsIsElement is the IS-IS discovery record of a node
type IsIsElement struct {
	ID           int            `json:"id" yaml:"id"`
	Node         *Node          `json:"-" yaml:"-"`
	SysID        string         `json:"sys_id" yaml:"sys_id"`
	AdminState   IsIsAdminState `json:"admin_state" yaml:"admin_state"`
	LastPollTime time.Time      `json:"last_poll_time" yaml:"last_poll_time"`
}

// NewIsIsElement creates the IS-IS element of a node, sharing the node's id
func NewIsIsElement(node *Node, polled time.Time) *IsIsElement {
	return &IsIsElement{
		ID:           node.ID,
		Node:         node,
		SysID:        fmt.Sprintf("IsIsElementForNode%d", node.ID),
		AdminState:   IsIsAdminStateOn,
		LastPollTime: polled,
	}
}

// LldpElement is the LLDP discovery record of a node
type LldpElement struct {
	ID               int                  `json:"id" yaml:"id"`
	Node             *Node                `json:"-" yaml:"-"`
	ChassisID        string               `json:"chassis_id" yaml:"chassis_id"`
	ChassisIDSubType LldpChassisIDSubType `json:"chassis_id_sub_type" yaml:"chassis_id_sub_type"`
	Sysname          string               `json:"sysname" yaml:"sysname"`
	LastPollTime     time.Time            `json:"last_poll_time" yaml:"last_poll_time"`
}

// NewLldpElement creates the LLDP element of a node with the given chassis id
func NewLldpElement(node *Node, chassisID string, polled time.Time) *LldpElement {
	return &LldpElement{
		ID:               node.ID,
		Node:             node,
		ChassisID:        chassisID,
		ChassisIDSubType: LldpChassisIDSubTypeChassisComponent,
		Sysname:          LldpSysname,
		LastPollTime:     polled,
	}
}
