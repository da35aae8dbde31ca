package generator

import (
	"fmt"
	"time"

	"topogen/internal/domain"
	"topogen/internal/protocol"
)

// CreateNodes creates amount nodes with ids 0..amount-1, all sharing location
func CreateNodes(amount int, location *domain.MonitoringLocation) []*domain.Node {
	nodes := make([]*domain.Node, 0, amount)
	for i := 0; i < amount; i++ {
		nodes = append(nodes, domain.NewNode(i, location))
	}
	return nodes
}

// CreateSnmpInterfaces creates one interface per node, in node order,
// until amount interfaces exist
func CreateSnmpInterfaces(nodes []*domain.Node, amount int, polled time.Time) []*domain.SnmpInterface {
	interfaces := make([]*domain.SnmpInterface, 0, min(amount, len(nodes)))
	for _, node := range nodes {
		if len(interfaces) >= amount {
			break
		}
		interfaces = append(interfaces, domain.NewSnmpInterface(node, polled))
	}
	return interfaces
}

// CreateIpInterfaces creates one interface per SNMP interface, up to amount,
// with consecutive addresses starting at 0.0.0.1
func CreateIpInterfaces(snmps []*domain.SnmpInterface, amount int, polled time.Time) ([]*domain.IpInterface, error) {
	addresses := protocol.NewAddressGenerator()
	interfaces := make([]*domain.IpInterface, 0, min(amount, len(snmps)))
	for _, snmp := range snmps {
		if len(interfaces) >= amount {
			break
		}
		addr, err := addresses.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to assign ip interface address: %w", err)
		}
		interfaces = append(interfaces, domain.NewIpInterface(snmp, addr, polled))
	}
	return interfaces, nil
}
