package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topogen/internal/domain"
)

func TestCreateNodes(t *testing.T) {
	loc := domain.DefaultLocation()
	nodes := CreateNodes(3, loc)

	require.Len(t, nodes, 3)
	for i, n := range nodes {
		assert.Equal(t, i, n.ID)
		assert.Equal(t, domain.NodeLabel(i), n.Label)
		assert.Same(t, loc, n.Location)
	}
}

func TestCreateSnmpInterfacesStopsAtAmount(t *testing.T) {
	nodes := CreateNodes(4, domain.DefaultLocation())

	assert.Empty(t, CreateSnmpInterfaces(nodes, 0, polled))
	assert.Len(t, CreateSnmpInterfaces(nodes, 2, polled), 2)
	all := CreateSnmpInterfaces(nodes, 100, polled)
	require.Len(t, all, 4)
	assert.Equal(t, 3, all[3].ID)
	assert.Equal(t, 3, all[3].IfIndex)
	assert.Equal(t, int64(5), all[3].IfSpeed)
}

func TestCreateIpInterfacesUsesFreshAddresses(t *testing.T) {
	snmps := CreateSnmpInterfaces(CreateNodes(3, nil), 3, polled)

	for run := 0; run < 2; run++ {
		ips, err := CreateIpInterfaces(snmps, 2, polled)
		require.NoError(t, err)
		require.Len(t, ips, 2)
		assert.Equal(t, "0.0.0.1", ips[0].IPAddress.String())
		assert.Equal(t, "0.0.0.2", ips[1].IPAddress.String())
	}
}
