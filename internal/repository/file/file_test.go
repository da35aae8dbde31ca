package file

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topogen/internal/codec"
	"topogen/internal/domain"
	"topogen/internal/repository"
)

var _ repository.Persister = (*Persister)(nil)
var _ repository.Counter = (*Persister)(nil)

type bufferCloser struct {
	*bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func TestPersisterCollectsAndExports(t *testing.T) {
	ctx := context.Background()
	out := &bufferCloser{Buffer: &bytes.Buffer{}}
	p := NewWriter(func() (io.WriteCloser, error) { return out, nil },
		codec.NewJSONCodec(), domain.TopologyComplete, domain.ProtocolIsIs)

	polled := time.Unix(0, 0).UTC()
	loc := domain.DefaultLocation()
	nodes := []*domain.Node{domain.NewNode(0, loc), domain.NewNode(1, loc)}
	require.NoError(t, p.PersistNodes(ctx, nodes))
	require.NoError(t, p.PersistIsIsElements(ctx, []*domain.IsIsElement{domain.NewIsIsElement(nodes[0], polled)}))
	require.NoError(t, p.PersistIsIsLinks(ctx, []*domain.IsIsLink{
		domain.NewIsIsLink(0, nodes[0], 0, "IsIsElementForNode1", polled),
		domain.NewIsIsLink(1, nodes[1], 0, "IsIsElementForNode0", polled),
	}))

	counts, err := p.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["node"])
	assert.Equal(t, 1, counts["isiselement"])
	assert.Equal(t, 2, counts["isislink"])
	assert.Same(t, loc, p.Network().Location)

	require.NoError(t, p.Close())
	assert.True(t, out.closed)
	assert.Contains(t, out.String(), `"adj_neigh_sys_id": "IsIsElementForNode0"`)
	assert.Contains(t, out.String(), `"protocol": "isis"`)
}

func TestDeleteTopologyResets(t *testing.T) {
	ctx := context.Background()
	p := New("-", codec.NewYAMLCodec(), domain.TopologyRing, domain.ProtocolCdp)
	require.NoError(t, p.PersistNodes(ctx, []*domain.Node{domain.NewNode(0, nil)}))

	require.NoError(t, p.DeleteTopology(ctx))
	assert.Empty(t, p.Network().Nodes)
	assert.Equal(t, domain.TopologyRing, p.Network().Topology)
}

func TestWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.yaml")
	p := New(path, codec.NewYAMLCodec(), domain.TopologyRing, domain.ProtocolCdp)
	require.NoError(t, p.PersistNodes(context.Background(), []*domain.Node{domain.NewNode(0, domain.DefaultLocation())}))
	require.NoError(t, p.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "label: Node0")
}
