package protocol

import (
	"math"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressGeneratorStartsAtOne(t *testing.T) {
	g := NewAddressGenerator()

	want := []string{"0.0.0.1", "0.0.0.2", "0.0.0.3"}
	for _, w := range want {
		addr, err := g.Next()
		require.NoError(t, err)
		assert.Equal(t, w, addr.String())
	}
}

func TestAddressGeneratorCarriesOverOctets(t *testing.T) {
	g := &AddressGenerator{last: netip.MustParseAddr("0.0.0.255")}
	addr, err := g.Next()
	require.NoError(t, err)
	assert.Equal(t, "0.0.1.0", addr.String())
}

func TestAddressGeneratorExhaustion(t *testing.T) {
	g := &AddressGenerator{last: netip.MustParseAddr("255.255.255.254")}

	addr, err := g.Next()
	require.NoError(t, err)
	assert.Equal(t, "255.255.255.255", addr.String())

	_, err = g.Next()
	assert.ErrorIs(t, err, ErrAddressSpaceExhausted)
}

func TestSessionLinkIDs(t *testing.T) {
	s := NewSession(1, time.Time{})
	assert.Equal(t, 0, s.NextLinkID())
	assert.Equal(t, 1, s.NextLinkID())
	assert.Equal(t, 2, s.NextLinkID())
}

func TestSessionIdentitiesAreSeeded(t *testing.T) {
	a := NewSession(42, time.Time{})
	b := NewSession(42, time.Time{})
	c := NewSession(43, time.Time{})

	first := a.NewUUID()
	assert.Equal(t, first, b.NewUUID())
	assert.NotEqual(t, first, c.NewUUID())
	assert.NotEqual(t, first, a.NewUUID())
	assert.Len(t, first, 36)
}

func TestPairsFor(t *testing.T) {
	tests := []struct {
		links int
		pairs int
	}{
		{links: 1, pairs: 1},
		{links: 2, pairs: 1},
		{links: 3, pairs: 2},
		{links: 8, pairs: 4},
		{links: 20, pairs: 10},
		{links: math.MaxInt, pairs: math.MaxInt/2 + 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.pairs, PairsFor(tt.links), "links=%d", tt.links)
	}
}
