package protocol

import (
	"errors"
	"net/netip"
)

// ErrAddressSpaceExhausted is returned once 255.255.255.255 has been handed out
var ErrAddressSpaceExhausted = errors.New("ipv4 address space exhausted")

// AddressGenerator hands out consecutive IPv4 addresses, starting at 0.0.0.1
type AddressGenerator struct {
	last netip.Addr
}

// NewAddressGenerator creates a generator positioned at 0.0.0.0
func NewAddressGenerator() *AddressGenerator {
	return &AddressGenerator{last: netip.IPv4Unspecified()}
}

// Next returns the address following the previous one
func (g *AddressGenerator) Next() (netip.Addr, error) {
	next := g.last.Next()
	if !next.IsValid() {
		return netip.Addr{}, ErrAddressSpaceExhausted
	}
	g.last = next
	return next, nil
}
