package domain

import (
	"errors"
	"testing"
)

func TestParseTopology(t *testing.T) {
	tests := []struct {
		input   string
		want    Topology
		wantErr bool
	}{
		{"complete", TopologyComplete, false},
		{"ring", TopologyRing, false},
		{"random", TopologyRandom, false},
		{" Ring ", TopologyRing, false},
		{"star", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseTopology(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownTopology) {
				t.Errorf("ParseTopology(%q) error = %v, want ErrUnknownTopology", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseTopology(%q) = %s, %v, want %s", tt.input, got, err, tt.want)
		}
	}
}

func TestParseProtocol(t *testing.T) {
	tests := []struct {
		input   string
		want    Protocol
		wantErr bool
	}{
		{"cdp", ProtocolCdp, false},
		{"isis", ProtocolIsIs, false},
		{"LLDP", ProtocolLldp, false},
		{"ospf", ProtocolOspf, false},
		{"bgp", "", true},
	}

	for _, tt := range tests {
		got, err := ParseProtocol(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownProtocol) {
				t.Errorf("ParseProtocol(%q) error = %v, want ErrUnknownProtocol", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseProtocol(%q) = %s, %v, want %s", tt.input, got, err, tt.want)
		}
	}
}

func TestProtocolHasElements(t *testing.T) {
	for _, p := range Protocols {
		want := p != ProtocolOspf
		if got := p.HasElements(); got != want {
			t.Errorf("Protocol(%s).HasElements() = %v, want %v", p, got, want)
		}
	}
}
