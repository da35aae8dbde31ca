package domain

import (
	"testing"
	"time"
)

func TestNewNode(t *testing.T) {
	t.Run("derives label from id", func(t *testing.T) {
		loc := DefaultLocation()
		node := NewNode(7, loc)

		if node.ID != 7 {
			t.Errorf("expected ID 7, got %d", node.ID)
		}
		if node.Label != "Node7" {
			t.Errorf("expected label 'Node7', got %s", node.Label)
		}
		if node.Location != loc {
			t.Error("expected node to reference the shared location")
		}
	})

	t.Run("location name of unlocated node is empty", func(t *testing.T) {
		node := NewNode(0, nil)
		if node.LocationName() != "" {
			t.Errorf("expected empty location name, got %s", node.LocationName())
		}
	})
}

func TestDefaultLocation(t *testing.T) {
	loc := DefaultLocation()
	if loc.Name != "Default" || loc.Area != "localhost" {
		t.Errorf("unexpected default location %+v", loc)
	}
}

func TestNewElements(t *testing.T) {
	polled := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	node := NewNode(3, DefaultLocation())

	t.Run("cdp element shares node id", func(t *testing.T) {
		e := NewCdpElement(node, polled)
		if e.ID != node.ID || e.Node != node {
			t.Errorf("expected element bound to node 3, got %+v", e)
		}
		if e.GlobalDeviceID != "CdpElementForNode3" {
			t.Errorf("unexpected global device id %s", e.GlobalDeviceID)
		}
		if e.GlobalRun != TruthValueFalse {
			t.Errorf("expected global run false, got %d", e.GlobalRun)
		}
	})

	t.Run("isis element shares node id", func(t *testing.T) {
		e := NewIsIsElement(node, polled)
		if e.SysID != "IsIsElementForNode3" {
			t.Errorf("unexpected sys id %s", e.SysID)
		}
		if e.AdminState != IsIsAdminStateOn {
			t.Errorf("expected admin state on, got %d", e.AdminState)
		}
	})

	t.Run("lldp element keeps given chassis id", func(t *testing.T) {
		e := NewLldpElement(node, "lLdpChassisIdabc", polled)
		if e.ChassisID != "lLdpChassisIdabc" {
			t.Errorf("unexpected chassis id %s", e.ChassisID)
		}
		if e.Sysname != LldpSysname {
			t.Errorf("unexpected sysname %s", e.Sysname)
		}
		if !e.LastPollTime.Equal(polled) {
			t.Errorf("unexpected poll time %s", e.LastPollTime)
		}
	})
}
