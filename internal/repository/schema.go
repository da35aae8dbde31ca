package repository

import (
	"fmt"
	"strings"

	"topogen/internal/domain"
)

// Table describes one table written by the SQL persisters
type Table struct {
	Name    string
	Columns []string
	// column definitions and constraints, in Columns order
	definitions []string
}

// CreateStatement returns the portable CREATE TABLE statement
func (t Table) CreateStatement() string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", t.Name, strings.Join(t.definitions, ",\n\t"))
}

// InsertStatement returns an INSERT statement using the given placeholder style
func (t Table) InsertStatement(placeholder func(i int) string) string {
	params := make([]string, len(t.Columns))
	for i := range t.Columns {
		params[i] = placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(t.Columns, ", "), strings.Join(params, ", "))
}

// QuestionMark is the sqlite placeholder style
func QuestionMark(int) string { return "?" }

// DollarN is the postgres placeholder style
func DollarN(i int) string { return fmt.Sprintf("$%d", i) }

var (
	LocationTable = Table{
		Name:    "monitoringlocations",
		Columns: []string{"id", "monitoringarea"},
		definitions: []string{
			"id TEXT PRIMARY KEY",
			"monitoringarea TEXT NOT NULL",
		},
	}

	NodeTable = Table{
		Name:    "node",
		Columns: []string{"nodeid", "nodelabel", "location"},
		definitions: []string{
			"nodeid INTEGER PRIMARY KEY",
			"nodelabel TEXT NOT NULL",
			"location TEXT NOT NULL REFERENCES monitoringlocations(id)",
		},
	}

	CdpElementTable = Table{
		Name:    "cdpelement",
		Columns: []string{"id", "nodeid", "cdpglobaldeviceid", "cdpglobalrun", "cdpnodelastpolltime"},
		definitions: []string{
			"id INTEGER PRIMARY KEY",
			"nodeid INTEGER NOT NULL REFERENCES node(nodeid) ON DELETE CASCADE",
			"cdpglobaldeviceid TEXT NOT NULL",
			"cdpglobalrun INTEGER",
			"cdpnodelastpolltime TIMESTAMP NOT NULL",
		},
	}

	IsIsElementTable = Table{
		Name:    "isiselement",
		Columns: []string{"id", "nodeid", "isissysid", "isissysadminstate", "isisnodelastpolltime"},
		definitions: []string{
			"id INTEGER PRIMARY KEY",
			"nodeid INTEGER NOT NULL REFERENCES node(nodeid) ON DELETE CASCADE",
			"isissysid TEXT NOT NULL",
			"isissysadminstate INTEGER NOT NULL",
			"isisnodelastpolltime TIMESTAMP NOT NULL",
		},
	}

	LldpElementTable = Table{
		Name:    "lldpelement",
		Columns: []string{"id", "nodeid", "lldpchassisid", "lldpchassisidsubtype", "lldpsysname", "lldpnodelastpolltime"},
		definitions: []string{
			"id INTEGER PRIMARY KEY",
			"nodeid INTEGER NOT NULL REFERENCES node(nodeid) ON DELETE CASCADE",
			"lldpchassisid TEXT NOT NULL",
			"lldpchassisidsubtype INTEGER NOT NULL",
			"lldpsysname TEXT NOT NULL",
			"lldpnodelastpolltime TIMESTAMP NOT NULL",
		},
	}

	CdpLinkTable = Table{
		Name: "cdplink",
		Columns: []string{"id", "nodeid", "cdpinterfacename", "cdpcachedeviceport", "cdpcachedeviceid",
			"cdpcacheaddresstype", "cdpcacheaddress", "cdpcachedeviceindex", "cdpcachedeviceplatform",
			"cdpcacheifindex", "cdpcacheversion", "cdplinklastpolltime"},
		definitions: []string{
			"id INTEGER PRIMARY KEY",
			"nodeid INTEGER NOT NULL REFERENCES node(nodeid) ON DELETE CASCADE",
			"cdpinterfacename TEXT NOT NULL",
			"cdpcachedeviceport TEXT NOT NULL",
			"cdpcachedeviceid TEXT NOT NULL",
			"cdpcacheaddresstype INTEGER NOT NULL",
			"cdpcacheaddress TEXT NOT NULL",
			"cdpcachedeviceindex INTEGER NOT NULL",
			"cdpcachedeviceplatform TEXT NOT NULL",
			"cdpcacheifindex INTEGER",
			"cdpcacheversion TEXT NOT NULL",
			"cdplinklastpolltime TIMESTAMP NOT NULL",
		},
	}

	IsIsLinkTable = Table{
		Name: "isislink",
		Columns: []string{"id", "nodeid", "isisisadjindex", "isisisadjneighsysid", "isiscircindex",
			"isisisadjstate", "isisisadjneighsnpaaddress", "isisisadjneighsystype",
			"isisisadjnbrextendedcircid", "isiscircifindex", "isiscircadminstate", "isislinklastpolltime"},
		definitions: []string{
			"id INTEGER PRIMARY KEY",
			"nodeid INTEGER NOT NULL REFERENCES node(nodeid) ON DELETE CASCADE",
			"isisisadjindex INTEGER NOT NULL",
			"isisisadjneighsysid TEXT NOT NULL",
			"isiscircindex INTEGER NOT NULL",
			"isisisadjstate INTEGER NOT NULL",
			"isisisadjneighsnpaaddress TEXT NOT NULL",
			"isisisadjneighsystype INTEGER NOT NULL",
			"isisisadjnbrextendedcircid INTEGER NOT NULL",
			"isiscircifindex INTEGER",
			"isiscircadminstate INTEGER",
			"isislinklastpolltime TIMESTAMP NOT NULL",
		},
	}

	LldpLinkTable = Table{
		Name: "lldplink",
		Columns: []string{"id", "nodeid", "lldpportid", "lldpportidsubtype", "lldpremportid",
			"lldpremportidsubtype", "lldpremchassisid", "lldpremchassisidsubtype", "lldplocalportnum",
			"lldpportifindex", "lldpportdescr", "lldpremsysname", "lldpremportdescr", "lldplinklastpolltime"},
		definitions: []string{
			"id INTEGER PRIMARY KEY",
			"nodeid INTEGER NOT NULL REFERENCES node(nodeid) ON DELETE CASCADE",
			"lldpportid TEXT NOT NULL",
			"lldpportidsubtype INTEGER NOT NULL",
			"lldpremportid TEXT NOT NULL",
			"lldpremportidsubtype INTEGER NOT NULL",
			"lldpremchassisid TEXT NOT NULL",
			"lldpremchassisidsubtype INTEGER NOT NULL",
			"lldplocalportnum INTEGER NOT NULL",
			"lldpportifindex INTEGER",
			"lldpportdescr TEXT NOT NULL",
			"lldpremsysname TEXT NOT NULL",
			"lldpremportdescr TEXT NOT NULL",
			"lldplinklastpolltime TIMESTAMP NOT NULL",
		},
	}

	OspfLinkTable = Table{
		Name: "ospflink",
		Columns: []string{"id", "nodeid", "ospfipaddr", "ospfremipaddr", "ospfipmask", "ospfremrouterid",
			"ospfaddresslessindex", "ospfifindex", "ospfremaddresslessindex", "ospflinklastpolltime"},
		definitions: []string{
			"id INTEGER PRIMARY KEY",
			"nodeid INTEGER NOT NULL REFERENCES node(nodeid) ON DELETE CASCADE",
			"ospfipaddr TEXT NOT NULL",
			"ospfremipaddr TEXT NOT NULL",
			"ospfipmask TEXT NOT NULL",
			"ospfremrouterid TEXT NOT NULL",
			"ospfaddresslessindex INTEGER NOT NULL",
			"ospfifindex INTEGER",
			"ospfremaddresslessindex INTEGER NOT NULL",
			"ospflinklastpolltime TIMESTAMP NOT NULL",
		},
	}

	SnmpInterfaceTable = Table{
		Name: "snmpinterface",
		Columns: []string{"id", "nodeid", "snmpifindex", "snmpiftype", "snmpifspeed",
			"snmpifadminstatus", "snmpifoperstatus", "snmplastcapsdpoll", "snmplastsnmppoll"},
		definitions: []string{
			"id INTEGER PRIMARY KEY",
			"nodeid INTEGER NOT NULL REFERENCES node(nodeid) ON DELETE CASCADE",
			"snmpifindex INTEGER NOT NULL",
			"snmpiftype INTEGER",
			"snmpifspeed BIGINT",
			"snmpifadminstatus INTEGER",
			"snmpifoperstatus INTEGER",
			"snmplastcapsdpoll TIMESTAMP NOT NULL",
			"snmplastsnmppoll TIMESTAMP NOT NULL",
		},
	}

	IpInterfaceTable = Table{
		Name:    "ipinterface",
		Columns: []string{"id", "nodeid", "snmpinterfaceid", "ipaddr", "iplastcapsdpoll"},
		definitions: []string{
			"id INTEGER PRIMARY KEY",
			"nodeid INTEGER NOT NULL REFERENCES node(nodeid) ON DELETE CASCADE",
			"snmpinterfaceid INTEGER REFERENCES snmpinterface(id) ON DELETE CASCADE",
			"ipaddr TEXT NOT NULL",
			"iplastcapsdpoll TIMESTAMP NOT NULL",
		},
	}
)

// Tables lists every table in creation order; referenced tables come first
var Tables = []Table{
	LocationTable,
	NodeTable,
	CdpElementTable,
	IsIsElementTable,
	LldpElementTable,
	CdpLinkTable,
	IsIsLinkTable,
	LldpLinkTable,
	OspfLinkTable,
	SnmpInterfaceTable,
	IpInterfaceTable,
}

// DeletionOrder returns Tables reversed so that no foreign key is violated
func DeletionOrder() []Table {
	out := make([]Table, len(Tables))
	for i, t := range Tables {
		out[len(Tables)-1-i] = t
	}
	return out
}

// ============================================================================
// Row mapping
// ============================================================================

// LocationRows returns one row per distinct location referenced by nodes
func LocationRows(nodes []*domain.Node) [][]any {
	seen := make(map[string]bool)
	var rows [][]any
	for _, n := range nodes {
		if n.Location == nil || seen[n.Location.Name] {
			continue
		}
		seen[n.Location.Name] = true
		rows = append(rows, []any{n.Location.Name, n.Location.Area})
	}
	return rows
}

func NodeRows(nodes []*domain.Node) [][]any {
	rows := make([][]any, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, []any{n.ID, n.Label, n.LocationName()})
	}
	return rows
}

func CdpElementRows(elements []*domain.CdpElement) [][]any {
	rows := make([][]any, 0, len(elements))
	for _, e := range elements {
		rows = append(rows, []any{e.ID, e.Node.ID, e.GlobalDeviceID, int(e.GlobalRun), e.LastPollTime})
	}
	return rows
}

func IsIsElementRows(elements []*domain.IsIsElement) [][]any {
	rows := make([][]any, 0, len(elements))
	for _, e := range elements {
		rows = append(rows, []any{e.ID, e.Node.ID, e.SysID, int(e.AdminState), e.LastPollTime})
	}
	return rows
}

func LldpElementRows(elements []*domain.LldpElement) [][]any {
	rows := make([][]any, 0, len(elements))
	for _, e := range elements {
		rows = append(rows, []any{e.ID, e.Node.ID, e.ChassisID, int(e.ChassisIDSubType), e.Sysname, e.LastPollTime})
	}
	return rows
}

func CdpLinkRows(links []*domain.CdpLink) [][]any {
	rows := make([][]any, 0, len(links))
	for _, l := range links {
		rows = append(rows, []any{l.ID, l.Node.ID, l.InterfaceName, l.CacheDevicePort, l.CacheDeviceID,
			int(l.CacheAddressType), l.CacheAddress, l.CacheDeviceIndex, l.CacheDevicePlatform,
			l.CacheIfIndex, l.CacheVersion, l.LastPollTime})
	}
	return rows
}

func IsIsLinkRows(links []*domain.IsIsLink) [][]any {
	rows := make([][]any, 0, len(links))
	for _, l := range links {
		rows = append(rows, []any{l.ID, l.Node.ID, l.AdjIndex, l.AdjNeighSysID, l.CircIndex,
			int(l.AdjState), l.AdjNeighSNPAAddress, int(l.AdjNeighSysType),
			l.AdjNbrExtendedCircID, l.CircIfIndex, int(l.CircAdminState), l.LastPollTime})
	}
	return rows
}

func LldpLinkRows(links []*domain.LldpLink) [][]any {
	rows := make([][]any, 0, len(links))
	for _, l := range links {
		rows = append(rows, []any{l.ID, l.Node.ID, l.Port.ID, int(l.Port.SubType), l.RemPort.ID,
			int(l.RemPort.SubType), l.RemChassisID, int(l.RemChassisIDSubType), l.LocalPortNum,
			l.PortIfIndex, l.PortDescr, l.RemSysname, l.RemPortDescr, l.LastPollTime})
	}
	return rows
}

func OspfLinkRows(links []*domain.OspfLink) [][]any {
	rows := make([][]any, 0, len(links))
	for _, l := range links {
		rows = append(rows, []any{l.ID, l.Node.ID, l.IPAddr.String(), l.RemIPAddr.String(),
			l.IPMask.String(), l.RemRouterID.String(), l.AddressLessIndex, l.IfIndex,
			l.RemAddressLessIndex, l.LastPollTime})
	}
	return rows
}

func SnmpInterfaceRows(interfaces []*domain.SnmpInterface) [][]any {
	rows := make([][]any, 0, len(interfaces))
	for _, i := range interfaces {
		rows = append(rows, []any{i.ID, i.Node.ID, i.IfIndex, i.IfType, i.IfSpeed,
			i.IfAdminStatus, i.IfOperStatus, i.LastCapsdPoll, i.LastSnmpPoll})
	}
	return rows
}

func IpInterfaceRows(interfaces []*domain.IpInterface) [][]any {
	rows := make([][]any, 0, len(interfaces))
	for _, i := range interfaces {
		var snmpID any
		if i.SnmpInterface != nil {
			snmpID = i.SnmpInterface.ID
		}
		rows = append(rows, []any{i.ID, i.Node.ID, snmpID, i.IPAddress.String(), i.IPLastCapsdPoll})
	}
	return rows
}
