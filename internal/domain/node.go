package domain

import "fmt"

// MonitoringLocation is the location every synthetic node is assigned to
type MonitoringLocation struct {
	Name string `json:"name" yaml:"name"`
	Area string `json:"area" yaml:"area"`
}

// DefaultLocation returns the location shared by all nodes of a run
func DefaultLocation() *MonitoringLocation {
	return &MonitoringLocation{
		Name: "Default",
		Area: "localhost",
	}
}

// Node represents a synthetic managed node
type Node struct {
	ID       int                 `json:"id" yaml:"id"`
	Label    string              `json:"label" yaml:"label"`
	Location *MonitoringLocation `json:"-" yaml:"-"`
}

// NewNode creates a node whose label is derived from its id.
// Ids are assigned densely from zero, the target database is assumed empty.
func NewNode(id int, location *MonitoringLocation) *Node {
	return &Node{
		ID:       id,
		Label:    NodeLabel(id),
		Location: location,
	}
}

// NodeLabel returns the label of the node with the given id
func NodeLabel(id int) string {
	return fmt.Sprintf("Node%d", id)
}

// LocationName returns the name of the node's monitoring location
func (n *Node) LocationName() string {
	if n.Location == nil {
		return ""
	}
	return n.Location.Name
}
