// Package protocol synthesizes discovery elements and mirrored link pairs for
// CDP, IS-IS, LLDP and OSPF.
//
// Every adjacency is written as two link halves. The half owned by the left
// node of a pair names the right node as its remote and the other half names
// the left node, with local and remote sub-fields swapped, so that a topology
// matcher can join them again.
package protocol
