// Package generator builds synthetic networks and hands them to a persister.
//
// A run validates the requested counts, creates nodes and the protocol part
// of the network in memory, adds SNMP and IP interfaces and finally persists
// the batches in dependency order:
//
//	nodes → elements → SNMP interfaces → IP interfaces → links
//
// Persistence errors stop the run and are returned wrapped with the name of
// the failing batch. Nothing is retried.
package generator
