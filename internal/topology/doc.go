// Package topology decides which entities of a homogeneous set get linked.
//
// A PairGenerator yields an endless sequence of pairs of distinct entities.
// Three shapes exist:
//
//   - Complete enumerates every unordered pair once, in index order, then
//     starts over.
//   - Ring pairs every entity with its successor, the last one with the
//     first, then starts over.
//   - Random draws two different entities from a seeded source. Pairs may
//     repeat and connectivity is not guaranteed.
//
// All generators are deterministic for a fixed input order and seed and
// validate their input when they are built: at least two entities, no
// duplicates.
package topology
