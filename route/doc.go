// Package route implements the traversal engine over a core.Network: five
// routing primitives that walk the legs derived from train schedules.
//
// What
//
//   - Any:              first-discovery reachability. A FIFO frontier fixes
//     each station's predecessor the first time it is seen and stops as soon
//     as the destination appears. The result depends on leg insertion order,
//     not edge weight — it is explicitly NOT a shortest path.
//   - LeastStations:    minimum-hop path. Same frontier shape; because the
//     frontier expands one level at a time, first discovery guarantees the
//     minimum stop count. True Euclidean distance is accumulated alongside
//     and reported.
//   - WithCycle:        depth-first cycle discovery with an explicit stack and
//     three-color marking; a leg to an on-stack station closes the cycle.
//   - ShortestDistance: A* ordered by accumulated distance plus the
//     straight-line estimate to the goal. The Euclidean heuristic never
//     overestimates (edge weights ARE Euclidean distances), so the path is
//     optimal when the goal is popped.
//   - EarliestArrival:  label-correcting search ordered by arrival time with
//     chronological feasibility, followed by a second pass that re-selects
//     concrete boarding times along the settled path.
//
// Shared protocol
//
//	Every call validates its endpoints first (ErrStationNotFound), returns a
//	trivial one-element path for from == to without traversing, and allocates
//	a fresh search context — label maps and predecessor links are never
//	reused between calls, so no call can observe stale state from a previous
//	one. Structurally empty outcomes (no path, no cycle) are (nil, nil),
//	distinct from the identifier errors.
//
// Determinism
//
//	Legs are scanned in insertion order and heap ties break on station id, so
//	repeated calls over an unchanged network return identical sequences.
//
// Complexity (V = stations, E = legs)
//
//   - Any, LeastStations, WithCycle: O(V + E)
//   - ShortestDistance, EarliestArrival: O((V + E) log V)
package route
