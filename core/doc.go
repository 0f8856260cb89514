// Package core provides the in-memory entity store and graph arena for a
// transit network: stations with 2-D integer coordinates, a forest of
// regions, trains with ordered stop schedules, and the directed time-stamped
// legs derived from those schedules.
//
// What
//
//   - Network is the sole owner of every record. Stations, regions and trains
//     are keyed by plain string identifiers.
//   - Inserting a train is the only operation that creates graph edges: for
//     each consecutive stop pair a Leg (departure time, arrival time,
//     destination id) is appended to the source station, and the departure is
//     registered for schedule lookups.
//   - An R-tree spatial index over station coordinates answers exact-point
//     lookup and k-nearest queries.
//
// Determinism
//
//	Stations(), Regions(), Trains() and the listing helpers return sorted
//	results. Legs(), Subregions() and TrainStops() preserve insertion order,
//	because that order is semantically significant: it decides which path a
//	traversal discovers first when several are tied.
//
// Failure taxonomy
//
//   - Unknown identifiers surface as sentinel errors (ErrStationNotFound,
//     ErrRegionNotFound, ErrTrainNotFound); callers test with errors.Is.
//   - Precondition violations on mutation (duplicate train, station already
//     in a region, region already parented) fail with no partial mutation.
//   - Structurally empty results are empty slices with a nil error.
//
// Concurrency
//
//	Network is not safe for concurrent use. The single-caller contract keeps
//	the store lock-free; embed it behind your own synchronization if needed.
package core
