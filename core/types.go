// Package core defines the Network entity store plus the shared scalar and
// record types (Coord, Distance, Time, Leg, Stop) and sentinel errors.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core network operations.
var (
	// ErrEmptyID indicates an empty string was supplied as an identifier.
	ErrEmptyID = errors.New("core: identifier is empty")

	// ErrStationExists indicates an insert referenced an already-registered station.
	ErrStationExists = errors.New("core: station already exists")

	// ErrStationNotFound indicates an operation referenced a non-existent station.
	ErrStationNotFound = errors.New("core: station not found")

	// ErrRegionExists indicates an insert referenced an already-registered region.
	ErrRegionExists = errors.New("core: region already exists")

	// ErrRegionNotFound indicates an operation referenced a non-existent region.
	ErrRegionNotFound = errors.New("core: region not found")

	// ErrTrainExists indicates an insert referenced an already-registered train.
	ErrTrainExists = errors.New("core: train already exists")

	// ErrTrainNotFound indicates an operation referenced a non-existent train.
	ErrTrainNotFound = errors.New("core: train not found")

	// ErrRegionAttached indicates the child region already has a parent.
	ErrRegionAttached = errors.New("core: region already has a parent")

	// ErrStationAttached indicates the station already belongs to a region.
	ErrStationAttached = errors.New("core: station already belongs to a region")

	// ErrDepartureExists indicates the (time, train) departure is already registered.
	ErrDepartureExists = errors.New("core: departure already exists")

	// ErrDepartureNotFound indicates the (time, train) departure is not registered.
	ErrDepartureNotFound = errors.New("core: departure not found")

	// ErrNoDeparture indicates the train does not depart from the given station.
	ErrNoDeparture = errors.New("core: train does not depart from station")
)

// Distance is a Euclidean distance between coordinates, truncated to an
// integer. Unreachable is the "infinity" label used by searches before a
// station has been reached.
type Distance int64

// Unreachable marks a distance label that no search has improved yet.
const Unreachable Distance = math.MaxInt64

// Time is an opaque schedule time (HHMM-style). The store and the traversal
// engine only ever compare Times; no arithmetic beyond ordering is performed.
// NoTime is the "never" label.
type Time int64

// NoTime marks a time label that no search has improved yet.
const NoTime Time = math.MaxInt64

// Coord is a plane 2-D integer coordinate.
type Coord struct {
	X int
	Y int
}

// Dist returns the Euclidean distance between a and b, truncated toward zero.
// Truncation (not rounding) matters: Dist({0,0},{3,4}) == 5, but
// Dist({0,0},{1,1}) == 1.
// Complexity: O(1).
func Dist(a, b Coord) Distance {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return Distance(math.Sqrt(dx*dx + dy*dy))
}

// Leg is one directed, time-stamped edge from its owning station to the
// immediate next stop of some train. Legs are created only by AddTrain and
// never removed; their insertion order is preserved and significant.
type Leg struct {
	// Depart is the departure time at the owning (source) station.
	Depart Time

	// Arrive is the arrival time at the destination station.
	Arrive Time

	// To is the destination station identifier. Destinations are referenced
	// by id, not pointer, so a leg can never dangle: if the destination has
	// been removed the leg simply no longer resolves.
	To string
}

// Stop is one scheduled stop of a train: the station and the departure time
// from it. The final stop's Depart is its arrival time (no onward leg).
type Stop struct {
	Station string
	Depart  Time
}

// Departure pairs a scheduled departure time with the departing train.
type Departure struct {
	At    Time
	Train string
}
