// Package route defines result types and sentinel errors for the traversal
// engine.
package route

import (
	"errors"

	"github.com/katalvlaran/railnet/core"
)

// Sentinel errors for routing operations.
var (
	// ErrNetworkNil is returned if a nil *core.Network is passed.
	ErrNetworkNil = errors.New("route: network is nil")

	// ErrStationNotFound is returned when an endpoint id is not a registered
	// station.
	ErrStationNotFound = errors.New("route: station not found")
)

// Step is one station on a distance-metric route. Dist carries the metric the
// producing algorithm accumulated up to this station (true Euclidean distance
// for ShortestDistance and LeastStations, discovery-chain distance for Any).
type Step struct {
	Station string
	Dist    core.Distance
}

// TimedStep is one station on an earliest-arrival route. At is the concrete
// departure time from this station — except for the final station, where it
// is the arrival time.
type TimedStep struct {
	Station string
	At      core.Time
}
