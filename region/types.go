// File: types.go
// Role: sentinel errors of the region-hierarchy queries.
package region

import "errors"

var (
	// ErrNetworkNil is returned when the network argument is nil.
	ErrNetworkNil = errors.New("region: network is nil")

	// ErrStationNotFound is returned when a station id is not in the network.
	ErrStationNotFound = errors.New("region: station not found")

	// ErrRegionNotFound is returned when a region id is not in the network.
	ErrRegionNotFound = errors.New("region: region not found")

	// ErrNoCommonParent is returned by CommonParent when the two regions
	// share no ancestor.
	ErrNoCommonParent = errors.New("region: no common parent")
)
