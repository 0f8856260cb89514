// File: network.go
// Role: Network construction, record layout, counters and bulk clears.
package core

import (
	"github.com/tidwall/rtree"
)

// stationRecord is the arena entry for one station. The permanent record
// carries no traversal scratch; search labels live in per-call contexts owned
// by the route package.
type stationRecord struct {
	name   string
	at     Coord
	region string // direct parent region id; "" = none

	// legs holds outgoing edges in insertion order. Order is significant:
	// it determines which path a first-discovery traversal returns.
	legs []Leg

	// departures maps departure time → set of departing train ids.
	departures map[Time]map[string]struct{}
}

// regionRecord is the arena entry for one region of the hierarchy forest.
type regionRecord struct {
	name     string
	boundary []Coord
	parent   string   // "" = root
	children []string // direct subregions in attachment order
}

// trainRecord keeps the ordered stop schedule a train was inserted with.
type trainRecord struct {
	stops []Stop
}

// Network is the in-memory transit arena: the sole owner of station, region
// and train records, the adjacency derived from train schedules, and the
// spatial index over station coordinates.
//
// Network is not safe for concurrent use.
type Network struct {
	stations map[string]*stationRecord
	regions  map[string]*regionRecord
	trains   map[string]*trainRecord

	// index holds one point entry per station, keyed by station id.
	index rtree.RTreeG[string]
}

// New creates an empty Network.
// Complexity: O(1).
func New() *Network {
	return &Network{
		stations: make(map[string]*stationRecord),
		regions:  make(map[string]*regionRecord),
		trains:   make(map[string]*trainRecord),
	}
}

// StationCount reports the number of registered stations.
// Complexity: O(1).
func (n *Network) StationCount() int { return len(n.stations) }

// RegionCount reports the number of registered regions.
// Complexity: O(1).
func (n *Network) RegionCount() int { return len(n.regions) }

// TrainCount reports the number of registered trains.
// Complexity: O(1).
func (n *Network) TrainCount() int { return len(n.trains) }

// ClearAll resets the whole arena: stations, regions, trains and the spatial
// index. Complexity: O(1) amortized (old catalogs are released to the GC).
func (n *Network) ClearAll() {
	n.stations = make(map[string]*stationRecord)
	n.regions = make(map[string]*regionRecord)
	n.trains = make(map[string]*trainRecord)
	n.index = rtree.RTreeG[string]{}
}

// ClearTrains empties the train catalog only. Legs and departures already
// derived from the cleared trains remain on their stations; the schedule
// record is gone but the graph it produced is not.
func (n *Network) ClearTrains() {
	n.trains = make(map[string]*trainRecord)
}

// station resolves a station id or reports ErrStationNotFound.
func (n *Network) station(id string) (*stationRecord, error) {
	st, ok := n.stations[id]
	if !ok {
		return nil, ErrStationNotFound
	}

	return st, nil
}

// regionRec resolves a region id or reports ErrRegionNotFound.
func (n *Network) regionRec(id string) (*regionRecord, error) {
	r, ok := n.regions[id]
	if !ok {
		return nil, ErrRegionNotFound
	}

	return r, nil
}
