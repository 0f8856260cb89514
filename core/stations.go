// File: stations.go
// Role: Station lifecycle, lookups, listings and departure bookkeeping.
//
// Determinism:
//   - Stations() returns ids sorted lexicographically ascending.
//   - Listing helpers sort on their metric with documented tie-breaks.
package core

import (
	"math"
	"sort"
)

// AddStation registers a new station.
//
// Returns:
//   - ErrEmptyID if id is empty.
//   - ErrStationExists if the id is already registered.
//
// Complexity: O(log n) (map insert + spatial index insert).
func (n *Network) AddStation(id, name string, at Coord) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, exists := n.stations[id]; exists {
		return ErrStationExists
	}

	n.stations[id] = &stationRecord{
		name:       name,
		at:         at,
		departures: make(map[Time]map[string]struct{}),
	}
	n.indexInsert(id, at)

	return nil
}

// RemoveStation deletes a station and its spatial index entry.
// Legs owned by other stations that point at the removed id are left in
// place; they reference the destination by id and simply stop resolving,
// so traversals skip them.
//
// Returns ErrStationNotFound for an unknown id.
func (n *Network) RemoveStation(id string) error {
	st, err := n.station(id)
	if err != nil {
		return err
	}

	n.indexDelete(id, st.at)
	delete(n.stations, id)

	return nil
}

// HasStation reports whether id is a registered station.
// Complexity: O(1).
func (n *Network) HasStation(id string) bool {
	_, ok := n.stations[id]

	return ok
}

// Stations returns all station ids, sorted ascending.
// Complexity: O(n log n).
func (n *Network) Stations() []string {
	ids := make([]string, 0, len(n.stations))
	for id := range n.stations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// StationName returns the display name of a station.
func (n *Network) StationName(id string) (string, error) {
	st, err := n.station(id)
	if err != nil {
		return "", err
	}

	return st.name, nil
}

// StationCoord returns the coordinate of a station.
func (n *Network) StationCoord(id string) (Coord, error) {
	st, err := n.station(id)
	if err != nil {
		return Coord{}, err
	}

	return st.at, nil
}

// ChangeStationCoord moves a station to a new coordinate and reindexes it.
func (n *Network) ChangeStationCoord(id string, at Coord) error {
	st, err := n.station(id)
	if err != nil {
		return err
	}

	n.indexDelete(id, st.at)
	st.at = at
	n.indexInsert(id, at)

	return nil
}

// StationRegion returns the direct parent region of a station, or "" when the
// station belongs to no region.
func (n *Network) StationRegion(id string) (string, error) {
	st, err := n.station(id)
	if err != nil {
		return "", err
	}

	return st.region, nil
}

// StationsAlphabetically returns all station ids ordered by display name
// ascending, ties broken by id.
// Complexity: O(n log n).
func (n *Network) StationsAlphabetically() []string {
	ids := n.Stations()
	sort.SliceStable(ids, func(i, j int) bool {
		return n.stations[ids[i]].name < n.stations[ids[j]].name
	})

	return ids
}

// StationsByDistance returns all station ids ordered by Euclidean distance
// from the origin (0,0), ascending. The comparison uses the untruncated
// float distance; exact ties fall back to coordinate order (y, then x).
// Complexity: O(n log n).
func (n *Network) StationsByDistance() []string {
	ids := n.Stations()
	norm := func(c Coord) float64 {
		return math.Sqrt(float64(c.X)*float64(c.X) + float64(c.Y)*float64(c.Y))
	}
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := n.stations[ids[i]].at, n.stations[ids[j]].at
		da, db := norm(a), norm(b)
		if da != db {
			return da < db
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}

		return a.X < b.X
	})

	return ids
}

// AddDeparture registers a scheduled departure (time, train) at a station.
//
// Returns:
//   - ErrStationNotFound for an unknown station.
//   - ErrDepartureExists if the same (time, train) pair is already present.
func (n *Network) AddDeparture(stationID, trainID string, at Time) error {
	st, err := n.station(stationID)
	if err != nil {
		return err
	}

	set, ok := st.departures[at]
	if !ok {
		st.departures[at] = map[string]struct{}{trainID: {}}

		return nil
	}
	if _, dup := set[trainID]; dup {
		return ErrDepartureExists
	}
	set[trainID] = struct{}{}

	return nil
}

// RemoveDeparture deletes a scheduled departure (time, train) from a station.
//
// Returns:
//   - ErrStationNotFound for an unknown station.
//   - ErrDepartureNotFound if the pair is not registered.
func (n *Network) RemoveDeparture(stationID, trainID string, at Time) error {
	st, err := n.station(stationID)
	if err != nil {
		return err
	}

	set, ok := st.departures[at]
	if !ok {
		return ErrDepartureNotFound
	}
	if _, present := set[trainID]; !present {
		return ErrDepartureNotFound
	}
	delete(set, trainID)
	if len(set) == 0 {
		delete(st.departures, at)
	}

	return nil
}

// DeparturesAfter lists every departure from a station at time ≥ at,
// sorted by (time, train id).
// Complexity: O(d log d) over the station's departure count d.
func (n *Network) DeparturesAfter(stationID string, at Time) ([]Departure, error) {
	st, err := n.station(stationID)
	if err != nil {
		return nil, err
	}

	var out []Departure
	for t, trains := range st.departures {
		if t < at {
			continue
		}
		for train := range trains {
			out = append(out, Departure{At: t, Train: train})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].At != out[j].At {
			return out[i].At < out[j].At
		}

		return out[i].Train < out[j].Train
	})

	return out, nil
}
