// File: trains.go
// Role: Train insertion (the graph builder) and schedule queries.
//
// AddTrain is the only source of graph edges. Validation happens before any
// mutation so a failed insert leaves no legs and no departures behind.
package core

import "sort"

// AddTrain registers a train with its ordered stop schedule and derives the
// adjacency it implies: for every consecutive stop pair (i, i+1) one Leg
// (departure at i, arrival at i+1, destination i+1) is appended to stop i's
// station, and the same (station, time, train) is registered as a scheduled
// departure. The final stop gets no leg and no departure.
//
// The whole insertion fails with no mutation when the train id is already
// registered (ErrTrainExists) or any referenced station is unknown
// (ErrStationNotFound).
//
// Complexity: O(s) over the stop count.
func (n *Network) AddTrain(id string, stops []Stop) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, exists := n.trains[id]; exists {
		return ErrTrainExists
	}
	// Validate every referenced station before touching anything.
	for _, s := range stops {
		if _, ok := n.stations[s.Station]; !ok {
			return ErrStationNotFound
		}
	}

	n.trains[id] = &trainRecord{stops: append([]Stop(nil), stops...)}

	for i := 0; i+1 < len(stops); i++ {
		cur, next := stops[i], stops[i+1]
		// A duplicate (time, train) departure is tolerated: the first
		// registration stands, mirroring the schedule-board semantics.
		_ = n.AddDeparture(cur.Station, id, cur.Depart)
		st := n.stations[cur.Station]
		st.legs = append(st.legs, Leg{
			Depart: cur.Depart,
			Arrive: next.Depart,
			To:     next.Station,
		})
	}

	return nil
}

// HasTrain reports whether id is a registered train.
func (n *Network) HasTrain(id string) bool {
	_, ok := n.trains[id]

	return ok
}

// Trains returns all train ids, sorted ascending.
func (n *Network) Trains() []string {
	ids := make([]string, 0, len(n.trains))
	for id := range n.trains {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// TrainStops returns a copy of the ordered stop schedule of a train.
func (n *Network) TrainStops(id string) ([]Stop, error) {
	tr, ok := n.trains[id]
	if !ok {
		return nil, ErrTrainNotFound
	}

	return append([]Stop(nil), tr.stops...), nil
}

// Legs returns the outgoing legs of a station in insertion order.
// The returned slice is the live adjacency — callers must not mutate it.
func (n *Network) Legs(stationID string) ([]Leg, error) {
	st, err := n.station(stationID)
	if err != nil {
		return nil, err
	}

	return st.legs, nil
}

// NextStationsFrom lists the stations immediately following the given one on
// any train's schedule, scanning trains in id order. Duplicates are kept: two
// trains sharing the same next hop contribute two entries. A station with no
// registered departures yields an empty slice.
//
// Complexity: O(T·s) over all trains' stop counts.
func (n *Network) NextStationsFrom(id string) ([]string, error) {
	st, err := n.station(id)
	if err != nil {
		return nil, err
	}
	if len(st.departures) == 0 {
		return nil, nil
	}

	var out []string
	for _, trainID := range n.Trains() {
		stops := n.trains[trainID].stops
		for i := 0; i+1 < len(stops); i++ {
			if stops[i].Station == id {
				out = append(out, stops[i+1].Station)
			}
		}
	}

	return out, nil
}

// TrainStationsFrom lists the stations a train serves strictly after the
// given station, in schedule order. The final stop of a route yields an
// empty slice.
//
// Returns:
//   - ErrStationNotFound / ErrTrainNotFound for unknown ids.
//   - ErrNoDeparture when the train has no registered departure from the
//     station, or the station does not appear on the train's schedule.
func (n *Network) TrainStationsFrom(stationID, trainID string) ([]string, error) {
	st, err := n.station(stationID)
	if err != nil {
		return nil, err
	}
	tr, ok := n.trains[trainID]
	if !ok {
		return nil, ErrTrainNotFound
	}

	departs := false
	for _, trains := range st.departures {
		if _, ok = trains[trainID]; ok {
			departs = true

			break
		}
	}
	if !departs {
		return nil, ErrNoDeparture
	}

	var out []string
	found := false
	for _, s := range tr.stops {
		if found {
			out = append(out, s.Station)
		}
		if s.Station == stationID {
			found = true
		}
	}
	if !found {
		return nil, ErrNoDeparture
	}

	return out, nil
}
