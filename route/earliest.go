// File: earliest.go
// Role: earliest-arrival route over timetabled legs.
package route

import (
	"container/heap"

	"github.com/katalvlaran/railnet/core"
)

// EarliestArrival returns a route from one station to another that arrives
// as early as possible when travel begins no sooner than start, as
// (station, time) pairs ordered source→destination. The final pair carries
// the arrival time at the destination; the first pair carries the chosen
// departure from the source.
//
// The search is time-relaxed Dijkstra over legs: a leg u→v departing at d
// and arriving at a is usable when the current label at u is at most d, and
// it improves v when a beats v's label. The frontier orders stations by
// arrival label with lazy decrease-key pushes.
//
// A second pass walks the chosen station chain once more and tightens each
// intermediate label to the latest departure that still makes the onward
// connection, so the reported times describe one consistent journey rather
// than the earliest event per station.
//
// Returns:
//   - ErrNetworkNil / ErrStationNotFound for invalid input.
//   - (nil, nil) when no timetable-consistent route exists.
//   - a single (from, start) step when from == to.
//
// Complexity: O((V + E) log V) for the search, O(route · E) for the tighten
// pass.
func EarliestArrival(net *core.Network, from, to string, start core.Time) ([]TimedStep, error) {
	// 1) Validate endpoints; short-circuit the trivial query.
	if err := endpoints(net, from, to); err != nil {
		return nil, err
	}
	if from == to {
		return []TimedStep{{Station: from, At: start}}, nil
	}

	// 2) Fresh scratch: the source is reachable at the start time, every
	//    other station at NoTime.
	s := newScratch(net)
	s.when[from] = start

	pq := &frontier{{id: from, key: 0}}
	heap.Init(pq)

	// 3) Expand in increasing arrival time until the destination is popped.
	for pq.Len() > 0 {
		u := heap.Pop(pq).(frontierItem).id
		if u == to {
			break
		}

		legs, _ := net.Legs(u)
		for _, leg := range legs {
			if !net.HasStation(leg.To) {
				continue
			}
			// Usable and improving: we are at u no later than the leg
			// departs, the leg moves forward in time, and it beats the
			// arrival label at its destination.
			if s.whenOf(leg.To) > leg.Arrive &&
				s.whenOf(u) < leg.Arrive &&
				s.whenOf(u) <= leg.Depart &&
				leg.Depart < leg.Arrive {
				s.when[u] = leg.Depart
				s.when[leg.To] = leg.Arrive
				s.pred[leg.To] = u
				heap.Push(pq, frontierItem{id: leg.To, key: int64(leg.Arrive)})
			}
		}
	}

	ids := s.backtrack(from, to)
	if ids == nil {
		return nil, nil
	}

	// 4) Tighten pass: for each consecutive pair on the chosen chain, pick
	//    the latest departure that still leaves after the previous arrival
	//    and reaches no later than the already-fixed label downstream.
	prevArrival := start
	tracker := core.NoTime
	for i := 0; i+1 < len(ids); i++ {
		cur, next := ids[i], ids[i+1]
		legs, _ := net.Legs(cur)
		for _, leg := range legs {
			if leg.To != next {
				continue
			}
			if leg.Depart < s.when[cur] &&
				leg.Depart >= prevArrival &&
				leg.Arrive <= s.when[next] {
				s.when[cur] = leg.Depart
				tracker = leg.Arrive
			}
		}
		prevArrival = tracker
	}

	steps := make([]TimedStep, len(ids))
	for i, id := range ids {
		steps[i] = TimedStep{Station: id, At: s.when[id]}
	}

	return steps, nil
}
