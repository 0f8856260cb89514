// File: least.go
// Role: minimum-hop route with true distance reported alongside.
package route

import "github.com/katalvlaran/railnet/core"

// LeastStations returns a route passing through the fewest stations, as
// (station, distance) pairs ordered source→destination.
//
// The frontier expands breadth-first, one hop level at a time, so fixing a
// station's predecessor at first discovery guarantees the minimum hop count.
// The hop count itself is only the search label; the reported metric is the
// true Euclidean distance accumulated along that same hop-minimal chain.
//
// Returns:
//   - ErrNetworkNil / ErrStationNotFound for invalid input.
//   - (nil, nil) when the destination is unreachable.
//   - a single zero-distance step when from == to.
//
// Complexity: O(V + E).
func LeastStations(net *core.Network, from, to string) ([]Step, error) {
	// 1) Validate endpoints; short-circuit the trivial query.
	if err := endpoints(net, from, to); err != nil {
		return nil, err
	}
	if from == to {
		return []Step{{Station: from, Dist: 0}}, nil
	}

	// 2) Fresh scratch: dist counts hops, aux accumulates Euclidean length.
	s := newScratch(net)
	s.dist[from] = 0
	s.aux[from] = 0
	queue := []string{from}

	// 3) Level-by-level expansion, first discovery wins.
	found := false
	for len(queue) > 0 && !found {
		u := queue[0]
		queue = queue[1:]
		uAt, err := net.StationCoord(u)
		if err != nil {
			continue
		}
		legs, _ := net.Legs(u)
		for _, leg := range legs {
			vAt, err := net.StationCoord(leg.To)
			if err != nil {
				continue
			}
			if _, seen := s.pred[leg.To]; !seen {
				s.dist[leg.To] = s.dist[u] + 1
				s.aux[leg.To] = s.aux[u] + core.Dist(uAt, vAt)
				s.pred[leg.To] = u
				queue = append(queue, leg.To)
			}
			if leg.To == to {
				found = true

				break
			}
		}
	}

	// 4) Report the accumulated distance, not the hop label.
	ids := s.backtrack(from, to)
	if ids == nil {
		return nil, nil
	}
	steps := make([]Step, len(ids))
	for i, id := range ids {
		steps[i] = Step{Station: id, Dist: s.aux[id]}
	}

	return steps, nil
}
