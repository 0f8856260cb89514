// File: any.go
// Role: unconstrained reachability — first-discovery route between two
// stations.
package route

import "github.com/katalvlaran/railnet/core"

// Any returns some route from one station to another, as (station, distance)
// pairs ordered source→destination.
//
// The traversal is a FIFO frontier walk that fixes each station's predecessor
// the first time it is seen and stops scanning as soon as the destination is
// discovered. It is discovery-order search, NOT a shortest-path guarantee:
// the reported distance is whatever accumulated along the first-discovered
// chain, which depends on leg insertion order, not edge weight.
//
// Returns:
//   - ErrNetworkNil / ErrStationNotFound for invalid input.
//   - (nil, nil) when the destination is unreachable.
//   - a single zero-distance step when from == to.
//
// Complexity: O(V + E).
func Any(net *core.Network, from, to string) ([]Step, error) {
	// 1) Validate endpoints; short-circuit the trivial query.
	if err := endpoints(net, from, to); err != nil {
		return nil, err
	}
	if from == to {
		return []Step{{Station: from, Dist: 0}}, nil
	}

	// 2) Fresh scratch: source label 0, everything else undiscovered.
	s := newScratch(net)
	s.dist[from] = 0
	queue := []string{from}

	// 3) FIFO expansion with early exit on destination discovery.
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
				continue // leg to a removed station
			}
			if _, seen := s.pred[leg.To]; !seen {
				s.dist[leg.To] = s.dist[u] + core.Dist(uAt, vAt)
				s.pred[leg.To] = u
				queue = append(queue, leg.To)
			}
			if leg.To == to {
				found = true

				break
			}
		}
	}

	// 4) Backtrack predecessor links into source→destination order.
	ids := s.backtrack(from, to)
	if ids == nil {
		return nil, nil
	}
	steps := make([]Step, len(ids))
	for i, id := range ids {
		steps[i] = Step{Station: id, Dist: s.dist[id]}
	}

	return steps, nil
}
