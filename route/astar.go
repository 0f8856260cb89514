// File: astar.go
// Role: geometrically-guided shortest-distance route (A*).
package route

import (
	"container/heap"

	"github.com/katalvlaran/railnet/core"
)

// ShortestDistance returns the route with the minimum total Euclidean
// distance, as (station, distance) pairs ordered source→destination.
//
// The search is A* over a priority frontier keyed by the heuristic-augmented
// metric f = g + h, where g is the true distance accumulated so far and h is
// the straight-line estimate to the goal. Edge weights equal Euclidean
// distance, so h is admissible (never overestimates) and the route is
// optimal once the goal is popped from the frontier — popped, not merely
// discovered.
//
// The frontier uses the lazy decrease-key pattern: every improvement pushes
// a fresh (f, station) entry; outdated entries pop later and fail the relax
// test, so they are harmless.
//
// Returns:
//   - ErrNetworkNil / ErrStationNotFound for invalid input.
//   - (nil, nil) when the destination is unreachable.
//   - a single zero-distance step when from == to.
//
// Complexity: O((V + E) log V).
func ShortestDistance(net *core.Network, from, to string) ([]Step, error) {
	// 1) Validate endpoints; short-circuit the trivial query.
	if err := endpoints(net, from, to); err != nil {
		return nil, err
	}
	if from == to {
		return []Step{{Station: from, Dist: 0}}, nil
	}
	goalAt, err := net.StationCoord(to)
	if err != nil {
		return nil, ErrStationNotFound
	}

	// 2) Fresh scratch: dist holds g, aux holds f. Source starts at g = 0.
	s := newScratch(net)
	s.dist[from] = 0
	s.aux[from] = 0

	pq := &frontier{{id: from, key: 0}}
	heap.Init(pq)

	// 3) Expand in increasing f until the goal is popped.
	for pq.Len() > 0 {
		u := heap.Pop(pq).(frontierItem).id
		if u == to {
			break
		}
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
			// Relax u→leg.To on the true-distance label.
			w := core.Dist(uAt, vAt)
			if g := s.dist[u] + w; s.distOf(leg.To) > g {
				f := g + core.Dist(vAt, goalAt)
				s.dist[leg.To] = g
				s.aux[leg.To] = f
				s.pred[leg.To] = u
				heap.Push(pq, frontierItem{id: leg.To, key: int64(f)})
			}
		}
	}

	// 4) Report true distances (g), not the heuristic-augmented keys.
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
