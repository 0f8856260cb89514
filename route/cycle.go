// File: cycle.go
// Role: depth-first discovery of a route containing a cycle.
package route

import "github.com/katalvlaran/railnet/core"

// WithCycle searches depth-first from a station for any route that revisits
// a station already on the current route. The result lists the stations from
// the traversal root up to the station whose leg closes the cycle, followed
// by the revisited (on-stack) station as the final element.
//
// Detection uses an explicit stack with three-color marking: a leg to a gray
// (on-stack) station is a back edge and closes a cycle; legs to black
// (finished) stations are cross edges and do not.
//
// Returns:
//   - ErrNetworkNil / ErrStationNotFound for invalid input.
//   - (nil, nil) when no cycle is reachable from the root.
//
// Complexity: O(V + E).
func WithCycle(net *core.Network, from string) ([]string, error) {
	// 1) Validate the root.
	if net == nil {
		return nil, ErrNetworkNil
	}
	if !net.HasStation(from) {
		return nil, ErrStationNotFound
	}

	// 2) Fresh scratch; explicit stack seeded with the root.
	s := newScratch(net)
	stack := []string{from}

	// tail is the station whose leg closed the cycle; closing is the
	// on-stack station that leg points at.
	var tail, closing string
	found := false

	// 3) Iterative DFS. A white station is marked gray and pushed back so
	//    its second pop finishes it (black); its unvisited neighbors are
	//    stacked with predecessor links for reconstruction.
	for len(stack) > 0 && !found {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch s.color[u] {
		case white:
			s.color[u] = gray
			stack = append(stack, u)

			legs, err := net.Legs(u)
			if err != nil {
				continue
			}
			for _, leg := range legs {
				if !net.HasStation(leg.To) {
					continue
				}
				switch s.color[leg.To] {
				case white:
					s.pred[leg.To] = u
					stack = append(stack, leg.To)
				case gray:
					tail, closing = u, leg.To
					found = true
				}
				if found {
					break
				}
			}
		case gray:
			// All descendants explored; cross edges to u are no cycle.
			s.color[u] = black
		}
	}

	if !found {
		return nil, nil
	}

	// 4) Root→tail via predecessor links, then the closing station last.
	ids := s.backtrack(from, tail)
	if ids == nil {
		return nil, nil
	}

	return append(ids, closing), nil
}
