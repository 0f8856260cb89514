// File: spatial.go
// Role: R-tree spatial index over station coordinates — exact-point lookup
// and k-nearest queries.
//
// The index stores one degenerate (point) box per station, keyed by station
// id, and is kept in sync by AddStation, RemoveStation and
// ChangeStationCoord.
package core

import (
	"sort"

	"github.com/tidwall/rtree"
)

// closestLimit caps StationsClosestTo results, matching the schedule-board
// use case it serves: the three nearest stations to a point.
const closestLimit = 3

// point converts an integer coordinate to the index's float box corner.
func point(at Coord) [2]float64 {
	return [2]float64{float64(at.X), float64(at.Y)}
}

func (n *Network) indexInsert(id string, at Coord) {
	p := point(at)
	n.index.Insert(p, p, id)
}

func (n *Network) indexDelete(id string, at Coord) {
	p := point(at)
	n.index.Delete(p, p, id)
}

// StationAt returns the station registered exactly at the given coordinate.
// When several stations share the coordinate, the lexicographically smallest
// id wins (deterministic, unlike a map scan).
//
// Returns ErrStationNotFound when no station sits at the point.
// Complexity: O(log n) expected.
func (n *Network) StationAt(at Coord) (string, error) {
	p := point(at)
	var hits []string
	n.index.Search(p, p, func(_, _ [2]float64, id string) bool {
		hits = append(hits, id)

		return true
	})
	if len(hits) == 0 {
		return "", ErrStationNotFound
	}
	sort.Strings(hits)

	return hits[0], nil
}

// StationsClosestTo returns up to three station ids ordered by increasing
// Euclidean distance from the given coordinate. Fewer stations exist, fewer
// are returned; an empty network yields an empty slice.
// Complexity: O(k log n) for k results.
func (n *Network) StationsClosestTo(at Coord) []string {
	p := point(at)
	var out []string
	n.index.Nearby(
		rtree.BoxDist[float64, string](p, p, nil),
		func(_, _ [2]float64, id string, _ float64) bool {
			out = append(out, id)

			return len(out) < closestLimit
		},
	)

	return out
}
