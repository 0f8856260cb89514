// File: regions.go
// Role: Region lifecycle, hierarchy attachment and boundary access.
//
// The region structure is a forest: multiple disjoint trees, each region
// holding at most one parent. AttachRegion performs no cycle check — a
// malformed attach sequence can create a cyclic "forest"; see the region
// package for the traversal consequences.
package core

import (
	"sort"

	"github.com/twpayne/go-polyline"
)

// AddRegion registers a new region with its boundary coordinates.
//
// Returns:
//   - ErrEmptyID if id is empty.
//   - ErrRegionExists if the id is already registered.
func (n *Network) AddRegion(id, name string, boundary []Coord) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, exists := n.regions[id]; exists {
		return ErrRegionExists
	}

	n.regions[id] = &regionRecord{
		name:     name,
		boundary: append([]Coord(nil), boundary...),
	}

	return nil
}

// HasRegion reports whether id is a registered region.
func (n *Network) HasRegion(id string) bool {
	_, ok := n.regions[id]

	return ok
}

// Regions returns all region ids, sorted ascending.
func (n *Network) Regions() []string {
	ids := make([]string, 0, len(n.regions))
	for id := range n.regions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// RegionName returns the display name of a region.
func (n *Network) RegionName(id string) (string, error) {
	r, err := n.regionRec(id)
	if err != nil {
		return "", err
	}

	return r.name, nil
}

// RegionBoundary returns a copy of the region's boundary coordinates.
func (n *Network) RegionBoundary(id string) ([]Coord, error) {
	r, err := n.regionRec(id)
	if err != nil {
		return nil, err
	}

	return append([]Coord(nil), r.boundary...), nil
}

// EncodedBoundary returns the region boundary as a Google encoded polyline
// (the export format transit feeds use for shape geometry). Coordinates are
// encoded as (Y, X) pairs. An empty boundary encodes to "".
func (n *Network) EncodedBoundary(id string) (string, error) {
	r, err := n.regionRec(id)
	if err != nil {
		return "", err
	}

	coords := make([][]float64, len(r.boundary))
	for i, c := range r.boundary {
		coords[i] = []float64{float64(c.Y), float64(c.X)}
	}

	return string(polyline.EncodeCoords(coords)), nil
}

// AttachRegion makes child a direct subregion of parent.
//
// Fails with no mutation when either id is unknown (ErrRegionNotFound) or the
// child already has a parent (ErrRegionAttached). No cycle check is performed:
// attaching an ancestor under its own descendant is accepted and produces a
// cyclic structure.
func (n *Network) AttachRegion(childID, parentID string) error {
	child, err := n.regionRec(childID)
	if err != nil {
		return err
	}
	parent, err := n.regionRec(parentID)
	if err != nil {
		return err
	}
	if child.parent != "" {
		return ErrRegionAttached
	}

	child.parent = parentID
	for _, c := range parent.children {
		if c == childID {
			return nil // already listed; keep the single entry
		}
	}
	parent.children = append(parent.children, childID)

	return nil
}

// AttachStation assigns a station to a region. A station belongs to at most
// one region; a second attach fails and leaves the first assignment intact.
//
// Returns ErrStationNotFound / ErrRegionNotFound for unknown ids and
// ErrStationAttached when the station is already regioned.
func (n *Network) AttachStation(stationID, regionID string) error {
	st, err := n.station(stationID)
	if err != nil {
		return err
	}
	if _, err = n.regionRec(regionID); err != nil {
		return err
	}
	if st.region != "" {
		return ErrStationAttached
	}

	st.region = regionID

	return nil
}

// RegionParent returns the direct parent of a region, or "" for a root.
func (n *Network) RegionParent(id string) (string, error) {
	r, err := n.regionRec(id)
	if err != nil {
		return "", err
	}

	return r.parent, nil
}

// Subregions returns the direct subregions of a region in attachment order.
// A leaf region yields an empty slice.
func (n *Network) Subregions(id string) ([]string, error) {
	r, err := n.regionRec(id)
	if err != nil {
		return nil, err
	}

	return append([]string(nil), r.children...), nil
}
