// File: hierarchy.go
// Role: ancestor, descendant and common-parent queries over the region tree.
package region

import "github.com/katalvlaran/railnet/core"

// StationRegions returns every region a station belongs to, directly or
// transitively: the station's own region first, then each parent up to the
// hierarchy root.
//
// A station outside any region yields an empty (nil) chain; only an unknown
// station id is an error.
//
// Complexity: O(depth).
func StationRegions(net *core.Network, stationID string) ([]string, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	direct, err := net.StationRegion(stationID)
	if err != nil {
		return nil, ErrStationNotFound
	}

	var chain []string
	for cur := direct; cur != ""; {
		chain = append(chain, cur)
		parent, err := net.RegionParent(cur)
		if err != nil {
			break
		}
		cur = parent
	}

	return chain, nil
}

// AllSubregions returns every region directly or transitively below the
// given region, depth-first: each child appears before its own descendants,
// children in attachment order.
//
// A leaf region yields an empty (nil) result; only an unknown region id is
// an error.
//
// Complexity: O(descendants).
func AllSubregions(net *core.Network, regionID string) ([]string, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	if !net.HasRegion(regionID) {
		return nil, ErrRegionNotFound
	}

	var out []string
	var descend func(id string)
	descend = func(id string) {
		children, err := net.Subregions(id)
		if err != nil {
			return
		}
		for _, child := range children {
			out = append(out, child)
			descend(child)
		}
	}
	descend(regionID)

	return out, nil
}

// CommonParent returns the closest region that strictly contains both given
// regions. Neither input region qualifies as its own ancestor: the search
// starts at each region's parent, so CommonParent of a region and its direct
// subregion is that region's own parent, not the region itself.
//
// Returns ErrRegionNotFound when either id is unknown and ErrNoCommonParent
// when the two ancestor chains never meet (one of the regions is a root, or
// the regions live in disjoint trees).
//
// Complexity: O(depth₁ · depth₂).
func CommonParent(net *core.Network, id1, id2 string) (string, error) {
	if net == nil {
		return "", ErrNetworkNil
	}
	if !net.HasRegion(id1) || !net.HasRegion(id2) {
		return "", ErrRegionNotFound
	}

	p1, _ := net.RegionParent(id1)
	p2, _ := net.RegionParent(id2)

	// Siblings share their immediate parent; roots share nothing.
	if p1 == p2 {
		if p1 == "" {
			return "", ErrNoCommonParent
		}

		return p1, nil
	}

	chain1 := ancestors(net, id1)
	chain2 := ancestors(net, id2)
	if len(chain1) == 0 || len(chain2) == 0 {
		return "", ErrNoCommonParent
	}

	// First entry of chain 1 that appears anywhere in chain 2: chains run
	// innermost→outermost, so the first hit is the closest shared ancestor.
	seen := make(map[string]struct{}, len(chain2))
	for _, id := range chain2 {
		seen[id] = struct{}{}
	}
	for _, id := range chain1 {
		if _, ok := seen[id]; ok {
			return id, nil
		}
	}

	return "", ErrNoCommonParent
}

// ancestors lists the proper ancestors of a region, parent first.
func ancestors(net *core.Network, id string) []string {
	var chain []string
	cur := id
	for {
		parent, err := net.RegionParent(cur)
		if err != nil || parent == "" {
			break
		}
		chain = append(chain, parent)
		cur = parent
	}

	return chain
}
