// Package region answers containment questions over the region hierarchy of
// a core.Network: which regions a station belongs to, which regions sit below
// a given region, and where two regions' ancestor chains first meet.
//
// What:
//
//   - StationRegions — the chain from a station's direct region up to the
//     hierarchy root, innermost first.
//   - AllSubregions — every region directly or transitively below a region,
//     in depth-first attachment order.
//   - CommonParent — the closest region that strictly contains both inputs.
//
// Why it matters:
//
//   - 🗺 Containment chains drive display grouping and fare-zone resolution.
//   - 🔎 The queries are read-only: they never mutate the network and never
//     allocate more than the result they return.
//
// Determinism:
//
// Child regions enumerate in the order they were attached, so repeated calls
// on an unchanged network return identical slices.
//
// Failure taxonomy:
//
// Unknown identifiers return ErrStationNotFound / ErrRegionNotFound.
// A structurally empty answer is not an error: a region-less station yields
// an empty chain, a leaf region yields no subregions. CommonParent is the
// exception — two regions without a shared ancestor return ErrNoCommonParent,
// because "" is not a region id a caller can act on.
//
// See package core for how the hierarchy is built (AttachRegion,
// AttachStation) and package route for traversal over the leg graph.
package region
