// Package railnet models a small transit network — stations, the directed
// time-stamped legs implied by train schedules, and a hierarchical region
// tree — and answers route queries over that network with several distinct
// traversal algorithms.
//
// 🚆 What is railnet?
//
//	An in-memory library that brings together:
//		• core/   — the entity store: stations, regions, trains, derived legs,
//		            departures, and a spatial index over station coordinates
//		• route/  — five routing primitives: first-discovery reachability,
//		            minimum-hop path, cycle discovery, A* shortest distance,
//		            and time-constrained earliest arrival
//		• region/ — region-hierarchy queries: ancestor chains, recursive
//		            descendants, and common-parent lookup
//
// ✨ Why railnet?
//
//   - Minimal API, clear naming — one Network type, plain string identifiers
//   - Deterministic — sorted enumeration everywhere order is not semantic;
//     insertion order preserved where it is (legs, subregion lists)
//   - Pure Go data structures — no persistence, no network I/O
//   - Honest failure taxonomy — sentinel errors for unknown identifiers,
//     empty results for structurally vacuous queries
//
// Quick ASCII example:
//
//	    A──5──B──5──C        train T1: A@10:00 → B@10:20 → C@10:30
//
//	route.Any(net, "A", "C") walks the derived legs and returns the
//	chain [(A,0) (B,5) (C,10)].
//
// Dive into the package docs of core, route and region for contracts,
// complexity notes and edge-case behavior.
//
//	go get github.com/katalvlaran/railnet
package railnet
