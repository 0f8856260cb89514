package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/railnet/core"
)

// TestStationAt covers the exact-point lookup, including the deterministic
// smallest-id winner when several stations share a coordinate.
func TestStationAt(t *testing.T) {
	n := core.New()
	_ = n.AddStation("B", "East", core.Coord{X: 5, Y: 5})
	_ = n.AddStation("A", "West", core.Coord{X: 5, Y: 5})
	_ = n.AddStation("C", "North", core.Coord{X: 9, Y: 9})

	id, err := n.StationAt(core.Coord{X: 5, Y: 5})
	if err != nil {
		t.Fatal(err)
	}
	if id != "A" {
		t.Errorf("StationAt = %s; want A (smallest id at shared point)", id)
	}
	if _, err = n.StationAt(core.Coord{X: 1, Y: 1}); !errors.Is(err, core.ErrStationNotFound) {
		t.Errorf("empty point: want ErrStationNotFound, got %v", err)
	}
}

// TestStationsClosestTo verifies nearest-first order and the three-result cap.
func TestStationsClosestTo(t *testing.T) {
	n := core.New()
	_ = n.AddStation("far", "F", core.Coord{X: 6, Y: 8})  // distance 10
	_ = n.AddStation("at", "O", core.Coord{})             // distance 0
	_ = n.AddStation("near", "N", core.Coord{X: 1, Y: 0}) // distance 1
	_ = n.AddStation("mid", "M", core.Coord{X: 3, Y: 4})  // distance 5

	want := []string{"at", "near", "mid"} // far is cut by the limit
	if got := n.StationsClosestTo(core.Coord{}); !reflect.DeepEqual(got, want) {
		t.Errorf("StationsClosestTo = %v; want %v", got, want)
	}
}

// TestStationsClosestTo_FewerThanLimit returns what exists, in order.
func TestStationsClosestTo_FewerThanLimit(t *testing.T) {
	n := core.New()
	if got := n.StationsClosestTo(core.Coord{}); len(got) != 0 {
		t.Errorf("empty network: got %v; want empty", got)
	}

	_ = n.AddStation("b", "B", core.Coord{X: 2, Y: 0})
	_ = n.AddStation("a", "A", core.Coord{X: 1, Y: 0})
	want := []string{"a", "b"}
	if got := n.StationsClosestTo(core.Coord{}); !reflect.DeepEqual(got, want) {
		t.Errorf("two stations: got %v; want %v", got, want)
	}
}

// TestSpatialIndex_FollowsMoves verifies that ChangeStationCoord and
// RemoveStation keep the index consistent with the catalog.
func TestSpatialIndex_FollowsMoves(t *testing.T) {
	n := core.New()
	_ = n.AddStation("A", "Central", core.Coord{X: 1, Y: 1})

	_ = n.ChangeStationCoord("A", core.Coord{X: 8, Y: 8})
	if _, err := n.StationAt(core.Coord{X: 1, Y: 1}); !errors.Is(err, core.ErrStationNotFound) {
		t.Errorf("old point still indexed: %v", err)
	}
	if id, err := n.StationAt(core.Coord{X: 8, Y: 8}); err != nil || id != "A" {
		t.Errorf("new point: got (%q, %v); want (A, nil)", id, err)
	}

	_ = n.RemoveStation("A")
	if _, err := n.StationAt(core.Coord{X: 8, Y: 8}); !errors.Is(err, core.ErrStationNotFound) {
		t.Errorf("removed station still indexed: %v", err)
	}
}
