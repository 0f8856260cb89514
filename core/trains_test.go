package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/railnet/core"
)

// lineABC registers stations A(0,0), B(3,4), C(6,8) and one train stopping at
// each; the shared fixture for schedule and leg tests.
func lineABC(t *testing.T) *core.Network {
	t.Helper()
	n := core.New()
	for _, s := range []struct {
		id string
		at core.Coord
	}{
		{"A", core.Coord{X: 0, Y: 0}},
		{"B", core.Coord{X: 3, Y: 4}},
		{"C", core.Coord{X: 6, Y: 8}},
	} {
		if err := n.AddStation(s.id, s.id, s.at); err != nil {
			t.Fatal(err)
		}
	}
	if err := n.AddTrain("T1", []core.Stop{
		{Station: "A", Depart: 100},
		{Station: "B", Depart: 200},
		{Station: "C", Depart: 300},
	}); err != nil {
		t.Fatal(err)
	}

	return n
}

// TestAddTrain_DerivesLegsAndDepartures verifies the graph-building side
// effects of a schedule insert.
func TestAddTrain_DerivesLegsAndDepartures(t *testing.T) {
	n := lineABC(t)

	legs, err := n.Legs("A")
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Leg{{Depart: 100, Arrive: 200, To: "B"}}
	if !reflect.DeepEqual(legs, want) {
		t.Errorf("Legs(A) = %v; want %v", legs, want)
	}

	// the final stop owns no leg and no departure
	legs, _ = n.Legs("C")
	if len(legs) != 0 {
		t.Errorf("Legs(C) = %v; want none", legs)
	}
	deps, _ := n.DeparturesAfter("C", 0)
	if len(deps) != 0 {
		t.Errorf("DeparturesAfter(C) = %v; want none", deps)
	}

	// non-final stops carry the (time, train) departure
	deps, _ = n.DeparturesAfter("B", 0)
	if want := []core.Departure{{At: 200, Train: "T1"}}; !reflect.DeepEqual(deps, want) {
		t.Errorf("DeparturesAfter(B) = %v; want %v", deps, want)
	}
}

// TestAddTrain_AtomicOnUnknownStation verifies that a failed insert leaves no
// partial legs, departures or schedule behind.
func TestAddTrain_AtomicOnUnknownStation(t *testing.T) {
	n := core.New()
	_ = n.AddStation("A", "A", core.Coord{})

	err := n.AddTrain("T1", []core.Stop{
		{Station: "A", Depart: 100},
		{Station: "ghost", Depart: 200},
	})
	if !errors.Is(err, core.ErrStationNotFound) {
		t.Fatalf("want ErrStationNotFound, got %v", err)
	}
	if n.HasTrain("T1") {
		t.Error("train registered despite failed insert")
	}
	if legs, _ := n.Legs("A"); len(legs) != 0 {
		t.Errorf("Legs(A) = %v; want none after failed insert", legs)
	}
	if deps, _ := n.DeparturesAfter("A", 0); len(deps) != 0 {
		t.Errorf("departures = %v; want none after failed insert", deps)
	}
}

// TestAddTrain_Errors covers id validation and duplicates.
func TestAddTrain_Errors(t *testing.T) {
	n := lineABC(t)
	if err := n.AddTrain("", nil); !errors.Is(err, core.ErrEmptyID) {
		t.Errorf("empty id: want ErrEmptyID, got %v", err)
	}
	if err := n.AddTrain("T1", nil); !errors.Is(err, core.ErrTrainExists) {
		t.Errorf("duplicate: want ErrTrainExists, got %v", err)
	}
}

// TestTrainStops returns the inserted schedule as an independent copy.
func TestTrainStops(t *testing.T) {
	n := lineABC(t)

	stops, err := n.TrainStops("T1")
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Stop{
		{Station: "A", Depart: 100},
		{Station: "B", Depart: 200},
		{Station: "C", Depart: 300},
	}
	if !reflect.DeepEqual(stops, want) {
		t.Errorf("TrainStops = %v; want %v", stops, want)
	}

	stops[0].Station = "mutated"
	again, _ := n.TrainStops("T1")
	if again[0].Station != "A" {
		t.Error("TrainStops leaked internal schedule memory")
	}

	if _, err = n.TrainStops("missing"); !errors.Is(err, core.ErrTrainNotFound) {
		t.Errorf("unknown train: want ErrTrainNotFound, got %v", err)
	}
}

// TestNextStationsFrom scans trains in id order and keeps duplicates.
func TestNextStationsFrom(t *testing.T) {
	n := lineABC(t)
	// a second train also runs A→B, so B appears twice
	if err := n.AddTrain("T2", []core.Stop{
		{Station: "A", Depart: 130},
		{Station: "B", Depart: 230},
	}); err != nil {
		t.Fatal(err)
	}

	got, err := n.NextStationsFrom("A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"B", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NextStationsFrom(A) = %v; want %v", got, want)
	}

	// the terminal stop has no departures: empty, not an error
	got, err = n.NextStationsFrom("C")
	if err != nil || len(got) != 0 {
		t.Errorf("NextStationsFrom(C) = (%v, %v); want (empty, nil)", got, err)
	}

	if _, err = n.NextStationsFrom("missing"); !errors.Is(err, core.ErrStationNotFound) {
		t.Errorf("unknown station: want ErrStationNotFound, got %v", err)
	}
}

// TestTrainStationsFrom lists the onward stations of one train's schedule.
func TestTrainStationsFrom(t *testing.T) {
	n := lineABC(t)

	got, err := n.TrainStationsFrom("A", "T1")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("TrainStationsFrom(A, T1) = %v; want %v", got, want)
	}

	// the train does not depart from its terminal stop
	if _, err = n.TrainStationsFrom("C", "T1"); !errors.Is(err, core.ErrNoDeparture) {
		t.Errorf("terminal stop: want ErrNoDeparture, got %v", err)
	}
	if _, err = n.TrainStationsFrom("missing", "T1"); !errors.Is(err, core.ErrStationNotFound) {
		t.Errorf("unknown station: want ErrStationNotFound, got %v", err)
	}
	if _, err = n.TrainStationsFrom("A", "missing"); !errors.Is(err, core.ErrTrainNotFound) {
		t.Errorf("unknown train: want ErrTrainNotFound, got %v", err)
	}
}

// TestClearTrains empties the train catalog while already-derived legs and
// departures stay on their stations.
func TestClearTrains(t *testing.T) {
	n := lineABC(t)

	n.ClearTrains()

	if n.TrainCount() != 0 {
		t.Errorf("TrainCount = %d; want 0", n.TrainCount())
	}
	if n.HasTrain("T1") {
		t.Error("HasTrain(T1) = true after ClearTrains")
	}
	// the derived graph survives
	legs, _ := n.Legs("A")
	if len(legs) != 1 || legs[0].To != "B" {
		t.Errorf("Legs(A) after ClearTrains = %v; want the A→B leg", legs)
	}
	deps, _ := n.DeparturesAfter("A", 0)
	if len(deps) != 1 {
		t.Errorf("departures after ClearTrains = %v; want one", deps)
	}
}
