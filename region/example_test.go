package region_test

import (
	"fmt"

	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/region"
)

// ExampleStationRegions resolves the full containment chain of one station.
func ExampleStationRegions() {
	n := core.New()
	_ = n.AddRegion("FI", "Finland", nil)
	_ = n.AddRegion("PIR", "Pirkanmaa", nil)
	_ = n.AddRegion("TRE", "Tampere", nil)
	_ = n.AttachRegion("PIR", "FI")
	_ = n.AttachRegion("TRE", "PIR")

	_ = n.AddStation("tpe", "Tampere asema", core.Coord{X: 5, Y: 5})
	_ = n.AttachStation("tpe", "TRE")

	chain, _ := region.StationRegions(n, "tpe")
	fmt.Println(chain)
	// Output:
	// [TRE PIR FI]
}

// ExampleCommonParent finds the closest region strictly containing both of
// two nested regions.
func ExampleCommonParent() {
	n := core.New()
	_ = n.AddRegion("FI", "Finland", nil)
	_ = n.AddRegion("PIR", "Pirkanmaa", nil)
	_ = n.AddRegion("TRE", "Tampere", nil)
	_ = n.AttachRegion("PIR", "FI")
	_ = n.AttachRegion("TRE", "PIR")

	parent, _ := region.CommonParent(n, "PIR", "TRE")
	fmt.Println(parent)
	// Output:
	// FI
}
