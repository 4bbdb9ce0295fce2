package patch

import (
	"math/rand"

	"github.com/brownkp/europatch/internal/catalog"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func seededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func testGenerator() *Generator {
	return NewGenerator(WithRand(testRand()))
}

// plaitsModule mirrors the Mutable Instruments Plaits entry from the mock
// module library.
func plaitsModule() catalog.Module {
	return catalog.Module{
		ID:           1,
		Name:         "Plaits",
		Manufacturer: "Mutable Instruments",
		Type:         "VCO",
		Connections: []catalog.Connection{
			{ID: 1, Name: "PITCH", Direction: catalog.Input},
			{ID: 2, Name: "TRIG", Direction: catalog.Input},
			{ID: 3, Name: "OUT", Direction: catalog.Output},
			{ID: 4, Name: "AUX", Direction: catalog.Output},
		},
		Controls: []catalog.Control{
			{ID: 1, Name: "FREQ", Type: "knob", MinValue: 0, MaxValue: 100},
			{ID: 2, Name: "TIMBRE", Type: "knob", MinValue: 0, MaxValue: 100},
			{ID: 3, Name: "MORPH", Type: "knob", MinValue: 0, MaxValue: 100},
		},
	}
}

func cloudsModule() catalog.Module {
	return catalog.Module{
		ID:           2,
		Name:         "Clouds",
		Manufacturer: "Mutable Instruments",
		Type:         "Effect",
		ManualURL:    "https://mutable-instruments.net/modules/clouds/manual/",
		Connections: []catalog.Connection{
			{ID: 5, Name: "IN", Direction: catalog.Input},
			{ID: 6, Name: "OUT", Direction: catalog.Output},
		},
		Controls: []catalog.Control{
			{ID: 4, Name: "BLEND", Type: "knob", MinValue: 0, MaxValue: 100},
			{ID: 5, Name: "REVERB", Type: "knob", MinValue: 0, MaxValue: 100},
		},
	}
}

func mathsModule() catalog.Module {
	return catalog.Module{
		ID:           3,
		Name:         "Maths",
		Manufacturer: "Make Noise",
		Type:         "Function Generator",
		Connections: []catalog.Connection{
			{ID: 7, Name: "CH 1 TRIG", Direction: catalog.Input},
			{ID: 8, Name: "CH 1 OUT", Direction: catalog.Output},
			{ID: 9, Name: "CH 4 OUT", Direction: catalog.Output},
		},
		Controls: []catalog.Control{
			{ID: 6, Name: "RISE 1", Type: "knob", MinValue: 0, MaxValue: 100},
			{ID: 7, Name: "FALL 1", Type: "knob", MinValue: 0, MaxValue: 100},
			{ID: 8, Name: "CYCLE 1", Type: "switch", MinValue: 0, MaxValue: 1},
		},
	}
}

func pamelaModule() catalog.Module {
	return catalog.Module{
		ID:           4,
		Name:         "Pamela's NEW Workout",
		Manufacturer: "ALM Busy Circuits",
		Type:         "Clock",
		Connections: []catalog.Connection{
			{ID: 10, Name: "OUT 1", Direction: catalog.Output},
			{ID: 11, Name: "OUT 2", Direction: catalog.Output},
			{ID: 12, Name: "RESET", Direction: catalog.Input},
		},
		Controls: []catalog.Control{
			{ID: 9, Name: "BPM", Type: "knob", MinValue: 1, MaxValue: 300},
		},
	}
}

func testRack() []catalog.Module {
	return []catalog.Module{plaitsModule(), cloudsModule(), mathsModule(), pamelaModule()}
}
