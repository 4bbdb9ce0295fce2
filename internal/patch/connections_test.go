package patch

import (
	"testing"

	"github.com/brownkp/europatch/internal/catalog"
)

// jackDirections indexes a rack's connections for validity checks.
func jackDirections(modules []catalog.Module) map[uint]map[uint]catalog.Direction {
	idx := make(map[uint]map[uint]catalog.Direction)
	for _, m := range modules {
		idx[m.ID] = make(map[uint]catalog.Direction)
		for _, c := range m.Connections {
			idx[m.ID][c.ID] = c.Direction
		}
	}
	return idx
}

func assertValidConnections(t *testing.T, modules []catalog.Module, conns []Connection) {
	t.Helper()
	idx := jackDirections(modules)
	for i, c := range conns {
		if c.SourceModuleID == c.TargetModuleID {
			t.Errorf("connection %d: module %d patched into itself", i, c.SourceModuleID)
		}
		if dir, ok := idx[c.SourceModuleID][c.SourceConnectionID]; !ok || dir != catalog.Output {
			t.Errorf("connection %d: source jack %d/%d is not an output of the source module",
				i, c.SourceModuleID, c.SourceConnectionID)
		}
		if dir, ok := idx[c.TargetModuleID][c.TargetConnectionID]; !ok || dir != catalog.Input {
			t.Errorf("connection %d: target jack %d/%d is not an input of the target module",
				i, c.TargetModuleID, c.TargetConnectionID)
		}
	}
}

func TestSynthesizeConnectionsValidity(t *testing.T) {
	modules := testRack()

	for _, archetype := range Archetypes {
		t.Run(string(archetype), func(t *testing.T) {
			for seed := int64(0); seed < 5; seed++ {
				g := NewGenerator(WithRand(seededRand(seed)))
				roles := g.AssignRoles(modules, archetype)
				conns := g.SynthesizeConnections(modules, roles, archetype)
				assertValidConnections(t, modules, conns)
			}
		})
	}
}

func TestSynthesizeConnectionsAmbientTemplate(t *testing.T) {
	// A VCO and an Effect under the ambient "oscillator -> filter ->
	// reverb" template: the empty filter stage collapses and the VCO's
	// main output lands on the effect's input, colored black because the
	// source jack is named OUT.
	modules := []catalog.Module{plaitsModule(), cloudsModule()}
	g := testGenerator()
	roles := g.AssignRoles(modules, Ambient)
	conns := g.SynthesizeConnections(modules, roles, Ambient)

	found := false
	for _, c := range conns {
		if c.SourceModule == "Plaits" && c.SourceConnection == "OUT" &&
			c.TargetModule == "Clouds" && c.TargetConnection == "IN" {
			found = true
			if c.CableColor != "black" {
				t.Errorf("cable color = %q, want black for an audio OUT source", c.CableColor)
			}
			if c.Importance != 5 {
				t.Errorf("importance = %d, want 5 (Clouds is the pinned ambience generator)", c.Importance)
			}
		}
	}
	if !found {
		t.Fatalf("no Plaits/OUT -> Clouds/IN connection synthesized, got %+v", conns)
	}
	assertValidConnections(t, modules, conns)
}

func TestSynthesizeConnectionsFallbackAvoidsDuplicates(t *testing.T) {
	modules := []catalog.Module{plaitsModule(), cloudsModule()}

	for seed := int64(0); seed < 10; seed++ {
		g := NewGenerator(WithRand(seededRand(seed)))
		roles := g.AssignRoles(modules, Ambient)
		conns := g.SynthesizeConnections(modules, roles, Ambient)

		seen := make(map[[4]uint]bool)
		for _, c := range conns {
			key := c.endpoints()
			if seen[key] {
				t.Fatalf("seed %d: duplicate connection tuple %v", seed, key)
			}
			seen[key] = true
		}
	}
}

func TestSynthesizeConnectionsCableColorConvention(t *testing.T) {
	sequencer := catalog.Module{
		ID: 20, Name: "Metropolis", Type: "Sequencer",
		Connections: []catalog.Connection{
			{ID: 30, Name: "PITCH OUT", Direction: catalog.Output},
		},
	}
	vco := catalog.Module{
		ID: 21, Name: "Dixie", Type: "VCO",
		Connections: []catalog.Connection{
			{ID: 31, Name: "V/OCT", Direction: catalog.Input},
			{ID: 32, Name: "OUT", Direction: catalog.Output},
		},
	}

	g := testGenerator()
	roles := g.AssignRoles([]catalog.Module{sequencer, vco}, Techno)
	conns := g.SynthesizeConnections([]catalog.Module{sequencer, vco}, roles, Techno)

	// Techno's first template is "sequencer -> oscillator pitch": a pitch
	// target always gets a blue cable, ahead of every other rule.
	found := false
	for _, c := range conns {
		if c.SourceModule == "Metropolis" && c.TargetModule == "Dixie" && c.TargetConnection == "V/OCT" {
			found = true
			if c.CableColor != "blue" {
				t.Errorf("pitch cable color = %q, want blue", c.CableColor)
			}
		}
	}
	if !found {
		t.Fatal("sequencer -> oscillator pitch template produced no connection")
	}
}

func TestSynthesizeConnectionsNoViablePairs(t *testing.T) {
	// Modules without jacks can never be wired; the synthesizer returns an
	// empty list instead of failing.
	modules := []catalog.Module{
		{ID: 40, Name: "Blank Panel", Type: "Unknown"},
		{ID: 41, Name: "Another Blank", Type: "Unknown"},
	}
	g := testGenerator()
	roles := g.AssignRoles(modules, Ambient)
	if conns := g.SynthesizeConnections(modules, roles, Ambient); len(conns) != 0 {
		t.Errorf("expected no connections, got %d", len(conns))
	}
}
