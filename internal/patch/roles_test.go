package patch

import (
	"testing"

	"github.com/brownkp/europatch/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestAssignRolesSpecialCases(t *testing.T) {
	g := testGenerator()

	roles := g.AssignRoles([]catalog.Module{cloudsModule()}, Ambient)
	assert.Equal(t, Role{Role: "ambience generator", Importance: 5}, roles[2],
		"effect module under ambient takes the pinned role")

	roles = g.AssignRoles([]catalog.Module{pamelaModule()}, Generative)
	assert.Equal(t, Role{Role: "pattern generator", Importance: 5}, roles[4],
		"clock module under generative takes the pinned role")

	roles = g.AssignRoles([]catalog.Module{plaitsModule()}, Bass)
	assert.Equal(t, Role{Role: "bass voice", Importance: 5}, roles[1])
}

func TestAssignRolesPicksFromCandidateList(t *testing.T) {
	candidates := map[string]bool{}
	for _, r := range roleCandidates["oscillator"] {
		candidates[r] = true
	}

	for seed := int64(0); seed < 10; seed++ {
		g := NewGenerator(WithRand(seededRand(seed)))
		// Techno leaves oscillators unpinned, so the role is a random
		// pick from the candidate list.
		roles := g.AssignRoles([]catalog.Module{plaitsModule()}, Techno)
		got := roles[1]
		if !candidates[got.Role] {
			t.Fatalf("seed %d: role %q not in oscillator candidate list", seed, got.Role)
		}
		if got.Importance != 3 {
			t.Fatalf("seed %d: importance = %d, want 3", seed, got.Importance)
		}
	}
}

func TestAssignRolesUnknownTypeGetsUtility(t *testing.T) {
	g := testGenerator()
	m := catalog.Module{ID: 99, Name: "Mystery", Type: "Unknown"}

	roles := g.AssignRoles([]catalog.Module{m}, Ambient)
	assert.Equal(t, Role{Role: "utility", Importance: 2}, roles[99])
}

func TestAssignRolesCoversEveryModule(t *testing.T) {
	g := testGenerator()
	modules := testRack()

	roles := g.AssignRoles(modules, Drone)
	for _, m := range modules {
		r, ok := roles[m.ID]
		if !ok {
			t.Errorf("no role assigned to %s", m.Name)
			continue
		}
		if r.Role == "" || r.Importance < 1 || r.Importance > 5 {
			t.Errorf("bad role for %s: %+v", m.Name, r)
		}
	}
}
