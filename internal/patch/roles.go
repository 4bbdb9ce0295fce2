package patch

import "github.com/brownkp/europatch/internal/catalog"

// roleCandidates lists, per module-type keyword, the functional roles a
// module of that type can take on. Order matters: the first keyword that
// matches a module's declared type wins.
var roleKeywords = []string{
	"oscillator", "filter", "envelope", "lfo", "vca", "reverb", "delay",
	"sequencer", "clock", "random", "quantizer", "mixer", "function",
	"granular", "resonator", "noise",
}

var roleCandidates = map[string][]string{
	"oscillator": {"sound source", "modulation source", "carrier", "modulator"},
	"filter":     {"sound processor", "tone shaper", "resonator"},
	"envelope":   {"modulation source", "amplitude shaper", "transient generator"},
	"lfo":        {"modulation source", "rhythm generator"},
	"vca":        {"amplitude controller", "modulation controller"},
	"reverb":     {"space processor", "ambience generator"},
	"delay":      {"time processor", "echo generator"},
	"sequencer":  {"pattern generator", "rhythm controller", "melody generator"},
	"clock":      {"timing source", "trigger generator"},
	"random":     {"chance generator", "unpredictability source"},
	"quantizer":  {"pitch controller", "scale enforcer"},
	"mixer":      {"signal combiner", "balance controller"},
	"function":   {"modulation source", "signal processor", "envelope generator"},
	"granular":   {"texture generator", "sound mangler"},
	"resonator":  {"tone generator", "harmonic enhancer"},
	"noise":      {"sound source", "percussion source"},
}

// specialRoles pins an (archetype, type keyword) combination to a fixed role
// with maximum importance, overriding the random candidate pick.
var specialRoles = map[Archetype]map[string]Role{
	Ambient: {
		"reverb":   {Role: "ambience generator", Importance: 5},
		"delay":    {Role: "ambience generator", Importance: 5},
		"granular": {Role: "ambience generator", Importance: 5},
	},
	Generative: {
		"random":    {Role: "pattern generator", Importance: 5},
		"sequencer": {Role: "pattern generator", Importance: 5},
		"clock":     {Role: "pattern generator", Importance: 5},
	},
	Percussion: {
		"envelope": {Role: "percussion generator", Importance: 5},
		"noise":    {Role: "percussion generator", Importance: 5},
		"filter":   {Role: "percussion generator", Importance: 5},
	},
	Bass: {
		"oscillator": {Role: "bass voice", Importance: 5},
		"filter":     {Role: "bass voice", Importance: 5},
	},
	Lead: {
		"oscillator": {Role: "lead voice", Importance: 5},
		"envelope":   {Role: "lead voice", Importance: 5},
	},
	Drone: {
		"oscillator": {Role: "drone generator", Importance: 5},
		"reverb":     {Role: "drone generator", Importance: 5},
	},
	Techno: {
		"sequencer": {Role: "rhythm generator", Importance: 5},
		"clock":     {Role: "rhythm generator", Importance: 5},
	},
}

// AssignRoles tags every module with a functional role and importance for
// this archetype. The mapping is keyed by module ID and rebuilt on every
// call; nothing is shared between generations.
func (g *Generator) AssignRoles(modules []catalog.Module, archetype Archetype) map[uint]Role {
	roles := make(map[uint]Role, len(modules))

	for _, m := range modules {
		matched := ""
		for _, kw := range roleKeywords {
			if typeMatchesToken(m.Type, kw) {
				matched = kw
				break
			}
		}

		if matched == "" {
			roles[m.ID] = Role{Role: "utility", Importance: 2}
			continue
		}

		if special, ok := specialRoles[archetype][matched]; ok {
			roles[m.ID] = special
			continue
		}

		candidates := roleCandidates[matched]
		roles[m.ID] = Role{
			Role:       candidates[g.rng.Intn(len(candidates))],
			Importance: 3,
		}
	}
	return roles
}
