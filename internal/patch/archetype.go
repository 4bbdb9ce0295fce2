package patch

// Archetype is a fixed sonic-style category driving every generation
// heuristic: keyword classification, module ranking, role assignment,
// wiring templates and control targets.
type Archetype string

const (
	Ambient    Archetype = "ambient"
	Generative Archetype = "generative"
	Percussion Archetype = "percussion"
	Bass       Archetype = "bass"
	Lead       Archetype = "lead"
	Drone      Archetype = "drone"
	Techno     Archetype = "techno"
)

// Archetypes lists every archetype in enumeration order. The classifier's
// exact-name short-circuit walks this slice, so the order is part of the
// observable behavior.
var Archetypes = []Archetype{Ambient, Generative, Percussion, Bass, Lead, Drone, Techno}

// controlPattern maps a control-name fragment to a qualitative target.
// Values are either qualitative levels ("low", "very high", ...) translated
// to a fraction of the control's range, or categorical settings (waveform,
// scale names) passed through as text.
type controlPattern struct {
	control string
	value   string
}

// controlTargets binds a module-type fragment to the control patterns
// applied to modules of that type.
type controlTargets struct {
	typeKey  string
	patterns []controlPattern
}

// profile holds everything the engine knows about one archetype.
type profile struct {
	description string
	keywords    []string
	// priorityTypes orders module-type fragments from most to least
	// relevant; the ranker appends matching modules tier by tier.
	priorityTypes []string
	// templates are wiring chains of module-type phrases. Stages with no
	// matching module are collapsed so the remaining stages still wire up.
	templates []string
	controls  []controlTargets
}

var profiles = map[Archetype]profile{
	Ambient: {
		description: "Evolving, atmospheric sounds with slow modulation",
		keywords:    []string{"ambient", "atmospheric", "pad", "texture", "drone", "evolving", "spacey", "ethereal"},
		priorityTypes: []string{"oscillator", "effect", "lfo", "vca", "filter"},
		templates: []string{
			"oscillator -> filter -> reverb",
			"lfo -> oscillator parameters",
			"noise -> reverb",
		},
		controls: []controlTargets{
			{"oscillator", []controlPattern{
				{"freq", "low"}, {"harmonics", "medium"}, {"timbre", "medium"}, {"morph", "medium"},
			}},
			{"granular", []controlPattern{
				{"size", "high"}, {"density", "low"}, {"texture", "high"}, {"blend", "high"},
				{"feedback", "low"}, {"reverb", "high"}, {"position", "medium"},
			}},
			{"filter", []controlPattern{
				{"cutoff", "low"}, {"resonance", "medium"},
			}},
			{"reverb", []controlPattern{
				{"decay", "very high"}, {"mix", "high"}, {"blend", "high"},
				{"reverb", "high"}, {"size", "high"},
			}},
			{"delay", []controlPattern{
				{"time", "high"}, {"feedback", "medium"}, {"mix", "medium"},
			}},
			{"function", []controlPattern{
				{"rise", "high"}, {"fall", "high"}, {"rate", "very low"},
			}},
			{"lfo", []controlPattern{
				{"rate", "very low"}, {"depth", "medium"},
			}},
			{"resonator", []controlPattern{
				{"structure", "medium"}, {"brightness", "low"}, {"position", "medium"},
			}},
			{"clock", []controlPattern{
				{"bpm", "very low"},
			}},
		},
	},
	Generative: {
		description: "Self-evolving patches with random elements",
		keywords:    []string{"generative", "random", "evolving", "self-playing", "algorithmic", "chance", "probability"},
		priorityTypes: []string{"sequencer", "lfo", "oscillator", "effect", "filter"},
		templates: []string{
			"random -> quantizer -> oscillator pitch",
			"clock -> sequencer -> trigger inputs",
			"sequencer -> filter cutoff",
		},
		controls: []controlTargets{
			{"quantizer", []controlPattern{
				{"scale", "minor pentatonic"},
			}},
			{"clock", []controlPattern{
				{"bpm", "medium"}, {"division", "medium"},
			}},
			{"sequencer", []controlPattern{
				{"rate", "medium"}, {"length", "high"},
			}},
			{"oscillator", []controlPattern{
				{"freq", "medium"}, {"timbre", "medium"}, {"morph", "low"},
			}},
			{"function", []controlPattern{
				{"rise", "fast"}, {"fall", "medium"}, {"cycle", "high"},
			}},
			{"granular", []controlPattern{
				{"density", "medium"}, {"texture", "medium"}, {"blend", "medium"},
			}},
		},
	},
	Percussion: {
		description: "Rhythmic sounds and drum-like patches",
		keywords:    []string{"percussion", "drum", "kick", "snare", "hat", "rhythmic", "beat"},
		priorityTypes: []string{"oscillator", "envelope", "vca", "effect"},
		templates: []string{
			"noise -> filter -> vca",
			"envelope -> vca",
			"clock -> envelope trigger",
		},
		controls: []controlTargets{
			{"envelope", []controlPattern{
				{"attack", "very low"}, {"decay", "low"}, {"release", "low"},
			}},
			{"function", []controlPattern{
				{"rise", "very low"}, {"fall", "low"},
			}},
			{"filter", []controlPattern{
				{"cutoff", "high"}, {"resonance", "high"},
			}},
			{"noise", []controlPattern{
				{"color", "white"},
			}},
			{"oscillator", []controlPattern{
				{"freq", "low"}, {"timbre", "low"},
			}},
			{"clock", []controlPattern{
				{"bpm", "medium"},
			}},
		},
	},
	Bass: {
		description: "Low frequency sounds with punch and presence",
		keywords:    []string{"bass", "low", "sub", "808", "acid", "deep"},
		priorityTypes: []string{"oscillator", "filter", "vca", "envelope"},
		templates: []string{
			"oscillator -> filter -> vca",
			"envelope -> filter cutoff",
			"envelope -> vca",
		},
		controls: []controlTargets{
			{"oscillator", []controlPattern{
				{"freq", "very low"}, {"wave", "square"}, {"timbre", "low"},
			}},
			{"filter", []controlPattern{
				{"cutoff", "low"}, {"resonance", "medium"},
			}},
			{"envelope", []controlPattern{
				{"attack", "very low"}, {"decay", "medium"}, {"sustain", "medium"},
			}},
			{"function", []controlPattern{
				{"rise", "very low"}, {"fall", "medium"},
			}},
			{"distortion", []controlPattern{
				{"drive", "medium"},
			}},
		},
	},
	Lead: {
		description: "Expressive melodic sounds",
		keywords:    []string{"lead", "melody", "solo", "arpeggio", "sequence", "pluck"},
		priorityTypes: []string{"oscillator", "filter", "envelope", "effect"},
		templates: []string{
			"oscillator -> filter -> vca -> delay",
			"envelope -> filter cutoff",
			"lfo -> oscillator pitch",
		},
		controls: []controlTargets{
			{"oscillator", []controlPattern{
				{"freq", "medium"}, {"wave", "saw"}, {"timbre", "high"},
			}},
			{"filter", []controlPattern{
				{"cutoff", "high"}, {"resonance", "low"},
			}},
			{"envelope", []controlPattern{
				{"attack", "very low"}, {"release", "medium"},
			}},
			{"delay", []controlPattern{
				{"time", "fast"}, {"feedback", "medium"}, {"mix", "medium"},
			}},
			{"lfo", []controlPattern{
				{"rate", "fast"}, {"depth", "low"},
			}},
		},
	},
	Drone: {
		description: "Sustained, evolving textures",
		keywords:    []string{"drone", "sustained", "continuous", "dark", "rumble", "noise"},
		priorityTypes: []string{"oscillator", "effect", "filter", "lfo"},
		templates: []string{
			"oscillator -> filter -> reverb -> delay",
			"lfo -> filter cutoff",
			"lfo -> oscillator parameters",
		},
		controls: []controlTargets{
			{"oscillator", []controlPattern{
				{"freq", "very low"}, {"harmonics", "high"}, {"timbre", "high"},
			}},
			{"filter", []controlPattern{
				{"cutoff", "low"}, {"resonance", "high"},
			}},
			{"granular", []controlPattern{
				{"size", "very high"}, {"density", "low"}, {"blend", "very high"}, {"feedback", "medium"},
			}},
			{"reverb", []controlPattern{
				{"decay", "very high"}, {"mix", "very high"}, {"blend", "very high"},
			}},
			{"function", []controlPattern{
				{"rise", "very high"}, {"fall", "very high"},
			}},
			{"lfo", []controlPattern{
				{"rate", "very low"},
			}},
		},
	},
	Techno: {
		description: "Driving, hypnotic rhythms for the dance floor",
		keywords:    []string{"techno", "dance", "club", "driving", "four-on-the-floor", "hypnotic"},
		priorityTypes: []string{"sequencer", "oscillator", "filter", "envelope", "effect"},
		templates: []string{
			"sequencer -> oscillator pitch",
			"clock -> sequencer -> trigger inputs",
			"oscillator -> filter -> vca",
		},
		controls: []controlTargets{
			{"clock", []controlPattern{
				{"bpm", "fast"}, {"division", "medium"},
			}},
			{"sequencer", []controlPattern{
				{"rate", "fast"}, {"length", "medium"},
			}},
			{"oscillator", []controlPattern{
				{"freq", "low"}, {"wave", "saw"},
			}},
			{"filter", []controlPattern{
				{"cutoff", "medium"}, {"resonance", "high"},
			}},
			{"envelope", []controlPattern{
				{"attack", "very low"}, {"decay", "low"},
			}},
		},
	},
}

// Description returns the human-readable summary for the archetype.
func (a Archetype) Description() string {
	return profiles[a].description
}

// Valid reports whether a is one of the known archetypes.
func (a Archetype) Valid() bool {
	_, ok := profiles[a]
	return ok
}
