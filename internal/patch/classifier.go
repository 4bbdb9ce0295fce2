package patch

import "strings"

// Classify maps a free-text prompt to an archetype.
//
// An archetype whose name appears verbatim in the prompt wins immediately,
// first in enumeration order. Otherwise each archetype scores one point per
// keyword present anywhere in the prompt (presence, not occurrence count);
// the highest score wins, with ties broken uniformly at random. A prompt
// matching nothing falls back to ambient.
func (g *Generator) Classify(prompt string) Archetype {
	p := strings.ToLower(prompt)

	for _, a := range Archetypes {
		if strings.Contains(p, string(a)) {
			return a
		}
	}

	maxScore := 0
	scores := make(map[Archetype]int, len(Archetypes))
	for _, a := range Archetypes {
		for _, kw := range profiles[a].keywords {
			if strings.Contains(p, kw) {
				scores[a]++
			}
		}
		if scores[a] > maxScore {
			maxScore = scores[a]
		}
	}

	if maxScore == 0 {
		return Ambient
	}

	var tied []Archetype
	for _, a := range Archetypes {
		if scores[a] == maxScore {
			tied = append(tied, a)
		}
	}
	return tied[g.rng.Intn(len(tied))]
}
