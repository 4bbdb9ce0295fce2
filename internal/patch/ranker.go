package patch

import "github.com/brownkp/europatch/internal/catalog"

// Rank reorders modules by relevance to the archetype. Modules matching the
// archetype's priority tiers come first, tier by tier, keeping their original
// relative order inside a tier; everything else follows in original order.
// The result is always a permutation of the input.
func Rank(modules []catalog.Module, archetype Archetype) []catalog.Module {
	tiers := profiles[archetype].priorityTypes

	ranked := make([]catalog.Module, 0, len(modules))
	placed := make(map[int]bool, len(modules))

	for _, tier := range tiers {
		for i, m := range modules {
			if placed[i] {
				continue
			}
			if typeMatchesToken(m.Type, tier) {
				ranked = append(ranked, m)
				placed[i] = true
			}
		}
	}

	for i, m := range modules {
		if !placed[i] {
			ranked = append(ranked, m)
		}
	}
	return ranked
}
