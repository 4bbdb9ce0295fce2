package patch

import "strings"

// typeAliases maps template/rule tokens to the declared-type spellings seen
// in the wild. ModularGrid data says "VCO" where the wiring templates say
// "oscillator"; without this table the two vocabularies never meet.
var typeAliases = map[string][]string{
	"oscillator": {"oscillator", "vco", "osc"},
	"filter":     {"filter", "vcf"},
	"reverb":     {"reverb", "effect"},
	"delay":      {"delay", "echo", "effect"},
	"vca":        {"vca", "amplifier"},
	"envelope":   {"envelope", "adsr", "eg", "function"},
	"lfo":        {"lfo", "function", "modulator"},
	"sequencer":  {"sequencer", "seq"},
	"clock":      {"clock"},
	"noise":      {"noise"},
	"random":     {"random", "chance"},
	"quantizer":  {"quantizer", "quantize"},
	"mixer":      {"mixer"},
	"granular":   {"granular", "texture"},
	"resonator":  {"resonator"},
	"distortion": {"distortion", "drive", "waveshaper"},
	"effect":     {"effect", "fx"},
}

// typeMatchesToken reports whether a declared module type matches one
// template token, going through the alias table.
func typeMatchesToken(moduleType, token string) bool {
	t := strings.ToLower(moduleType)
	aliases, ok := typeAliases[token]
	if !ok {
		aliases = []string{token}
	}
	for _, alias := range aliases {
		if strings.Contains(t, alias) {
			return true
		}
	}
	return false
}

// typeMatchesPhrase reports whether a declared module type matches any
// whitespace-delimited token of a template phrase.
func typeMatchesPhrase(moduleType, phrase string) bool {
	for _, token := range strings.Fields(strings.ToLower(phrase)) {
		if typeMatchesToken(moduleType, token) {
			return true
		}
	}
	return false
}
