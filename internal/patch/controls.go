package patch

import (
	"fmt"
	"strings"

	"github.com/brownkp/europatch/internal/catalog"
)

// qualitativeFractions translates level words from the archetype control
// tables into a fraction of the control's range.
var qualitativeFractions = map[string]float64{
	"very low":  0.10,
	"low":       0.25,
	"medium":    0.50,
	"fast":      0.80,
	"high":      0.75,
	"very high": 0.90,
}

// SynthesizeControls produces archetype-consistent knob and switch settings.
// A module with no matching type entry in the archetype's control table is
// skipped whole; a control with no matching pattern is skipped alone.
func (g *Generator) SynthesizeControls(modules []catalog.Module, roles map[uint]Role, archetype Archetype) []ControlSetting {
	targets := profiles[archetype].controls

	var settings []ControlSetting
	for _, m := range modules {
		var patterns []controlPattern
		for _, t := range targets {
			if typeMatchesToken(m.Type, t.typeKey) {
				patterns = t.patterns
				break
			}
		}
		if patterns == nil {
			continue
		}

		importance := roles[m.ID].Importance
		if importance == 0 {
			importance = 3
		}

		for _, c := range m.Controls {
			name := strings.ToLower(c.Name)
			for _, p := range patterns {
				if !strings.Contains(name, p.control) {
					continue
				}
				s := ControlSetting{
					ModuleID:    m.ID,
					Module:      m.Name,
					ControlID:   c.ID,
					Control:     c.Name,
					Description: settingDescription(m.Name, c.Name, p, archetype),
					Importance:  importance,
				}
				if frac, ok := qualitativeFractions[p.value]; ok {
					v := clamp(c.MinValue+frac*(c.MaxValue-c.MinValue), c.MinValue, c.MaxValue)
					s.ValueNumeric = &v
					s.ValueText = capitalize(p.value)
				} else {
					s.ValueText = capitalize(p.value)
				}
				settings = append(settings, s)
				break
			}
		}
	}
	return settings
}

// settingDescription phrases why a control sits where it does. A handful of
// well-known parameters get bespoke wording; the rest share a generic line.
func settingDescription(moduleName, controlName string, p controlPattern, archetype Archetype) string {
	switch p.control {
	case "cutoff":
		return fmt.Sprintf("Set %s %s %s to shape the tone of the patch", moduleName, controlName, p.value)
	case "resonance":
		return fmt.Sprintf("Add %s resonance on %s for character", p.value, moduleName)
	case "decay", "release", "fall":
		return fmt.Sprintf("Keep %s %s %s so notes tail off naturally", moduleName, controlName, p.value)
	case "attack", "rise":
		return fmt.Sprintf("A %s %s on %s controls how notes begin", p.value, controlName, moduleName)
	case "rate", "bpm":
		return fmt.Sprintf("Run %s at a %s rate to pace the patch", moduleName, p.value)
	default:
		return fmt.Sprintf("Set %s to %s for an optimal %s sound", controlName, p.value, archetype)
	}
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
