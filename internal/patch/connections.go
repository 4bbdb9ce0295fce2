package patch

import (
	"fmt"
	"strings"

	"github.com/brownkp/europatch/internal/catalog"
)

// cableColors is the palette used when no wiring convention applies.
var cableColors = []string{"red", "blue", "yellow", "green", "purple", "orange", "white", "black"}

const (
	// minTemplateConnections is the threshold below which the generic
	// fallback wiring pass kicks in.
	minTemplateConnections = 3
	// maxFallbackConnections bounds how many extra cables the fallback
	// pass may add.
	maxFallbackConnections = 5
	// maxStageCandidates caps the modules considered per template stage
	// to bound fan-out.
	maxStageCandidates = 2
)

// SynthesizeConnections builds the signal-flow graph for the archetype.
// Wiring templates are tried first; if they under-produce, a generic
// output-to-input pairing pass fills in. A module set with no viable pair
// yields an empty list, never an error.
func (g *Generator) SynthesizeConnections(modules []catalog.Module, roles map[uint]Role, archetype Archetype) []Connection {
	var conns []Connection
	seen := make(map[[4]uint]bool)

	for _, template := range profiles[archetype].templates {
		for _, c := range g.applyTemplate(template, modules, roles) {
			conns = append(conns, c)
			seen[c.endpoints()] = true
		}
	}

	if len(conns) < minTemplateConnections {
		conns = append(conns, g.fallbackConnections(modules, seen)...)
	}
	return conns
}

// stage is one segment of a wiring template with its candidate modules.
type stage struct {
	phrase     string
	candidates []catalog.Module
}

// applyTemplate wires one template chain like "oscillator -> filter -> reverb".
// Stages with no matching module are dropped so the surviving stages still
// connect (a rack with no filter still sends its oscillator to the reverb).
func (g *Generator) applyTemplate(template string, modules []catalog.Module, roles map[uint]Role) []Connection {
	var stages []stage
	for _, phrase := range strings.Split(template, "->") {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		s := stage{phrase: phrase}
		for _, m := range modules {
			if typeMatchesPhrase(m.Type, phrase) {
				s.candidates = append(s.candidates, m)
				if len(s.candidates) == maxStageCandidates {
					break
				}
			}
		}
		if len(s.candidates) > 0 {
			stages = append(stages, s)
		}
	}

	var conns []Connection
	for i := 0; i+1 < len(stages); i++ {
		src, tgt := stages[i], stages[i+1]
		for _, srcMod := range src.candidates {
			for _, tgtMod := range tgt.candidates {
				if srcMod.ID == tgtMod.ID {
					continue
				}
				out, ok := g.pickOutput(srcMod)
				if !ok {
					continue
				}
				in, ok := g.pickInput(tgtMod, tgt.phrase)
				if !ok {
					continue
				}
				conns = append(conns, Connection{
					SourceModuleID:     srcMod.ID,
					SourceModule:       srcMod.Name,
					SourceConnectionID: out.ID,
					SourceConnection:   out.Name,
					TargetModuleID:     tgtMod.ID,
					TargetModule:       tgtMod.Name,
					TargetConnectionID: in.ID,
					TargetConnection:   in.Name,
					Description:        connectionDescription(srcMod.Name, tgtMod.Name, tgt.phrase),
					CableColor:         g.cableColor(src.phrase, tgt.phrase, out),
					Importance:         maxImportance(roles, srcMod.ID, tgtMod.ID),
				})
			}
		}
	}
	return conns
}

// fallbackConnections pairs any module with an output jack to any other
// module with an input jack, skipping tuples already wired, until five new
// cables exist or every pair has been tried.
func (g *Generator) fallbackConnections(modules []catalog.Module, seen map[[4]uint]bool) []Connection {
	var conns []Connection
	for _, srcMod := range modules {
		outs := srcMod.Outputs()
		if len(outs) == 0 {
			continue
		}
		for _, tgtMod := range modules {
			if len(conns) >= maxFallbackConnections {
				return conns
			}
			if tgtMod.ID == srcMod.ID {
				continue
			}
			ins := tgtMod.Inputs()
			if len(ins) == 0 {
				continue
			}
			out := outs[g.rng.Intn(len(outs))]
			in := ins[g.rng.Intn(len(ins))]
			c := Connection{
				SourceModuleID:     srcMod.ID,
				SourceModule:       srcMod.Name,
				SourceConnectionID: out.ID,
				SourceConnection:   out.Name,
				TargetModuleID:     tgtMod.ID,
				TargetModule:       tgtMod.Name,
				TargetConnectionID: in.ID,
				TargetConnection:   in.Name,
				Description:        fmt.Sprintf("Connect %s to %s to expand the patch", srcMod.Name, tgtMod.Name),
				CableColor:         cableColors[g.rng.Intn(len(cableColors))],
				Importance:         3,
			}
			if seen[c.endpoints()] {
				continue
			}
			seen[c.endpoints()] = true
			conns = append(conns, c)
		}
	}
	return conns
}

// pickOutput chooses a source jack, preferring names that look like a main
// output, falling back to a random output.
func (g *Generator) pickOutput(m catalog.Module) (catalog.Connection, bool) {
	outs := m.Outputs()
	if len(outs) == 0 {
		return catalog.Connection{}, false
	}
	for _, c := range outs {
		if strings.Contains(strings.ToLower(c.Name), "out") {
			return c, true
		}
	}
	return outs[g.rng.Intn(len(outs))], true
}

// pickInput chooses a target jack, preferring one that matches the template
// phrase (a "pitch" stage lands on a PITCH or V/OCT jack), then a generic
// input name, then a random input.
func (g *Generator) pickInput(m catalog.Module, phrase string) (catalog.Connection, bool) {
	ins := m.Inputs()
	if len(ins) == 0 {
		return catalog.Connection{}, false
	}
	lowered := strings.ToLower(phrase)
	for _, c := range ins {
		name := strings.ToLower(c.Name)
		for _, token := range strings.Fields(lowered) {
			if strings.Contains(name, token) {
				return c, true
			}
		}
		if strings.Contains(lowered, "pitch") && strings.Contains(name, "oct") {
			return c, true
		}
	}
	for _, c := range ins {
		if strings.Contains(strings.ToLower(c.Name), "in") {
			return c, true
		}
	}
	return ins[g.rng.Intn(len(ins))], true
}

// cableColor applies the wiring color convention. The precedence order is a
// fixed convention: pitch targets are blue, gate/trigger targets orange,
// clock sources purple, audio outputs black, anything else gets a random
// palette color.
func (g *Generator) cableColor(srcPhrase, tgtPhrase string, out catalog.Connection) string {
	tgt := strings.ToLower(tgtPhrase)
	src := strings.ToLower(srcPhrase)
	name := strings.ToLower(out.Name)

	switch {
	case strings.Contains(tgt, "pitch"):
		return "blue"
	case strings.Contains(tgt, "gate") || strings.Contains(tgt, "trigger"):
		return "orange"
	case strings.Contains(src, "clock"):
		return "purple"
	case strings.Contains(name, "audio") || strings.Contains(name, "out"):
		return "black"
	default:
		return cableColors[g.rng.Intn(len(cableColors))]
	}
}

// connectionDescription phrases what the cable is for, keyed off the target
// stage of the template.
func connectionDescription(srcName, tgtName, tgtPhrase string) string {
	tgt := strings.ToLower(tgtPhrase)
	switch {
	case strings.Contains(tgt, "pitch"):
		return fmt.Sprintf("Send pitch information from %s to %s", srcName, tgtName)
	case strings.Contains(tgt, "trigger") || strings.Contains(tgt, "gate"):
		return fmt.Sprintf("Trigger %s from %s", tgtName, srcName)
	case strings.Contains(tgt, "filter"):
		return fmt.Sprintf("Process %s through %s for tonal shaping", srcName, tgtName)
	case strings.Contains(tgt, "reverb") || strings.Contains(tgt, "delay"):
		return fmt.Sprintf("Add space and depth by sending %s into %s", srcName, tgtName)
	case strings.Contains(tgt, "vca"):
		return fmt.Sprintf("Control the level of %s with %s", srcName, tgtName)
	default:
		return fmt.Sprintf("Route %s to %s", srcName, tgtName)
	}
}

func maxImportance(roles map[uint]Role, a, b uint) int {
	imp := roles[a].Importance
	if roles[b].Importance > imp {
		imp = roles[b].Importance
	}
	if imp == 0 {
		imp = 3
	}
	return imp
}
