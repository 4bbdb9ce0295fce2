// Package patch implements the rule-based patch idea engine: it classifies a
// free-text prompt into a sonic archetype, ranks the user's modules, assigns
// them roles, synthesizes a wiring graph and control settings, and assembles
// everything into scored patch ideas.
package patch

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/brownkp/europatch/internal/catalog"
)

// ErrNoModules is returned when a generation request resolves to an empty
// module set. It is the only engine error that reaches callers; every other
// degenerate input degrades into a smaller idea.
var ErrNoModules = errors.New("no modules available for patch generation")

const (
	defaultComplexity = 3
	defaultMaxResults = 3

	// generatedRelevance is the neutral score fresh ideas carry when
	// merged against stored ideas that bring their own scores.
	generatedRelevance = 0.5

	// maxForumSources bounds provenance snippets per idea.
	maxForumSources = 3
	// maxSnippetLen truncates forum snippets for provenance display.
	maxSnippetLen = 200
)

// Generator produces patch ideas. One Generator is safe to reuse across
// requests but not across goroutines: all randomness flows through a single
// rand.Rand so tests can seed it.
type Generator struct {
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand replaces the random source, making generation reproducible.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// NewGenerator builds a Generator with an unseeded (time-seeded) random
// source unless WithRand overrides it.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Request carries one generation call. Modules is the resolved immutable
// snapshot; PriorIdeas and ForumSources are optional context retrieved by
// the caller (stored ideas, forum snippets).
type Request struct {
	Modules      []catalog.Module
	Prompt       string
	Archetype    Archetype // optional: skip classification when already known
	Complexity   int
	MaxResults   int
	PriorIdeas   []Idea
	ForumSources []Source
}

// Generate runs the full pipeline and returns ideas sorted by descending
// relevance score, truncated to MaxResults.
func (g *Generator) Generate(req Request) ([]Idea, error) {
	if len(req.Modules) == 0 {
		return nil, ErrNoModules
	}

	complexity := req.Complexity
	if complexity < 1 || complexity > 5 {
		complexity = defaultComplexity
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	// Callers that already classified the prompt (to prefetch context for
	// the same archetype) pass the result along; classifying again here
	// could break a keyword tie differently.
	archetype := req.Archetype
	if !archetype.Valid() {
		archetype = g.Classify(req.Prompt)
	}
	ranked := Rank(req.Modules, archetype)
	roles := g.AssignRoles(ranked, archetype)

	idea := Idea{
		PatchType:       archetype,
		Complexity:      complexity,
		Connections:     g.SynthesizeConnections(ranked, roles, archetype),
		ControlSettings: g.SynthesizeControls(ranked, roles, archetype),
		RelevanceScore:  generatedRelevance,
	}
	idea.Title, idea.Description = g.titleAndDescription(ranked, archetype, req.Prompt)

	for _, m := range ranked {
		role := roles[m.ID]
		idea.Modules = append(idea.Modules, IdeaModule{
			ID:           m.ID,
			Name:         m.Name,
			Manufacturer: m.Manufacturer,
			Type:         m.Type,
			Role:         role.Role,
			Importance:   role.Importance,
		})
	}

	idea.Sources = g.assembleSources(ranked, archetype, req.ForumSources)

	all := append([]Idea{idea}, req.PriorIdeas...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].RelevanceScore > all[j].RelevanceScore
	})
	if len(all) > maxResults {
		all = all[:maxResults]
	}
	return all, nil
}

// titleAndDescription builds the idea's display text from randomized
// templates around the archetype name and a featured module.
func (g *Generator) titleAndDescription(modules []catalog.Module, archetype Archetype, prompt string) (string, string) {
	names := make([]string, 0, len(modules))
	for _, m := range modules {
		names = append(names, m.Name)
	}
	featured := names[g.rng.Intn(len(names))]
	titled := capitalize(string(archetype))

	var title string
	switch g.rng.Intn(4) {
	case 0:
		title = fmt.Sprintf("%s %s with %s", titled, g.choice("Adventure", "Journey", "Exploration"), featured)
	case 1:
		title = fmt.Sprintf("%s %s %s", featured, titled, g.choice("Textures", "Soundscape", "Experience"))
	case 2:
		title = fmt.Sprintf("%s %s using %s", titled, g.choice("Patch", "System", "Network"), featured)
	default:
		title = fmt.Sprintf("%s %s with %s", g.choice("Evolving", "Dynamic", "Expressive"), titled, featured)
	}

	core := names
	if len(core) > 3 {
		core = core[:3]
	}

	var description string
	switch g.rng.Intn(3) {
	case 0:
		description = fmt.Sprintf("A %s patch that utilizes %s to create %s sounds. %s.",
			archetype, strings.Join(core, ", "), g.choice("evolving", "dynamic", "expressive"), archetype.Description())
	case 1:
		description = fmt.Sprintf("This %s patch focuses on %s using %s as the core modules. %s",
			archetype, g.choice("texture", "rhythm", "melody", "timbre"), strings.Join(core, ", "), prompt)
	default:
		description = fmt.Sprintf("An exploration of %s sounds using %s, designed to create %s %s textures.",
			archetype, strings.Join(core, ", "), g.choice("evolving", "dynamic", "expressive"), archetype)
	}
	return title, description
}

// assembleSources attaches provenance: the archetype description, each
// contributing module's manual, and the best forum snippets.
func (g *Generator) assembleSources(modules []catalog.Module, archetype Archetype, forum []Source) []Source {
	sources := []Source{{
		Type:           "generated",
		Title:          fmt.Sprintf("%s archetype: %s", capitalize(string(archetype)), archetype.Description()),
		RelevanceScore: 1.0,
	}}

	for _, m := range modules {
		if m.ManualURL == "" {
			continue
		}
		sources = append(sources, Source{
			Type:           "manual",
			Title:          fmt.Sprintf("%s manual", m.Name),
			URL:            m.ManualURL,
			RelevanceScore: 0.8,
		})
	}

	sorted := make([]Source, len(forum))
	copy(sorted, forum)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RelevanceScore > sorted[j].RelevanceScore
	})
	if len(sorted) > maxForumSources {
		sorted = sorted[:maxForumSources]
	}
	for _, s := range sorted {
		if len(s.Snippet) > maxSnippetLen {
			s.Snippet = s.Snippet[:maxSnippetLen]
		}
		sources = append(sources, s)
	}
	return sources
}

func (g *Generator) choice(options ...string) string {
	return options[g.rng.Intn(len(options))]
}
