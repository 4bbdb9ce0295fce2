package patch

// Idea is one complete patch recommendation: wiring, settings and the
// provenance that justifies them. Fields mirror the JSON shape served by the
// API and persisted by the storage layer.
type Idea struct {
	ID              uint             `json:"id,omitempty"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	PatchType       Archetype        `json:"patch_type"`
	Complexity      int              `json:"complexity"`
	Modules         []IdeaModule     `json:"modules"`
	Connections     []Connection     `json:"connections"`
	ControlSettings []ControlSetting `json:"control_settings"`
	Sources         []Source         `json:"sources"`
	RelevanceScore  float64          `json:"relevance_score"`
}

// IdeaModule records a module's part in the patch.
type IdeaModule struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Type         string `json:"type"`
	Role         string `json:"role"`
	Importance   int    `json:"importance"`
}

// Connection is one suggested cable between two specific jacks.
type Connection struct {
	SourceModuleID     uint   `json:"source_module_id"`
	SourceModule       string `json:"source_module"`
	SourceConnectionID uint   `json:"source_connection_id"`
	SourceConnection   string `json:"source_connection"`
	TargetModuleID     uint   `json:"target_module_id"`
	TargetModule       string `json:"target_module"`
	TargetConnectionID uint   `json:"target_connection_id"`
	TargetConnection   string `json:"target_connection"`
	Description        string `json:"description"`
	CableColor         string `json:"cable_color"`
	Importance         int    `json:"importance"`
}

// endpoints identifies a connection by its four-part tuple, used to skip
// duplicates in the fallback wiring pass.
func (c Connection) endpoints() [4]uint {
	return [4]uint{c.SourceModuleID, c.SourceConnectionID, c.TargetModuleID, c.TargetConnectionID}
}

// ControlSetting is one suggested knob/switch position. ValueNumeric is nil
// for categorical settings (waveform or scale names).
type ControlSetting struct {
	ModuleID     uint     `json:"module_id"`
	Module       string   `json:"module"`
	ControlID    uint     `json:"control_id"`
	Control      string   `json:"control"`
	ValueNumeric *float64 `json:"value_numeric"`
	ValueText    string   `json:"value_text"`
	Description  string   `json:"description"`
	Importance   int      `json:"importance"`
}

// Source is a provenance snippet attached to an idea.
type Source struct {
	Type           string  `json:"type"` // "archetype", "manual", "reddit", "modwiggler", "generated"
	Title          string  `json:"title"`
	URL            string  `json:"url,omitempty"`
	Snippet        string  `json:"snippet,omitempty"`
	RelevanceScore float64 `json:"relevance_score"`
}

// Role is the per-generation functional label for one module. Roles are
// recomputed from scratch on every call and never cached.
type Role struct {
	Role       string `json:"role"`
	Importance int    `json:"importance"`
}
