package models

import "time"

// PatchIdea is one stored patch recommendation. Its modules, connections and
// control settings are owned children removed together with the idea.
type PatchIdea struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	PatchType      string    `gorm:"index" json:"patch_type"` // "ambient", "generative", ...
	Complexity     int       `json:"complexity"`              // 1-5 scale
	SourceType     string    `json:"source_type"`             // "manual", "reddit", "modwiggler", "generated"
	SourceURL      string    `json:"source_url"`
	SourceText     string    `gorm:"type:text" json:"source_text"`
	RelevanceScore float64   `gorm:"default:0.5" json:"relevance_score"`

	Modules         []PatchModule         `gorm:"foreignKey:PatchID;constraint:OnDelete:CASCADE" json:"modules"`
	Connections     []PatchConnection     `gorm:"foreignKey:PatchID;constraint:OnDelete:CASCADE" json:"connections"`
	ControlSettings []PatchControlSetting `gorm:"foreignKey:PatchID;constraint:OnDelete:CASCADE" json:"control_settings"`
}

// PatchModule records that a module takes part in a patch, and how central
// it is.
type PatchModule struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	PatchID    uint      `gorm:"not null;index" json:"patch_id"`
	ModuleID   uint      `gorm:"not null;index" json:"module_id"`
	Role       string    `json:"role"`
	Importance int       `json:"importance"` // 1-5 scale

	Module *Module `gorm:"foreignKey:ModuleID" json:"module,omitempty"`
}

// PatchConnection is one suggested cable between two module jacks.
type PatchConnection struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	PatchID            uint      `gorm:"not null;index" json:"patch_id"`
	SourceModuleID     uint      `gorm:"not null" json:"source_module_id"`
	SourceConnectionID uint      `gorm:"not null" json:"source_connection_id"`
	TargetModuleID     uint      `gorm:"not null" json:"target_module_id"`
	TargetConnectionID uint      `gorm:"not null" json:"target_connection_id"`
	Description        string    `gorm:"type:text" json:"description"`
	CableColor         string    `json:"cable_color"` // for visualization
	Importance         int       `json:"importance"`  // 1-5 scale

	SourceModule     *Module           `gorm:"foreignKey:SourceModuleID" json:"-"`
	SourceConnection *ModuleConnection `gorm:"foreignKey:SourceConnectionID" json:"-"`
	TargetModule     *Module           `gorm:"foreignKey:TargetModuleID" json:"-"`
	TargetConnection *ModuleConnection `gorm:"foreignKey:TargetConnectionID" json:"-"`
}

// PatchControlSetting is one suggested knob or switch position.
type PatchControlSetting struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	PatchID      uint      `gorm:"not null;index" json:"patch_id"`
	ModuleID     uint      `gorm:"not null" json:"module_id"`
	ControlID    uint      `gorm:"not null" json:"control_id"`
	ValueNumeric *float64  `json:"value_numeric"`
	ValueText    string    `json:"value_text"` // e.g. "Low", "3 o'clock"
	Description  string    `gorm:"type:text" json:"description"`
	Importance   int       `json:"importance"` // 1-5 scale

	Module  *Module        `gorm:"foreignKey:ModuleID" json:"-"`
	Control *ModuleControl `gorm:"foreignKey:ControlID" json:"-"`
}
