package models

import (
	"time"

	"github.com/brownkp/europatch/internal/catalog"
)

// Module is one Eurorack hardware unit in the library. Connections and
// controls are owned children: they live and die with their module.
type Module struct {
	ID                uint       `gorm:"primarykey" json:"id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	Name              string     `gorm:"not null" json:"name"`
	Manufacturer      string     `gorm:"not null" json:"manufacturer"`
	HPWidth           int        `json:"hp_width"`
	ModuleType        string     `gorm:"index" json:"module_type"`
	Description       string     `gorm:"type:text" json:"description"`
	ManualURL         string     `json:"manual_url"`
	ManualContent     string     `gorm:"type:text" json:"-"`
	ManualLastUpdated *time.Time `json:"manual_last_updated,omitempty"`
	ImageURL          string     `json:"image_url"`
	ModularGridURL    string     `json:"modulargrid_url"`

	Connections []ModuleConnection `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"connections"`
	Controls    []ModuleControl    `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"controls"`
}

// ModuleConnection is a named input or output jack on a module.
type ModuleConnection struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	ModuleID    uint      `gorm:"not null;index" json:"module_id"`
	Name        string    `gorm:"not null" json:"name"`
	Type        string    `gorm:"column:connection_type;not null" json:"connection_type"` // "input", "output"
	Description string    `gorm:"type:text" json:"description"`
	IsCV        bool      `gorm:"default:false" json:"is_cv"`
	IsGate      bool      `gorm:"default:false" json:"is_gate"`
	IsAudio     bool      `gorm:"default:false" json:"is_audio"`
}

// ModuleControl is a named adjustable parameter on a module.
type ModuleControl struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	ModuleID       uint      `gorm:"not null;index" json:"module_id"`
	Type           string    `gorm:"column:control_type;not null" json:"control_type"` // "knob", "switch", "button", "slider"
	Name           string    `gorm:"column:control_name;not null" json:"control_name"`
	Description    string    `gorm:"type:text" json:"description"`
	MinValue       float64   `json:"min_value"`
	MaxValue       float64   `json:"max_value"`
	DefaultValue   float64   `json:"default_value"`
	IsAttenuator   bool      `gorm:"default:false" json:"is_attenuator"`
	IsAttenuverter bool      `gorm:"default:false" json:"is_attenuverter"`
}

// ToCatalog copies the module into the immutable snapshot shape consumed by
// the patch engine.
func (m Module) ToCatalog() catalog.Module {
	snapshot := catalog.Module{
		ID:           m.ID,
		Name:         m.Name,
		Manufacturer: m.Manufacturer,
		Type:         m.ModuleType,
		Description:  m.Description,
		HPWidth:      m.HPWidth,
		ManualURL:    m.ManualURL,
	}
	for _, c := range m.Connections {
		snapshot.Connections = append(snapshot.Connections, catalog.Connection{
			ID:          c.ID,
			Name:        c.Name,
			Direction:   catalog.Direction(c.Type),
			Description: c.Description,
		})
	}
	for _, c := range m.Controls {
		snapshot.Controls = append(snapshot.Controls, catalog.Control{
			ID:             c.ID,
			Name:           c.Name,
			Type:           c.Type,
			MinValue:       c.MinValue,
			MaxValue:       c.MaxValue,
			DefaultValue:   c.DefaultValue,
			IsAttenuator:   c.IsAttenuator,
			IsAttenuverter: c.IsAttenuverter,
		})
	}
	return snapshot
}
