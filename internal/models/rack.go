package models

import "time"

// UserRack is a rack imported from a ModularGrid URL. Rack entries are owned
// children; the referenced modules belong to the shared library.
type UserRack struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessed   time.Time `json:"last_accessed"`
	ModularGridURL string    `gorm:"not null" json:"modulargrid_url"`
	ModularGridID  string    `gorm:"uniqueIndex" json:"modulargrid_id"`
	RackName       string    `json:"rack_name"`

	Modules []RackModule `gorm:"foreignKey:RackID;constraint:OnDelete:CASCADE" json:"modules"`
}

// RackModule places one library module at a position in a rack.
type RackModule struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RackID    uint      `gorm:"not null;index;uniqueIndex:idx_rack_slot" json:"rack_id"`
	ModuleID  uint      `gorm:"not null;index;uniqueIndex:idx_rack_slot" json:"module_id"`
	PositionX int       `gorm:"uniqueIndex:idx_rack_slot" json:"position_x"`
	PositionY int       `gorm:"uniqueIndex:idx_rack_slot" json:"position_y"`

	Module *Module `gorm:"foreignKey:ModuleID" json:"module,omitempty"`
}
