package models

import "time"

// ForumSource is a cached forum or manual snippet about a module, used only
// to enrich the provenance of generated patch ideas.
type ForumSource struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	ScrapedAt      time.Time `json:"scraped_at"`
	SourceType     string    `gorm:"not null;uniqueIndex:idx_source_url" json:"source_type"` // "reddit", "modwiggler", ...
	URL            string    `gorm:"not null;uniqueIndex:idx_source_url" json:"url"`
	Title          string    `json:"title"`
	Content        string    `gorm:"type:text" json:"content"`
	ModuleID       uint      `gorm:"index" json:"module_id"`
	RelevanceScore float64   `json:"relevance_score"` // 0-1 scale

	Module *Module `gorm:"foreignKey:ModuleID" json:"-"`
}
