package models

import (
	"fmt"

	"github.com/brownkp/europatch/internal/catalog"
	"gorm.io/gorm"
)

// CatalogResolver turns module references into catalog snapshots, loading
// stored modules by ID and passing inline definitions through. This is the
// single boundary where the two request shapes meet the database.
type CatalogResolver struct {
	db *gorm.DB
}

func NewCatalogResolver(db *gorm.DB) *CatalogResolver {
	return &CatalogResolver{db: db}
}

// Resolve loads every referenced module. Unknown IDs are skipped rather than
// failing the whole request; the engine reports ErrNoModules if nothing
// remains. Inline modules without an ID get a synthetic one so role maps and
// connection tuples stay unambiguous.
func (r *CatalogResolver) Resolve(refs []catalog.ModuleRef) ([]catalog.Module, error) {
	var resolved []catalog.Module
	maxID := uint(0)

	var ids []uint
	for _, ref := range refs {
		if !ref.IsInline() {
			ids = append(ids, ref.ID)
		}
	}

	byID := make(map[uint]catalog.Module, len(ids))
	if len(ids) > 0 {
		var stored []Module
		if err := r.db.Preload("Connections").Preload("Controls").
			Where("id IN ?", ids).Find(&stored).Error; err != nil {
			return nil, fmt.Errorf("resolving modules: %w", err)
		}
		for _, m := range stored {
			byID[m.ID] = m.ToCatalog()
		}
	}

	for _, ref := range refs {
		var m catalog.Module
		if ref.IsInline() {
			m = *ref.Inline
		} else {
			var ok bool
			if m, ok = byID[ref.ID]; !ok {
				continue
			}
		}
		if m.ID > maxID {
			maxID = m.ID
		}
		resolved = append(resolved, m)
	}

	// Assign synthetic IDs after the fact so they never collide with a
	// stored module's ID.
	for i := range resolved {
		if resolved[i].ID == 0 {
			maxID++
			resolved[i].ID = maxID
			for j := range resolved[i].Connections {
				if resolved[i].Connections[j].ID == 0 {
					resolved[i].Connections[j].ID = uint(1000*int(resolved[i].ID) + j + 1)
				}
			}
			for j := range resolved[i].Controls {
				if resolved[i].Controls[j].ID == 0 {
					resolved[i].Controls[j].ID = uint(1000*int(resolved[i].ID) + j + 1)
				}
			}
		}
	}
	return resolved, nil
}
