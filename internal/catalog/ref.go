package catalog

import "encoding/json"

// ModuleRef identifies a module for a generation request. Callers may send
// either a bare numeric ID (resolved against the module library) or a fully
// inline module definition. Exactly one of the two is set.
type ModuleRef struct {
	ID     uint
	Inline *Module
}

// RefID builds a reference to a stored module.
func RefID(id uint) ModuleRef {
	return ModuleRef{ID: id}
}

// RefInline builds a reference carrying its own module data.
func RefInline(m Module) ModuleRef {
	return ModuleRef{Inline: &m}
}

// IsInline reports whether the reference carries inline module data.
func (r ModuleRef) IsInline() bool {
	return r.Inline != nil
}

// UnmarshalJSON accepts either a JSON number (module ID) or a JSON object
// (inline module). This is the only place the two request shapes are told
// apart; everything downstream works with resolved Module values.
func (r *ModuleRef) UnmarshalJSON(data []byte) error {
	var id uint
	if err := json.Unmarshal(data, &id); err == nil {
		*r = ModuleRef{ID: id}
		return nil
	}

	var m Module
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*r = ModuleRef{Inline: &m}
	return nil
}

// Resolver turns module references into catalog snapshots.
type Resolver interface {
	Resolve(refs []ModuleRef) ([]Module, error)
}
