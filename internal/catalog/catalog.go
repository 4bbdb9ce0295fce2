// Package catalog defines the read-only module snapshot consumed by the
// patch generation engine. Values are plain structs copied out of storage;
// the engine never mutates them and never reaches back into the database.
package catalog

// Direction of a jack on a module panel.
type Direction string

const (
	Input  Direction = "input"
	Output Direction = "output"
)

// Connection is a single named jack on a module.
type Connection struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Direction   Direction `json:"connection_type"`
	Description string    `json:"description,omitempty"`
}

// Control is a named adjustable parameter (knob, switch, button, slider)
// with a numeric range.
type Control struct {
	ID             uint    `json:"id"`
	Name           string  `json:"control_name"`
	Type           string  `json:"control_type"`
	MinValue       float64 `json:"min_value"`
	MaxValue       float64 `json:"max_value"`
	DefaultValue   float64 `json:"default_value"`
	IsAttenuator   bool    `json:"is_attenuator"`
	IsAttenuverter bool    `json:"is_attenuverter"`
}

// Module is one hardware unit with its declared jacks and controls.
type Module struct {
	ID           uint         `json:"id"`
	Name         string       `json:"name"`
	Manufacturer string       `json:"manufacturer"`
	Type         string       `json:"module_type"`
	Description  string       `json:"description,omitempty"`
	HPWidth      int          `json:"hp_width,omitempty"`
	ManualURL    string       `json:"manual_url,omitempty"`
	Connections  []Connection `json:"connections"`
	Controls     []Control    `json:"controls"`
}

// Outputs returns the module's output-direction jacks in declared order.
func (m Module) Outputs() []Connection {
	return m.jacks(Output)
}

// Inputs returns the module's input-direction jacks in declared order.
func (m Module) Inputs() []Connection {
	return m.jacks(Input)
}

func (m Module) jacks(dir Direction) []Connection {
	var out []Connection
	for _, c := range m.Connections {
		if c.Direction == dir {
			out = append(out, c)
		}
	}
	return out
}
