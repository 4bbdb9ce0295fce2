package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleRefUnmarshalID(t *testing.T) {
	var ref ModuleRef
	require.NoError(t, json.Unmarshal([]byte(`42`), &ref))
	assert.Equal(t, uint(42), ref.ID)
	assert.False(t, ref.IsInline())
}

func TestModuleRefUnmarshalInline(t *testing.T) {
	payload := `{
		"name": "Plaits",
		"manufacturer": "Mutable Instruments",
		"module_type": "VCO",
		"connections": [
			{"name": "OUT", "connection_type": "output"},
			{"name": "PITCH", "connection_type": "input"}
		],
		"controls": [
			{"control_name": "FREQ", "control_type": "knob", "min_value": 0, "max_value": 100}
		]
	}`

	var ref ModuleRef
	require.NoError(t, json.Unmarshal([]byte(payload), &ref))
	require.True(t, ref.IsInline())
	assert.Equal(t, "Plaits", ref.Inline.Name)
	assert.Equal(t, "VCO", ref.Inline.Type)
	assert.Len(t, ref.Inline.Connections, 2)
	assert.Len(t, ref.Inline.Controls, 1)
}

func TestModuleRefUnmarshalRejectsOtherShapes(t *testing.T) {
	for _, payload := range []string{`"plaits"`, `true`, `[1,2]`} {
		var ref ModuleRef
		assert.Error(t, json.Unmarshal([]byte(payload), &ref), "payload %s", payload)
	}
}

func TestModuleRefListMixed(t *testing.T) {
	payload := `[7, {"name": "Custom VCF", "module_type": "filter"}, 9]`

	var refs []ModuleRef
	require.NoError(t, json.Unmarshal([]byte(payload), &refs))
	require.Len(t, refs, 3)
	assert.Equal(t, uint(7), refs[0].ID)
	assert.True(t, refs[1].IsInline())
	assert.Equal(t, uint(9), refs[2].ID)
}

func TestModuleJackFiltering(t *testing.T) {
	m := Module{
		Connections: []Connection{
			{ID: 1, Name: "OUT", Direction: Output},
			{ID: 2, Name: "PITCH", Direction: Input},
			{ID: 3, Name: "AUX", Direction: Output},
		},
	}

	outs := m.Outputs()
	require.Len(t, outs, 2)
	assert.Equal(t, "OUT", outs[0].Name)
	assert.Equal(t, "AUX", outs[1].Name)

	ins := m.Inputs()
	require.Len(t, ins, 1)
	assert.Equal(t, "PITCH", ins[0].Name)
}
