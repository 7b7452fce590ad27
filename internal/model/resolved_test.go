package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPreservesInsertionOrder(t *testing.T) {
	s := NewSet()
	s.Put(&ResolvedModule{ID: "b"})
	s.Put(&ResolvedModule{ID: "a"})
	s.Put(&ResolvedModule{ID: "c"})

	assert.Equal(t, []string{"b", "a", "c"}, s.IDs())

	// Replacing keeps the original position.
	s.Put(&ResolvedModule{ID: "a", Type: "replaced"})
	assert.Equal(t, []string{"b", "a", "c"}, s.IDs())
	assert.Equal(t, "replaced", s.Get("a").Type)
	assert.Equal(t, 3, s.Len())
}

func TestResolvedModuleCloneIsIndependent(t *testing.T) {
	original := &ResolvedModule{
		ID: "t1",
		Outputs: map[string]Port{
			"temperature": {Type: "std_msgs/Float32", Categories: []string{"sensors"}},
		},
		PioDependencies: []string{"64"},
	}

	clone := original.Clone()
	require.Equal(t, original.ID, clone.ID)

	delete(clone.Outputs, "temperature")
	clone.PioDependencies[0] = "mutated"

	assert.Contains(t, original.Outputs, "temperature")
	assert.Equal(t, "64", original.PioDependencies[0])
}

func TestModuleTypeValidate(t *testing.T) {
	valid := &ModuleType{
		ID:         "temp_sensor",
		ClassName:  "TempSensor",
		HeaderFile: "temp_sensor.h",
		Arguments:  []ArgSpec{{Name: "pin", Type: ArgInt}},
	}
	field, err := valid.Validate()
	require.NoError(t, err)
	assert.Empty(t, field)

	cases := []struct {
		name  string
		mut   func(*ModuleType)
		field string
	}{
		{"empty id", func(m *ModuleType) { m.ID = "" }, "id"},
		{"missing class", func(m *ModuleType) { m.ClassName = "" }, "class_name"},
		{"missing header", func(m *ModuleType) { m.HeaderFile = "" }, "header_file"},
		{"bad arg type", func(m *ModuleType) { m.Arguments[0].Type = "double" }, "arguments[0].type"},
		{"unnamed arg", func(m *ModuleType) { m.Arguments[0].Name = "" }, "arguments[0].name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			broken := *valid
			broken.Arguments = []ArgSpec{{Name: "pin", Type: ArgInt}}
			tc.mut(&broken)
			field, err := broken.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.field, field)
		})
	}
}
