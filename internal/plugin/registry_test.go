package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/firmgen/internal/model"
)

func TestResolveBuiltins(t *testing.T) {
	for _, name := range []string{"ros", "csv"} {
		factory, err := Resolve(name)
		require.NoError(t, err, name)
		p, err := factory(model.NewSet())
		require.NoError(t, err)
		assert.Equal(t, name, p.Name())
	}
}

func TestResolveBadForms(t *testing.T) {
	for _, name := range []string{"nope", ":OnlyClass", "only_module:", ""} {
		_, err := Resolve(name)
		var unknownErr *UnknownPluginError
		require.ErrorAs(t, err, &unknownErr, "name %q", name)
	}
}

func TestResolveExternal(t *testing.T) {
	RegisterExternal("example.com/testplugins", "Blink", func(modules *model.Set) (Plugin, error) {
		return &CSV{modules: modules}, nil
	})
	t.Cleanup(func() { delete(external, "example.com/testplugins") })

	factory, err := Resolve("example.com/testplugins:Blink")
	require.NoError(t, err)
	assert.NotNil(t, factory)

	_, err = Resolve("example.com/missing:Blink")
	var moduleErr *ModuleNotFoundError
	require.ErrorAs(t, err, &moduleErr)
	assert.Equal(t, "example.com/missing", moduleErr.Path)

	_, err = Resolve("example.com/testplugins:Missing")
	var classErr *ClassNotFoundError
	require.ErrorAs(t, err, &classErr)
	assert.Equal(t, "Missing", classErr.Class)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("ros", NewROS)
	})
}

func TestBuildPipelineKeepsDeclarationOrder(t *testing.T) {
	plugins, err := BuildPipeline([]string{"csv", "ros"}, model.NewSet())
	require.NoError(t, err)
	require.Len(t, plugins, 2)
	assert.Equal(t, "csv", plugins[0].Name())
	assert.Equal(t, "ros", plugins[1].Name())
}

func TestBuildPipelineUnknownNameFails(t *testing.T) {
	_, err := BuildPipeline([]string{"csv", "bogus"}, model.NewSet())
	var unknownErr *UnknownPluginError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "bogus", unknownErr.Name)
}

func TestROSRejectsUnsupportedMessageType(t *testing.T) {
	set := model.NewSet()
	set.Put(&model.ResolvedModule{
		ID: "cam",
		Outputs: map[string]model.Port{
			"frame": {Type: "sensor_msgs/Image", Categories: []string{"sensors"}},
		},
	})

	p, err := NewROS(set)
	require.NoError(t, err)
	_, err = p.Globals()
	assert.Error(t, err)
}
