package registry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/firmgen/internal/ctxlog"
	"github.com/vk/firmgen/internal/loader"
	"github.com/vk/firmgen/internal/model"
)

// stubSource yields a fixed list of types in order.
type stubSource struct {
	name  string
	types []*model.ModuleType
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) EachType(ctx context.Context, fn func(t *model.ModuleType) error) error {
	for _, t := range s.types {
		if err := fn(t); err != nil {
			return err
		}
	}
	return nil
}

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func validType(id, class string) *model.ModuleType {
	return &model.ModuleType{ID: id, ClassName: class, HeaderFile: id + ".h"}
}

func TestLoadLastSourceWins(t *testing.T) {
	remote := &stubSource{name: "remote", types: []*model.ModuleType{
		validType("temp_sensor", "ServerTempSensor"),
		validType("pump", "Pump"),
	}}
	local := &stubSource{name: "local", types: []*model.ModuleType{
		validType("temp_sensor", "LocalTempSensor"),
	}}

	types, err := Load(testContext(), remote, local)
	require.NoError(t, err)

	assert.Len(t, types, 2)
	// The later (local) source overrides the earlier (remote) one.
	assert.Equal(t, "LocalTempSensor", types["temp_sensor"].ClassName)
	assert.Equal(t, "Pump", types["pump"].ClassName)
}

func TestLoadIsAllOrNothing(t *testing.T) {
	good := &stubSource{name: "good", types: []*model.ModuleType{
		validType("temp_sensor", "TempSensor"),
	}}
	bad := &stubSource{name: "bad", types: []*model.ModuleType{
		{ID: "broken", ClassName: "", HeaderFile: "broken.h"},
	}}

	types, err := Load(testContext(), good, bad)
	require.Error(t, err)
	assert.Nil(t, types, "no partial registry on failure")

	var schemaErr *loader.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "broken", schemaErr.ID)
	assert.Equal(t, "class_name", schemaErr.Field)
}

func TestLoadEmptySources(t *testing.T) {
	types, err := Load(testContext())
	require.NoError(t, err)
	assert.Empty(t, types)
}
