// Package registry assembles the module type registry for one build run.
package registry

import (
	"context"

	"github.com/vk/firmgen/internal/ctxlog"
	"github.com/vk/firmgen/internal/loader"
	"github.com/vk/firmgen/internal/model"
	"github.com/vk/firmgen/internal/source"
)

// Load reads module type definitions from the given sources in order. Later
// sources override earlier ones for identical identifiers, which is how
// project-local working copies shadow definitions from the server. The load
// is all-or-nothing: any invalid definition fails the whole call and no
// partial registry is returned.
func Load(ctx context.Context, sources ...source.TypeSource) (map[string]*model.ModuleType, error) {
	logger := ctxlog.FromContext(ctx)

	types := make(map[string]*model.ModuleType)
	for _, src := range sources {
		logger.Debug("Loading module types.", "source", src.Name())
		err := src.EachType(ctx, func(t *model.ModuleType) error {
			if field, err := t.Validate(); err != nil {
				return &loader.SchemaError{ID: t.ID, Field: field, Reason: err}
			}
			if _, exists := types[t.ID]; exists {
				logger.Debug("Overriding module type from earlier source.", "id", t.ID, "source", src.Name())
			}
			types[t.ID] = t
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	logger.Info("Module type registry loaded.", "types", len(types))
	return types, nil
}
