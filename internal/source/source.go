// Package source defines where firmware module definitions come from - the
// remote document store or the project's local build tree - behind two small
// interfaces consumed by the registry.
package source

import (
	"context"

	"github.com/vk/firmgen/internal/model"
)

// TypeSource yields module type definitions one at a time. Iteration order
// is the source's own stable order; the registry applies last-write-wins
// across sources.
type TypeSource interface {
	// Name identifies the source in logs and error messages.
	Name() string
	// EachType calls fn for every definition. The first error aborts
	// iteration and is returned as-is.
	EachType(ctx context.Context, fn func(t *model.ModuleType) error) error
}

// InstanceSource yields the configured module instances for a project.
type InstanceSource interface {
	Name() string
	Instances(ctx context.Context) (*model.InstanceSet, error)
}
