// Package plugin defines the code-emission extension point of the generator
// and the closed registry plugins are resolved from.
package plugin

import (
	"fmt"

	"github.com/vk/firmgen/internal/model"
)

// Plugin contributes snippets to the generated source unit and libraries to
// the dependency closure. A plugin is constructed once per run from the
// final filtered module set and must not have side effects beyond its own
// bookkeeping.
type Plugin interface {
	// Name identifies the plugin in error messages.
	Name() string
	// Globals returns source emitted at file scope, before setup().
	Globals() (string, error)
	// Setup returns source emitted inside setup().
	Setup() (string, error)
	// Loop returns source emitted inside loop().
	Loop() (string, error)
	// PioDependencies returns registry-style package specifiers the
	// emitted source needs.
	PioDependencies() []string
	// GitDependencies returns source-control URLs the emitted source needs.
	GitDependencies() []string
}

// Factory builds a plugin instance for one run.
type Factory func(modules *model.Set) (Plugin, error)

// UnknownPluginError reports a plugin name that is neither a built-in nor a
// well-formed external reference.
type UnknownPluginError struct {
	Name string
}

func (e *UnknownPluginError) Error() string {
	return fmt.Sprintf("%q is not a valid plugin name", e.Name)
}

// ModuleNotFoundError reports an external plugin reference whose module path
// has not been registered.
type ModuleNotFoundError struct {
	Path string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("%q does not name a registered plugin module", e.Path)
}

// ClassNotFoundError reports an external plugin reference whose module is
// registered but does not provide the named class.
type ClassNotFoundError struct {
	Path  string
	Class string
}

func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("plugin module %q does not contain %q", e.Path, e.Class)
}
