package plugin

import (
	"fmt"
	"strings"
)

// builtins is the closed table of plugins compiled into the binary.
var builtins = map[string]Factory{
	"ros": NewROS,
	"csv": NewCSV,
}

// external holds plugins contributed through RegisterExternal, keyed by
// module path and class name. This is the one extension point: callers
// register before pipeline construction, resolution stays a plain lookup.
var external = map[string]map[string]Factory{}

// Register adds a built-in plugin under a bare name. Registration happens
// during startup; a duplicate name is a programmer error.
func Register(name string, factory Factory) {
	if _, exists := builtins[name]; exists {
		panic(fmt.Sprintf("plugin %q already registered", name))
	}
	builtins[name] = factory
}

// RegisterExternal adds a plugin addressable as "<modulePath>:<className>".
func RegisterExternal(modulePath, className string, factory Factory) {
	classes, ok := external[modulePath]
	if !ok {
		classes = map[string]Factory{}
		external[modulePath] = classes
	}
	if _, exists := classes[className]; exists {
		panic(fmt.Sprintf("plugin class %q already registered in module %q", className, modulePath))
	}
	classes[className] = factory
}

// Resolve maps a plugin name to its factory. Bare names hit the built-in
// table; names of the form "<module-path>:<ClassName>" hit the external
// table. Any other form is a user-input error.
func Resolve(name string) (Factory, error) {
	if factory, ok := builtins[name]; ok {
		return factory, nil
	}

	modulePath, className, found := strings.Cut(name, ":")
	if !found || modulePath == "" || className == "" {
		return nil, &UnknownPluginError{Name: name}
	}
	classes, ok := external[modulePath]
	if !ok {
		return nil, &ModuleNotFoundError{Path: modulePath}
	}
	factory, ok := classes[className]
	if !ok {
		return nil, &ClassNotFoundError{Path: modulePath, Class: className}
	}
	return factory, nil
}
