package schema

import "encoding/json"

// --- JSON descriptor documents ---

// ArgDoc is one positional argument in a module.json descriptor.
type ArgDoc struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// PortDoc is one input or output entry in a module.json descriptor.
type PortDoc struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

// TypeDoc is the module.json descriptor for a firmware module type. The same
// shape is served by the remote document store.
type TypeDoc struct {
	Description     string             `json:"description,omitempty"`
	ClassName       string             `json:"class_name"`
	HeaderFile      string             `json:"header_file"`
	Arguments       []ArgDoc           `json:"arguments,omitempty"`
	Inputs          map[string]PortDoc `json:"inputs,omitempty"`
	Outputs         map[string]PortDoc `json:"outputs,omitempty"`
	PioDependencies []string           `json:"pio_dependencies,omitempty"`
	GitDependencies []string           `json:"git_dependencies,omitempty"`
}

// InstanceDoc is one entry of a modules.json file or of the remote module
// database: a module type reference plus raw argument values.
type InstanceDoc struct {
	Type      string            `json:"type"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
}
