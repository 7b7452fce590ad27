// Package schema holds the raw, format-specific shapes of firmware module
// descriptors before they are translated into the model.
package schema

import "github.com/hashicorp/hcl/v2"

// --- HCL manifest dialect ---

// ArgumentBlock declares one positional constructor argument.
type ArgumentBlock struct {
	Name string `hcl:"name,label"`
	Type string `hcl:"type"`
}

// PortBlock declares one input or output of a module type.
type PortBlock struct {
	Name        string   `hcl:"name,label"`
	Type        string   `hcl:"type"`
	Description string   `hcl:"description,optional"`
	Categories  []string `hcl:"categories,optional"`
}

// TypeBlock is the HCL manifest for a firmware module type.
type TypeBlock struct {
	ID              string           `hcl:"id,label"`
	Description     string           `hcl:"description,optional"`
	ClassName       string           `hcl:"class_name"`
	HeaderFile      string           `hcl:"header_file"`
	Arguments       []*ArgumentBlock `hcl:"argument,block"`
	Inputs          []*PortBlock     `hcl:"input,block"`
	Outputs         []*PortBlock     `hcl:"output,block"`
	PioDependencies []string         `hcl:"pio_dependencies,optional"`
	GitDependencies []string         `hcl:"git_dependencies,optional"`
}

// TypeFile is the top-level structure of a module.hcl manifest.
type TypeFile struct {
	Types []*TypeBlock `hcl:"module_type,block"`
	Body  hcl.Body     `hcl:",remain"`
}

// ModuleBlock is one configured module instance in an instances file.
type ModuleBlock struct {
	ID        string         `hcl:"id,label"`
	Type      string         `hcl:"type"`
	Arguments hcl.Expression `hcl:"arguments,optional"`
}

// InstanceFile is the top-level structure of a modules.hcl file.
type InstanceFile struct {
	Modules []*ModuleBlock `hcl:"module,block"`
	Body    hcl.Body       `hcl:",remain"`
}
