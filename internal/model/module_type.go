package model

import "fmt"

// Port describes a single input or output exposed by a firmware module,
// tagged with the categories that decide whether it is compiled in.
type Port struct {
	Type        string
	Description string
	Categories  []string
}

// MatchesAny reports whether at least one of the port's categories is in the
// enabled set. A port with no categories matches nothing; the conservative
// reading keeps uncategorised entries out of the generated source.
func (p Port) MatchesAny(enabled map[string]struct{}) bool {
	for _, c := range p.Categories {
		if _, ok := enabled[c]; ok {
			return true
		}
	}
	return false
}

// ModuleType is the abstract definition of a firmware driver: the C++ class
// to instantiate, the positional arguments its constructor takes, the typed
// inputs/outputs it exposes, and the libraries it needs to compile.
type ModuleType struct {
	ID          string
	Description string

	// ClassName and HeaderFile locate the driver in the generated source.
	ClassName  string
	HeaderFile string

	Arguments []ArgSpec
	Inputs    map[string]Port
	Outputs   map[string]Port

	// PioDependencies are registry-style package specifiers handed to the
	// external package installer. GitDependencies are source-control URLs
	// cloned into the project's lib tree.
	PioDependencies []string
	GitDependencies []string
}

// Validate checks the structural invariants of a type definition. It returns
// the name of the violated field so loaders can build precise schema errors.
func (t *ModuleType) Validate() (field string, err error) {
	if t.ID == "" {
		return "id", fmt.Errorf("identifier must not be empty")
	}
	if t.ClassName == "" {
		return "class_name", fmt.Errorf("class name is required")
	}
	if t.HeaderFile == "" {
		return "header_file", fmt.Errorf("header file is required")
	}
	for i, arg := range t.Arguments {
		if arg.Name == "" {
			return fmt.Sprintf("arguments[%d].name", i), fmt.Errorf("argument name must not be empty")
		}
		if _, err := ParseArgType(string(arg.Type)); err != nil {
			return fmt.Sprintf("arguments[%d].type", i), err
		}
	}
	return "", nil
}
