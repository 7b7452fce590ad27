package model

import "github.com/zclconf/go-cty/cty"

// ResolvedModule is the synthesis output for one instance: the instance
// merged with its type, arguments coerced to the declared schema. Records
// are produced fresh every run and never mutated after synthesis; filtering
// builds new copies instead of editing in place.
type ResolvedModule struct {
	ID          string
	Type        string
	Description string
	ClassName   string
	HeaderFile  string

	ArgSpecs  []ArgSpec
	Arguments []cty.Value

	Inputs  map[string]Port
	Outputs map[string]Port

	PioDependencies []string
	GitDependencies []string
}

// Clone returns a deep copy of the resolved module. Ports and slices are
// copied so the original cannot be mutated through the copy.
func (m *ResolvedModule) Clone() *ResolvedModule {
	out := *m
	out.ArgSpecs = append([]ArgSpec(nil), m.ArgSpecs...)
	out.Arguments = append([]cty.Value(nil), m.Arguments...)
	out.PioDependencies = append([]string(nil), m.PioDependencies...)
	out.GitDependencies = append([]string(nil), m.GitDependencies...)
	out.Inputs = clonePorts(m.Inputs)
	out.Outputs = clonePorts(m.Outputs)
	return &out
}

func clonePorts(ports map[string]Port) map[string]Port {
	out := make(map[string]Port, len(ports))
	for name, p := range ports {
		p.Categories = append([]string(nil), p.Categories...)
		out[name] = p
	}
	return out
}

// Set is an insertion-ordered collection of resolved modules.
type Set struct {
	order []string
	byID  map[string]*ResolvedModule
}

// NewSet returns an empty resolved module set.
func NewSet() *Set {
	return &Set{byID: make(map[string]*ResolvedModule)}
}

// Put inserts or replaces a resolved module, preserving first-insertion order.
func (s *Set) Put(m *ResolvedModule) {
	if _, exists := s.byID[m.ID]; !exists {
		s.order = append(s.order, m.ID)
	}
	s.byID[m.ID] = m
}

// Get returns the module with the given id, or nil.
func (s *Set) Get(id string) *ResolvedModule {
	return s.byID[id]
}

// IDs returns the module ids in insertion order.
func (s *Set) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of modules in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// Range calls fn for every module in insertion order, stopping at the first
// error.
func (s *Set) Range(fn func(m *ResolvedModule) error) error {
	for _, id := range s.order {
		if err := fn(s.byID[id]); err != nil {
			return err
		}
	}
	return nil
}
