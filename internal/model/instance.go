package model

import "github.com/zclconf/go-cty/cty"

// ModuleInstance is a concrete, per-project usage of a module type with raw,
// not-yet-coerced argument values.
type ModuleInstance struct {
	ID        string
	Type      string
	Arguments []cty.Value
}

// InstanceSet is an insertion-ordered collection of module instances.
// Order matters: it fixes the traversal order of every later pipeline stage,
// which keeps generated output stable between runs.
type InstanceSet struct {
	order []string
	byID  map[string]*ModuleInstance
}

// NewInstanceSet returns an empty instance set.
func NewInstanceSet() *InstanceSet {
	return &InstanceSet{byID: make(map[string]*ModuleInstance)}
}

// Put inserts or replaces an instance. A replaced id keeps its original
// position in the order.
func (s *InstanceSet) Put(inst *ModuleInstance) {
	if _, exists := s.byID[inst.ID]; !exists {
		s.order = append(s.order, inst.ID)
	}
	s.byID[inst.ID] = inst
}

// Get returns the instance with the given id, or nil.
func (s *InstanceSet) Get(id string) *ModuleInstance {
	return s.byID[id]
}

// IDs returns the instance ids in insertion order.
func (s *InstanceSet) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of instances in the set.
func (s *InstanceSet) Len() int {
	return len(s.order)
}
