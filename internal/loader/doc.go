// Package loader parses firmware module descriptors - module.json documents
// and the module.hcl manifest dialect - and translates them into the
// format-agnostic model. All parse and validation failures surface as
// SchemaError values naming the offending identifier and field.
package loader
