package loader

import "fmt"

// SchemaError reports a malformed module type or instance definition. It
// names the offending identifier and the violated field so the failure can
// be traced back to the source document.
type SchemaError struct {
	ID     string
	Field  string
	Reason error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid definition %q: %v", e.ID, e.Reason)
	}
	return fmt.Sprintf("invalid definition %q: field %q: %v", e.ID, e.Field, e.Reason)
}

// Unwrap exposes the underlying cause.
func (e *SchemaError) Unwrap() error {
	return e.Reason
}
