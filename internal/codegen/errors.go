package codegen

import "fmt"

// GenerationError reports a plugin hook failing during rendering. No source
// text is produced alongside it; a half-generated build unit must never
// reach the artifact path.
type GenerationError struct {
	Plugin string
	Hook   string
	Reason error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("plugin %q failed during %s emission: %v", e.Plugin, e.Hook, e.Reason)
}

// Unwrap exposes the plugin's own error.
func (e *GenerationError) Unwrap() error {
	return e.Reason
}
