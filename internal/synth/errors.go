package synth

import "fmt"

// UnknownTypeError reports an instance referencing a module type that is not
// in the registry.
type UnknownTypeError struct {
	InstanceID string
	TypeID     string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("module %q references unknown type %q", e.InstanceID, e.TypeID)
}

// ArgumentCountError reports an instance supplying more arguments than its
// type declares.
type ArgumentCountError struct {
	InstanceID string
	Got        int
	Want       int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("module %q: too many arguments (got %d, type declares %d)", e.InstanceID, e.Got, e.Want)
}

// ArgumentTypeError reports an argument value that cannot be coerced to the
// declared type, identified by its positional index.
type ArgumentTypeError struct {
	InstanceID string
	Index      int
	Want       string
	Reason     error
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("module %q: argument %d must be a %s value: %v", e.InstanceID, e.Index, e.Want, e.Reason)
}

// Unwrap exposes the underlying coercion failure.
func (e *ArgumentTypeError) Unwrap() error {
	return e.Reason
}
