package model

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ArgType is the closed set of types a module argument may declare.
type ArgType string

const (
	ArgInt    ArgType = "int"
	ArgFloat  ArgType = "float"
	ArgBool   ArgType = "bool"
	ArgString ArgType = "string"
)

// ParseArgType validates a raw descriptor type string against the closed enum.
func ParseArgType(raw string) (ArgType, error) {
	switch ArgType(raw) {
	case ArgInt, ArgFloat, ArgBool, ArgString:
		return ArgType(raw), nil
	}
	return "", fmt.Errorf("unknown argument type %q (want int, float, bool or string)", raw)
}

// CtyType returns the cty equivalent of the declared argument type.
func (t ArgType) CtyType() cty.Type {
	switch t {
	case ArgInt, ArgFloat:
		return cty.Number
	case ArgBool:
		return cty.Bool
	default:
		return cty.String
	}
}

// ArgSpec is one positional argument declared by a module type.
type ArgSpec struct {
	Name string
	Type ArgType
}

// CoerceArg converts a raw argument value to the declared type. Booleans
// accept only the case-insensitive literals "true" and "false" when supplied
// as strings; int targets additionally require a whole number.
func CoerceArg(val cty.Value, target ArgType) (cty.Value, error) {
	if val.IsNull() {
		return cty.NilVal, fmt.Errorf("value is null, want %s", target)
	}

	if target == ArgBool && val.Type() == cty.String {
		switch strings.ToLower(val.AsString()) {
		case "true":
			return cty.True, nil
		case "false":
			return cty.False, nil
		}
		return cty.NilVal, fmt.Errorf("%q is not a boolean value (\"true\" or \"false\")", val.AsString())
	}

	converted, err := convert.Convert(val, target.CtyType())
	if err != nil {
		return cty.NilVal, fmt.Errorf("cannot convert %s to %s: %w", val.Type().FriendlyName(), target, err)
	}

	if target == ArgInt {
		if _, acc := converted.AsBigFloat().Int64(); acc != 0 {
			return cty.NilVal, fmt.Errorf("value is not a whole number")
		}
	}

	return converted, nil
}
