// Package synth merges module instances with their type definitions and
// prunes the result down to the enabled capability categories.
package synth

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/firmgen/internal/model"
)

// Synthesize resolves every instance against the type registry. The result
// is keyed by instance id in the instance set's own order; a project may
// instantiate the same type any number of times under distinct ids.
//
// Synthesize is a pure function: it reads its inputs, builds fresh records,
// and carries no state between calls.
func Synthesize(instances *model.InstanceSet, types map[string]*model.ModuleType) (*model.Set, error) {
	out := model.NewSet()

	for _, id := range instances.IDs() {
		inst := instances.Get(id)

		t, ok := types[inst.Type]
		if !ok {
			return nil, &UnknownTypeError{InstanceID: inst.ID, TypeID: inst.Type}
		}

		if len(inst.Arguments) > len(t.Arguments) {
			return nil, &ArgumentCountError{
				InstanceID: inst.ID,
				Got:        len(inst.Arguments),
				Want:       len(t.Arguments),
			}
		}

		args := make([]cty.Value, len(inst.Arguments))
		for i, raw := range inst.Arguments {
			spec := t.Arguments[i]
			coerced, err := model.CoerceArg(raw, spec.Type)
			if err != nil {
				return nil, &ArgumentTypeError{
					InstanceID: inst.ID,
					Index:      i,
					Want:       string(spec.Type),
					Reason:     err,
				}
			}
			args[i] = coerced
		}

		resolved := &model.ResolvedModule{
			ID:              inst.ID,
			Type:            t.ID,
			Description:     t.Description,
			ClassName:       t.ClassName,
			HeaderFile:      t.HeaderFile,
			ArgSpecs:        append([]model.ArgSpec(nil), t.Arguments...),
			Arguments:       args,
			PioDependencies: append([]string(nil), t.PioDependencies...),
			GitDependencies: append([]string(nil), t.GitDependencies...),
		}
		resolved.Inputs = copyPorts(t.Inputs)
		resolved.Outputs = copyPorts(t.Outputs)

		out.Put(resolved)
	}

	return out, nil
}

func copyPorts(ports map[string]model.Port) map[string]model.Port {
	out := make(map[string]model.Port, len(ports))
	for name, p := range ports {
		p.Categories = append([]string(nil), p.Categories...)
		out[name] = p
	}
	return out
}
