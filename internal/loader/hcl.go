package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/firmgen/internal/model"
	"github.com/vk/firmgen/internal/schema"
)

// ParseTypeHCLFile decodes a module.hcl manifest from a lib directory. The
// directory name keys the type; a manifest whose label disagrees with the
// directory it lives in is rejected rather than silently re-keyed.
func ParseTypeHCLFile(id string, path string) (*model.ModuleType, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, &SchemaError{ID: id, Reason: diags}
	}

	var tf schema.TypeFile
	if diags := gohcl.DecodeBody(file.Body, nil, &tf); diags.HasErrors() {
		return nil, &SchemaError{ID: id, Reason: diags}
	}
	if len(tf.Types) != 1 {
		return nil, &SchemaError{ID: id, Reason: fmt.Errorf("manifest must declare exactly one module_type block, found %d", len(tf.Types))}
	}
	block := tf.Types[0]
	if block.ID != id {
		return nil, &SchemaError{ID: id, Field: "id", Reason: fmt.Errorf("manifest label %q does not match directory name %q", block.ID, id)}
	}
	return translateTypeBlock(block)
}

func translateTypeBlock(block *schema.TypeBlock) (*model.ModuleType, error) {
	t := &model.ModuleType{
		ID:              block.ID,
		Description:     block.Description,
		ClassName:       block.ClassName,
		HeaderFile:      block.HeaderFile,
		Inputs:          make(map[string]model.Port, len(block.Inputs)),
		Outputs:         make(map[string]model.Port, len(block.Outputs)),
		PioDependencies: append([]string(nil), block.PioDependencies...),
		GitDependencies: append([]string(nil), block.GitDependencies...),
	}
	for _, arg := range block.Arguments {
		t.Arguments = append(t.Arguments, model.ArgSpec{Name: arg.Name, Type: model.ArgType(arg.Type)})
	}
	for _, port := range block.Inputs {
		t.Inputs[port.Name] = model.Port{
			Type:        port.Type,
			Description: port.Description,
			Categories:  append([]string(nil), port.Categories...),
		}
	}
	for _, port := range block.Outputs {
		t.Outputs[port.Name] = model.Port{
			Type:        port.Type,
			Description: port.Description,
			Categories:  append([]string(nil), port.Categories...),
		}
	}

	if field, err := t.Validate(); err != nil {
		return nil, &SchemaError{ID: block.ID, Field: field, Reason: err}
	}
	return t, nil
}

// ParseInstancesHCLFile decodes a modules.hcl file containing module blocks,
// preserving the order blocks appear in the file.
func ParseInstancesHCLFile(path string) (*model.InstanceSet, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, &SchemaError{ID: "modules", Reason: diags}
	}

	var inf schema.InstanceFile
	if diags := gohcl.DecodeBody(file.Body, nil, &inf); diags.HasErrors() {
		return nil, &SchemaError{ID: "modules", Reason: diags}
	}

	set := model.NewInstanceSet()
	for _, block := range inf.Modules {
		if block.Type == "" {
			return nil, &SchemaError{ID: block.ID, Field: "type", Reason: fmt.Errorf("type reference must not be empty")}
		}
		inst := &model.ModuleInstance{ID: block.ID, Type: block.Type}
		if block.Arguments != nil {
			args, err := evalArgumentList(block.ID, block.Arguments)
			if err != nil {
				return nil, err
			}
			inst.Arguments = args
		}
		set.Put(inst)
	}
	return set, nil
}

func evalArgumentList(id string, expr hcl.Expression) ([]cty.Value, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, &SchemaError{ID: id, Field: "arguments", Reason: diags}
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsTupleType() && !val.Type().IsListType() {
		return nil, &SchemaError{ID: id, Field: "arguments", Reason: fmt.Errorf("arguments must be a list")}
	}

	var out []cty.Value
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		out = append(out, elem)
	}
	return out, nil
}
