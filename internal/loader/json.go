package loader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/firmgen/internal/model"
	"github.com/vk/firmgen/internal/schema"
)

// ParseTypeJSON decodes a module.json descriptor into a validated module
// type keyed by the given id.
func ParseTypeJSON(id string, data []byte) (*model.ModuleType, error) {
	var doc schema.TypeDoc
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, &SchemaError{ID: id, Reason: err}
	}
	return translateTypeDoc(id, &doc)
}

func translateTypeDoc(id string, doc *schema.TypeDoc) (*model.ModuleType, error) {
	t := &model.ModuleType{
		ID:              id,
		Description:     doc.Description,
		ClassName:       doc.ClassName,
		HeaderFile:      doc.HeaderFile,
		Inputs:          make(map[string]model.Port, len(doc.Inputs)),
		Outputs:         make(map[string]model.Port, len(doc.Outputs)),
		PioDependencies: append([]string(nil), doc.PioDependencies...),
		GitDependencies: append([]string(nil), doc.GitDependencies...),
	}
	for _, arg := range doc.Arguments {
		t.Arguments = append(t.Arguments, model.ArgSpec{Name: arg.Name, Type: model.ArgType(arg.Type)})
	}
	for name, port := range doc.Inputs {
		t.Inputs[name] = model.Port{
			Type:        port.Type,
			Description: port.Description,
			Categories:  append([]string(nil), port.Categories...),
		}
	}
	for name, port := range doc.Outputs {
		t.Outputs[name] = model.Port{
			Type:        port.Type,
			Description: port.Description,
			Categories:  append([]string(nil), port.Categories...),
		}
	}

	if field, err := t.Validate(); err != nil {
		return nil, &SchemaError{ID: id, Field: field, Reason: err}
	}
	return t, nil
}

// ParseInstanceJSON decodes a single module instance document, as served by
// the remote store, into the model.
func ParseInstanceJSON(id string, data []byte) (*model.ModuleInstance, error) {
	var doc schema.InstanceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SchemaError{ID: id, Reason: err}
	}
	return translateInstanceDoc(id, &doc)
}

// ParseInstancesJSON decodes a modules.json document mapping instance id to
// instance fields. Document order is preserved so later pipeline stages
// traverse instances in the order the user wrote them.
func ParseInstancesJSON(data []byte) (*model.InstanceSet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, &SchemaError{ID: "modules", Reason: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &SchemaError{ID: "modules", Reason: fmt.Errorf("document must be a JSON object")}
	}

	set := model.NewInstanceSet()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &SchemaError{ID: "modules", Reason: err}
		}
		id := keyTok.(string)

		var doc schema.InstanceDoc
		if err := dec.Decode(&doc); err != nil {
			return nil, &SchemaError{ID: id, Reason: err}
		}
		inst, err := translateInstanceDoc(id, &doc)
		if err != nil {
			return nil, err
		}
		set.Put(inst)
	}
	return set, nil
}

func translateInstanceDoc(id string, doc *schema.InstanceDoc) (*model.ModuleInstance, error) {
	if doc.Type == "" {
		return nil, &SchemaError{ID: id, Field: "type", Reason: fmt.Errorf("type reference must not be empty")}
	}
	inst := &model.ModuleInstance{ID: id, Type: doc.Type}
	for i, raw := range doc.Arguments {
		val, err := jsonScalarToCty(raw)
		if err != nil {
			return nil, &SchemaError{ID: id, Field: fmt.Sprintf("arguments[%d]", i), Reason: err}
		}
		inst.Arguments = append(inst.Arguments, val)
	}
	return inst, nil
}

// jsonScalarToCty converts one JSON argument value to its cty equivalent.
// Numbers are parsed through cty so precision survives the round trip.
func jsonScalarToCty(raw json.RawMessage) (cty.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return cty.NilVal, err
	}
	switch vv := v.(type) {
	case string:
		return cty.StringVal(vv), nil
	case bool:
		return cty.BoolVal(vv), nil
	case json.Number:
		val, err := cty.ParseNumberVal(vv.String())
		if err != nil {
			return cty.NilVal, err
		}
		return val, nil
	default:
		return cty.NilVal, fmt.Errorf("argument values must be scalars, got %T", v)
	}
}
