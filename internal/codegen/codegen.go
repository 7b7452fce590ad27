// Package codegen renders the filtered, plugin-augmented module set into a
// single compilable source unit and computes its dependency closure.
//
// Rendering is deterministic: modules are traversed in set insertion order
// and plugins in pipeline order, so identical inputs produce byte-identical
// output. Generated source is meant to be diffable and cacheable.
package codegen

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/firmgen/internal/model"
	"github.com/vk/firmgen/internal/plugin"
)

const sourceTemplate = `/*
 * Generated firmware build unit. Do not edit by hand; re-run the generator
 * after changing module definitions.
 */
#include <Arduino.h>
#include <openag_module.h>
{{- range .Headers}}
#include "{{.}}"
{{- end}}

{{range .PluginGlobals}}{{.}}
{{end -}}

const unsigned long STATUS_UPDATE_INTERVAL = {{.StatusIntervalMs}};
unsigned long last_status_update = 0;

{{range .Modules}}{{.ClassName}} {{.ID}}({{.Args}});
{{end}}
void report_status(const char *id, Module &mod) {
  Serial.print(F("S,"));
  Serial.print(id);
  Serial.print(F(","));
  Serial.print(mod.status_level);
  Serial.print(F(","));
  Serial.println(mod.status_msg);
}

void setup() {
  Serial.begin(9600);
{{- range .Modules}}
  {{.ID}}.begin();
{{- end}}
{{- range .PluginSetups}}
{{.}}
{{- end}}
}

void loop() {
{{- range .Modules}}
  {{.ID}}.update();
{{- end}}
  if (millis() - last_status_update >= STATUS_UPDATE_INTERVAL) {
    last_status_update = millis();
{{- range .Modules}}
    report_status("{{.ID}}", {{.ID}});
{{- end}}
  }
{{- range .PluginLoops}}
{{.}}
{{- end}}
}
`

var tmpl = template.Must(template.New("src").Parse(sourceTemplate))

type moduleView struct {
	ID        string
	ClassName string
	Args      string
}

type sourceView struct {
	Headers          []string
	PluginGlobals    []string
	PluginSetups     []string
	PluginLoops      []string
	Modules          []moduleView
	StatusIntervalMs int64
}

// Generate renders the module set into source text and computes the
// dependency closure. statusUpdateInterval is emitted as a millisecond
// constant gating how often the device reports driver status upstream; it
// has no influence on generation control flow.
func Generate(set *model.Set, plugins []plugin.Plugin, statusUpdateInterval time.Duration) (string, *Closure, error) {
	view := sourceView{StatusIntervalMs: statusUpdateInterval.Milliseconds()}

	seenHeaders := make(map[string]struct{})
	err := set.Range(func(m *model.ResolvedModule) error {
		if _, ok := seenHeaders[m.HeaderFile]; !ok {
			seenHeaders[m.HeaderFile] = struct{}{}
			view.Headers = append(view.Headers, m.HeaderFile)
		}
		args, err := renderArguments(m)
		if err != nil {
			return err
		}
		view.Modules = append(view.Modules, moduleView{
			ID:        m.ID,
			ClassName: m.ClassName,
			Args:      args,
		})
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	for _, p := range plugins {
		globals, err := p.Globals()
		if err != nil {
			return "", nil, &GenerationError{Plugin: p.Name(), Hook: "globals", Reason: err}
		}
		setup, err := p.Setup()
		if err != nil {
			return "", nil, &GenerationError{Plugin: p.Name(), Hook: "setup", Reason: err}
		}
		loop, err := p.Loop()
		if err != nil {
			return "", nil, &GenerationError{Plugin: p.Name(), Hook: "loop", Reason: err}
		}
		if globals != "" {
			view.PluginGlobals = append(view.PluginGlobals, strings.TrimRight(globals, "\n"))
		}
		if setup != "" {
			view.PluginSetups = append(view.PluginSetups, indent(setup, "  "))
		}
		if loop != "" {
			view.PluginLoops = append(view.PluginLoops, indent(loop, "  "))
		}
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, view); err != nil {
		return "", nil, err
	}

	return b.String(), buildClosure(set, plugins), nil
}

// renderArguments formats a module's coerced argument values as C++
// constructor literals.
func renderArguments(m *model.ResolvedModule) (string, error) {
	parts := make([]string, len(m.Arguments))
	for i, val := range m.Arguments {
		lit, err := cppLiteral(val, m.ArgSpecs[i].Type)
		if err != nil {
			return "", fmt.Errorf("module %q argument %d: %w", m.ID, i, err)
		}
		parts[i] = lit
	}
	return strings.Join(parts, ", "), nil
}

func cppLiteral(val cty.Value, t model.ArgType) (string, error) {
	switch t {
	case model.ArgInt:
		n, _ := val.AsBigFloat().Int64()
		return fmt.Sprintf("%d", n), nil
	case model.ArgFloat:
		return val.AsBigFloat().Text('g', -1), nil
	case model.ArgBool:
		if val.True() {
			return "true", nil
		}
		return "false", nil
	case model.ArgString:
		return fmt.Sprintf("%q", val.AsString()), nil
	}
	return "", fmt.Errorf("unsupported argument type %q", t)
}

// indent prefixes every non-empty line of a snippet.
func indent(s string, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
