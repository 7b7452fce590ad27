package plugin

import (
	"fmt"
	"strings"

	"github.com/vk/firmgen/internal/model"
)

// CSV emits a serial logging hook that prints one comma-separated status
// line per loop pass, suitable for capture with a serial monitor.
type CSV struct {
	modules *model.Set
}

// NewCSV is the factory for the built-in "csv" plugin.
func NewCSV(modules *model.Set) (Plugin, error) {
	return &CSV{modules: modules}, nil
}

// Name implements Plugin.
func (p *CSV) Name() string { return "csv" }

// Globals implements Plugin.
func (p *CSV) Globals() (string, error) {
	var cols []string
	_ = p.modules.Range(func(m *model.ResolvedModule) error {
		for _, name := range sortedOutputs(m) {
			cols = append(cols, fmt.Sprintf("%s.%s", m.ID, name))
		}
		return nil
	})
	var b strings.Builder
	b.WriteString("// CSV columns: time_ms")
	for _, col := range cols {
		b.WriteString("," + col)
	}
	b.WriteString("\nbool csv_header_sent = false;\n")
	return b.String(), nil
}

// Setup implements Plugin.
func (p *CSV) Setup() (string, error) {
	return "", nil
}

// Loop implements Plugin.
func (p *CSV) Loop() (string, error) {
	var b strings.Builder
	b.WriteString("Serial.print(millis());\n")
	_ = p.modules.Range(func(m *model.ResolvedModule) error {
		for _, name := range sortedOutputs(m) {
			b.WriteString("Serial.print(\",\");\n")
			fmt.Fprintf(&b, "Serial.print(%s.get_%s());\n", m.ID, name)
		}
		return nil
	})
	b.WriteString("Serial.println();\n")
	return b.String(), nil
}

// PioDependencies implements Plugin.
func (p *CSV) PioDependencies() []string { return nil }

// GitDependencies implements Plugin.
func (p *CSV) GitDependencies() []string { return nil }
