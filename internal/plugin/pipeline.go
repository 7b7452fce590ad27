package plugin

import "github.com/vk/firmgen/internal/model"

// BuildPipeline resolves the named plugins and constructs each one with the
// final filtered module set. Pipeline order is declaration order and stays
// stable through generation.
func BuildPipeline(names []string, modules *model.Set) ([]Plugin, error) {
	plugins := make([]Plugin, 0, len(names))
	for _, name := range names {
		factory, err := Resolve(name)
		if err != nil {
			return nil, err
		}
		p, err := factory(modules)
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, p)
	}
	return plugins, nil
}
