package synth

import "github.com/vk/firmgen/internal/model"

// Filter returns a new set in which every module keeps only the inputs and
// outputs whose category set intersects the enabled categories. Entries that
// declare no categories are dropped: an uncategorised port cannot be proven
// wanted, and generated source compiled onto hardware is the wrong place for
// benefit of the doubt.
//
// The input set and its modules are never mutated; filtered modules are deep
// copies, so later pipeline passes see consistent data no matter how often
// filtering runs. Filter is idempotent.
func Filter(set *model.Set, enabledCategories []string) *model.Set {
	enabled := make(map[string]struct{}, len(enabledCategories))
	for _, c := range enabledCategories {
		enabled[c] = struct{}{}
	}

	out := model.NewSet()
	for _, id := range set.IDs() {
		m := set.Get(id).Clone()
		m.Inputs = filterPorts(m.Inputs, enabled)
		m.Outputs = filterPorts(m.Outputs, enabled)
		out.Put(m)
	}
	return out
}

func filterPorts(ports map[string]model.Port, enabled map[string]struct{}) map[string]model.Port {
	out := make(map[string]model.Port, len(ports))
	for name, p := range ports {
		if p.MatchesAny(enabled) {
			out[name] = p
		}
	}
	return out
}
