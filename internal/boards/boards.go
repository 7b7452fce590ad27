// Package boards carries the catalog of microcontroller boards the tool can
// initialize projects for.
package boards

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed boards.yaml
var catalogYAML []byte

// DefaultBoard is used when the user does not pick one.
const DefaultBoard = "megaatmega2560"

// Board describes one supported compilation target.
type Board struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	MCU  string `yaml:"mcu"`
	FCPU int64  `yaml:"f_cpu"`
}

type catalogDoc struct {
	Boards []Board `yaml:"boards"`
}

var byID = func() map[string]Board {
	var doc catalogDoc
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		panic(fmt.Sprintf("boards: embedded catalog is invalid: %v", err))
	}
	m := make(map[string]Board, len(doc.Boards))
	for _, b := range doc.Boards {
		m[b.ID] = b
	}
	return m
}()

// Lookup returns the board with the given id.
func Lookup(id string) (Board, bool) {
	b, ok := byID[id]
	return b, ok
}

// Validate returns an error naming the known ids if the given id is not in
// the catalog.
func Validate(id string) error {
	if _, ok := byID[id]; ok {
		return nil
	}
	return fmt.Errorf("unknown board %q (known boards: %v)", id, IDs())
}

// IDs lists the catalog ids in lexical order.
func IDs() []string {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
