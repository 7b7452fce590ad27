package codegen

import (
	"strings"

	"github.com/vk/firmgen/internal/model"
	"github.com/vk/firmgen/internal/plugin"
)

// Closure is the full set of external libraries the generated source needs:
// registry-style package specifiers for the package installer and
// source-control URLs for the fetch step. Both lists are order-preserving
// and de-duplicated.
type Closure struct {
	Pio []string
	Git []string
}

// GitFolderName derives the local library folder for a source-control URL
// from its final non-extension path segment.
func GitFolderName(url string) string {
	segments := strings.Split(url, "/")
	last := segments[len(segments)-1]
	return strings.SplitN(last, ".", 2)[0]
}

// buildClosure unions dependencies across every module in set order and
// every plugin in pipeline order.
func buildClosure(set *model.Set, plugins []plugin.Plugin) *Closure {
	var c Closure
	seenPio := make(map[string]struct{})
	seenGit := make(map[string]struct{})

	addPio := func(deps []string) {
		for _, dep := range deps {
			if _, ok := seenPio[dep]; ok {
				continue
			}
			seenPio[dep] = struct{}{}
			c.Pio = append(c.Pio, dep)
		}
	}
	addGit := func(deps []string) {
		for _, dep := range deps {
			if _, ok := seenGit[dep]; ok {
				continue
			}
			seenGit[dep] = struct{}{}
			c.Git = append(c.Git, dep)
		}
	}

	_ = set.Range(func(m *model.ResolvedModule) error {
		addPio(m.PioDependencies)
		addGit(m.GitDependencies)
		return nil
	})
	for _, p := range plugins {
		addPio(p.PioDependencies())
		addGit(p.GitDependencies())
	}

	return &c
}
