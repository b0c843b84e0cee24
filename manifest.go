// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// YAML plugin manifests declare shared-object plugins to a host CLI, so that
// externally built plugin files can be hooked up without recompiling the
// host.

package subplug

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest lists plugin commands packaged as Go plugin shared objects. The
// YAML form is simply:
//
//	plugins:
//	  - name: frobnicate
//	    path: /usr/lib/plugit/frobnicate.so
//	    symbol: FrobnicateCommand
type Manifest struct {
	Plugins []ManifestEntry `yaml:"plugins"`
}

// ManifestEntry declares a single shared-object plugin. Only the path is
// required: the name defaults to the shared object's base file name and the
// symbol to [DefaultCommandSymbol].
type ManifestEntry struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Symbol string `yaml:"symbol"`
}

// LoadManifest reads a plugin manifest file and returns a Source yielding one
// shared-object descriptor per declared plugin. An unreadable or malformed
// manifest is the host's configuration problem and reported as an error right
// here; in contrast, a declared plugin that later turns out to be unloadable
// is contained as usual and becomes a broken command.
func LoadManifest(path string) (Source, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read plugin manifest: %w", err)
	}
	source, err := ParseManifest(contents)
	if err != nil {
		return nil, fmt.Errorf("plugin manifest %s: %w", path, err)
	}
	return source, nil
}

// ParseManifest parses YAML plugin manifest contents, see [LoadManifest].
func ParseManifest(contents []byte) (Source, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(contents, &manifest); err != nil {
		return nil, fmt.Errorf("malformed plugin manifest: %w", err)
	}
	descriptors := make([]Descriptor, 0, len(manifest.Plugins))
	for i, entry := range manifest.Plugins {
		name := entry.Name
		if name == "" && entry.Path != "" {
			name = strings.TrimSuffix(filepath.Base(entry.Path), ".so")
		}
		if name == "" {
			// Entry without name and path: still keep the diagnostics legible
			// by at least naming the entry's position.
			name = fmt.Sprintf("plugin-%d", i+1)
		}
		descriptors = append(descriptors, NewSharedObject(name, entry.Path, entry.Symbol))
	}
	return Descriptors(descriptors...), nil
}
