// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Implements the attach phase: pulling descriptors from their sources,
// resolving them, and wiring either the real command or a broken-command
// stand-in into the host's command group. Most of the weight here is failure
// containment, as no plugin load failure may ever escape the attach phase.

package subplug

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Annotation keys on attached commands, so that hosts can tell plugin
// commands from built-ins and broken stand-ins from working plugins.
const (
	// PluginAnnotation keys the display form of the descriptor an attached
	// command was resolved from.
	PluginAnnotation = "subplug/plugin"
	// BrokenAnnotation is present (with value "true") on broken-command
	// stand-ins only.
	BrokenAnnotation = "subplug/broken"
)

// WithPlugins attaches the plugin commands yielded by the specified sources
// to an already constructed command group and returns that same group. Every
// descriptor ends up in the group: resolvable ones as their real commands
// (sub-groups nest as-is), unresolvable ones as broken stand-in commands that
// report the captured failure when invoked. Load failures never propagate out
// of WithPlugins, so one broken plugin cannot keep the host CLI from starting
// or from running its other commands.
//
// Descriptors declaring the same name overwrite each other in sequence order,
// as do pre-existing group commands of the same name; ordinary last-write-wins
// mapping semantics, no error raised.
//
// Passing a nil group is a programming error of the host, not a plugin
// failure, and panics right away: apply WithPlugins only after the group has
// been constructed.
func WithPlugins(group *cobra.Command, sources ...Source) *cobra.Command {
	if group == nil {
		panic("subplug.WithPlugins: nil command group " +
			"(attach plugins only after constructing the group)")
	}
	for _, source := range sources {
		for descriptor := range source.Descriptors() {
			attach(group, descriptor)
		}
	}
	return group
}

// attach resolves a single descriptor and adds the outcome to the group,
// under the descriptor's declared name in either case.
func attach(group *cobra.Command, descriptor Descriptor) {
	cmd, err := descriptor.Resolve()
	if err != nil {
		// No descriptor prefix here: resolve errors already identify their
		// plugin.
		log.Warnf("could not load plugin: %s", err)
		addCommand(group, brokenCommand(group, descriptor, err))
		return
	}
	rename(cmd, descriptor.Name())
	annotate(cmd, PluginAnnotation, descriptor.String())
	addCommand(group, cmd)
	log.Debugf("attached plugin command %q (%s)", descriptor.Name(), descriptor)
}

// addCommand adds cmd to the group with last-write-wins semantics: cobra
// would otherwise happily keep same-named siblings side by side, so an
// existing command of the same name gets dropped first.
func addCommand(group, cmd *cobra.Command) {
	for _, existing := range group.Commands() {
		if existing.Name() == cmd.Name() {
			group.RemoveCommand(existing)
		}
	}
	group.AddCommand(cmd)
}

// rename forces the descriptor's declared name onto the resolved command: the
// extension-point registration decides the name, not whatever the plugin put
// into its use line. The remainder of the use line (argument placeholders, et
// cetera) stays untouched.
func rename(cmd *cobra.Command, name string) {
	if current := cmd.Name(); current != name {
		cmd.Use = name + strings.TrimPrefix(cmd.Use, current)
	}
}

// annotate sets a single annotation, keeping any annotations the resolved
// command already brought along.
func annotate(cmd *cobra.Command, key, value string) {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[key] = value
}
