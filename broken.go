// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// The broken-command stand-in: command-shaped, but all it ever does is report
// the load failure captured at attach time.

package subplug

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// loadError wraps a plugin load failure, optionally together with the
// goroutine stack captured when the failure was a panic. Ordinary error
// returns from factories or the shared-object loader carry no stack; Go has
// no traceback to offer for those.
type loadError struct {
	cause error
	stack []byte
}

func (e *loadError) Error() string { return e.cause.Error() }

func (e *loadError) Unwrap() error { return e.cause }

// brokenCommand builds the stand-in command attached in place of a plugin
// that failed to load. The stand-in keeps the plugin's declared name and
// satisfies the usual command contract, but its short help is a fixed warning
// and invoking it (arbitrary arguments and “--help” included) prints the
// captured failure and fails. Both warning and failure text are computed here
// once; the stand-in's state never changes afterwards.
func brokenCommand(group *cobra.Command, descriptor Descriptor, err error) *cobra.Command {
	name := descriptor.Name()
	trace := renderTrace(err)
	return &cobra.Command{
		Use: name,
		Short: fmt.Sprintf("Warning: could not load plugin. See '%s %s --help'.",
			group.CommandPath(), name),
		// Swallow all arguments unparsed, “--help” included: the diagnosis
		// must always win over generic argument handling.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		// We print the captured failure ourselves, so keep cobra from adding
		// usage and a second error rendering on top.
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations: map[string]string{
			PluginAnnotation: descriptor.String(),
			BrokenAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.ErrOrStderr(), trace)
			return err
		},
	}
}

// Broken reports whether the specified command is a broken-command stand-in
// attached in place of an unloadable plugin.
func Broken(cmd *cobra.Command) bool {
	return cmd.Annotations[BrokenAnnotation] == "true"
}

// renderTrace produces the full failure text a broken command emits when
// invoked: the failure cause, plus the captured goroutine stack if the
// failure was a panic during resolution. The cause already identifies the
// plugin (resolve errors self-describe), so no descriptor prefix gets added
// on top.
func renderTrace(err error) string {
	trace := fmt.Sprintf("could not load plugin: %s", err)
	var lerr *loadError
	if errors.As(err, &lerr) && len(lerr.stack) > 0 {
		trace += "\n\n" + strings.TrimSuffix(string(lerr.stack), "\n")
	}
	return trace
}
