// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Defines the plugin descriptor contract the attacher works against, together
// with the factory-backed descriptor variant used by compile-time plugins.

package subplug

import (
	"fmt"
	"reflect"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// CommandFactory produces a plugin's sub-command. Factories are invoked
// exactly once per attach attempt, during host CLI startup; they may fail by
// returning an error or by panicking, and either way the failure stays
// contained to the one plugin.
type CommandFactory func() (*cobra.Command, error)

// Descriptor identifies one candidate plugin command before any load attempt
// has been made. The attacher depends only on this interface, so hosts can
// synthesize their own descriptor sequences, for instance to pre-filter an
// extension point or to merge several of them.
type Descriptor interface {
	// Name returns the name under which the plugin's command gets attached to
	// the command group.
	Name() string
	// Resolve materializes the plugin's command, or else returns the reason
	// why it cannot.
	Resolve() (*cobra.Command, error)
	// String returns a display form identifying the plugin in diagnostics,
	// such as “foo = github.com/acme/fooplug.New”.
	String() string
}

// EntryPoint is a Descriptor backed by a command factory, as registered by
// compile-time plugins with [Register].
type EntryPoint struct {
	name    string
	factory CommandFactory
}

var _ Descriptor = (*EntryPoint)(nil)

// NewEntryPoint returns a descriptor attaching the command produced by the
// specified factory under the specified name.
func NewEntryPoint(name string, factory CommandFactory) *EntryPoint {
	return &EntryPoint{name: name, factory: factory}
}

// Name returns the declared plugin command name.
func (ep *EntryPoint) Name() string { return ep.name }

// Resolve invokes the entry point's factory. A panicking factory (the moral
// equivalent of an import-time exception) is recovered and converted into an
// ordinary load failure carrying the goroutine stack at the point of panic.
func (ep *EntryPoint) Resolve() (cmd *cobra.Command, err error) {
	defer func() {
		if r := recover(); r != nil {
			cmd = nil
			err = &loadError{
				cause: fmt.Errorf("%s: panic while loading: %v", ep, r),
				stack: debug.Stack(),
			}
		}
	}()
	if ep.factory == nil {
		return nil, fmt.Errorf("%s: no command factory", ep)
	}
	cmd, err = ep.factory()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ep, err)
	}
	if cmd == nil {
		return nil, fmt.Errorf("%s: factory returned no command", ep)
	}
	return cmd, nil
}

// String renders the entry point in the “name = package.Factory” form used in
// warnings and broken-command diagnostics.
func (ep *EntryPoint) String() string {
	factory := "(nil)"
	if ep.factory != nil {
		if fn := runtime.FuncForPC(reflect.ValueOf(ep.factory).Pointer()); fn != nil {
			factory = fn.Name()
		} else {
			factory = "(unknown factory)"
		}
	}
	return ep.name + " = " + factory
}
