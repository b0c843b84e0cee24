// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Shared-object plugins: commands built separately from the host with “go
// build -buildmode=plugin” and loaded at startup via the runtime plugin
// mechanism.

package subplug

import (
	"fmt"
	"plugin"

	"github.com/spf13/cobra"
)

// DefaultCommandSymbol is the exported symbol looked up in a plugin shared
// object when no explicit symbol name has been given.
const DefaultCommandSymbol = "PluginCommand"

// SharedObject describes a plugin command packaged as a Go plugin shared
// object: a file path plus the exported symbol to look up. The symbol must be
// either a *cobra.Command variable or a [CommandFactory] (beside the plain
// underlying function type).
type SharedObject struct {
	name   string
	path   string
	symbol string
}

var _ Descriptor = (*SharedObject)(nil)

// NewSharedObject returns a descriptor loading the plugin command from the
// exported symbol of the specified shared object file. An empty symbol name
// defaults to [DefaultCommandSymbol].
func NewSharedObject(name, path, symbol string) *SharedObject {
	if symbol == "" {
		symbol = DefaultCommandSymbol
	}
	return &SharedObject{name: name, path: path, symbol: symbol}
}

// Name returns the declared plugin command name.
func (so *SharedObject) Name() string { return so.name }

// String renders the shared object in the “name = path:Symbol” form used in
// warnings and broken-command diagnostics.
func (so *SharedObject) String() string {
	return fmt.Sprintf("%s = %s:%s", so.name, so.path, so.symbol)
}

// Resolve opens the shared object and looks up its command symbol. All the
// ways this can fail (a missing or unreadable file, a plugin built against
// different package versions, a missing symbol or one of the wrong type)
// surface uniformly as load failures for the attacher to contain.
func (so *SharedObject) Resolve() (*cobra.Command, error) {
	p, err := plugin.Open(so.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", so, err)
	}
	sym, err := p.Lookup(so.symbol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", so, err)
	}
	switch sym := sym.(type) {
	case **cobra.Command:
		// An exported “var PluginCommand = &cobra.Command{…}”.
		if *sym == nil {
			return nil, fmt.Errorf("%s: symbol is a nil command", so)
		}
		return *sym, nil
	case *CommandFactory:
		return NewEntryPoint(so.name, *sym).Resolve()
	case func() (*cobra.Command, error):
		// An exported “func PluginCommand() (*cobra.Command, error)”.
		return NewEntryPoint(so.name, sym).Resolve()
	}
	return nil, fmt.Errorf("%s: symbol has type %T, expected *cobra.Command or subplug.CommandFactory",
		so, sym)
}
