// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

// CommandsExtensionPoint names the extension point under which externally
// packaged plugin commands register for attachment to the plugit root
// command.
const CommandsExtensionPoint = "plugit.plugins"

// SetupCLI defines an exposed plugin symbol type for adding “things” to a
// cobra root command (the plugit root command in particular). This is how the
// built-in plugit commands hook themselves up.
type SetupCLI func(*cobra.Command)

// CommandExamples defines an exposed symbol with CLI examples, indexed by a
// particular (sub) command.
type CommandExamples func() map[string]string

// BeforeCommand defines an exposed plugin symbol type for running checks after
// the command line args have been processed and before running the (chosen)
// command.
type BeforeCommand func(*cobra.Command) error

// SemVer defines an exposed plugin symbol type for returning (overriding) the
// CLI binary's semantic version. The first plugin will win.
type SemVer func() string
