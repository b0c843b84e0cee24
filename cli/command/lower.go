// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Implements the built-in "plugit lower" command.

package command

import (
	"strings"

	"github.com/siemens/subplug/cli"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

// lowerCmd defines the "plugit lower" command.
var lowerCmd = &cobra.Command{
	Use:   "lower [FILE]",
	Short: "Convert to lower case",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return filter(cmd, args, strings.ToLower)
	},
}

func init() {
	plugger.Group[cli.SetupCLI]().Register(LowerSetupCLI, plugger.WithPlugin("lower"))
}

// LowerSetupCLI adds the “lower” command.
func LowerSetupCLI(cmd *cobra.Command) {
	cmd.AddCommand(lowerCmd)
}
