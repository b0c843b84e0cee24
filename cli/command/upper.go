// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Implements the built-in "plugit upper" command.

package command

import (
	"strings"

	"github.com/siemens/subplug/cli"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

// upperCmd defines the "plugit upper" command.
var upperCmd = &cobra.Command{
	Use:   "upper [FILE]",
	Short: "Convert to upper case",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return filter(cmd, args, strings.ToUpper)
	},
}

func init() {
	plugger.Group[cli.SetupCLI]().Register(UpperSetupCLI, plugger.WithPlugin("upper"))
	plugger.Group[cli.CommandExamples]().Register(
		func() map[string]string {
			return map[string]string{
				"upper": `# Shout out a README.
cat README.md | plugit upper`,
			}
		},
		plugger.WithPlugin("upper"))
}

// UpperSetupCLI adds the “upper” command.
func UpperSetupCLI(cmd *cobra.Command) {
	cmd.AddCommand(upperCmd)
}
