// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"strings"

	"github.com/siemens/subplug"
	"github.com/siemens/subplug/cli"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

// Provides the “plugit version” command. The semantic version is the one
// defined for the subplug module, so there's no separate version number for
// the plugit CLI command. In addition, the version command lists the built-in
// command plugins.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version (with built-in command plugins).",
	Run: func(cmd *cobra.Command, args []string) {
		semver := subplug.SemVersion
		for _, pluginsemver := range plugger.Group[cli.SemVer]().Symbols() {
			semver = pluginsemver()
			break
		}
		fmt.Printf("%s version %s (built-in command plugins: %s)\n",
			cmd.Parent().Name(),
			semver,
			strings.Join(plugger.Group[cli.SetupCLI]().Plugins(), ", "))
	},
}

func init() {
	plugger.Group[cli.SetupCLI]().Register(
		VersionSetupCLI, plugger.WithPlugin("version"))
}

// VersionSetupCLI adds the “version” command.
func VersionSetupCLI(cmd *cobra.Command) {
	cmd.AddCommand(versionCmd)
}
