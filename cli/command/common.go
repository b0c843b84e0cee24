// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Implements the plugit "root" command with its global CLI flags and the
// plugin attach phase. Additionally runs some checks on global CLI flags,
// where necessary, so individual commands do not need to check them
// themselves.

package command

import (
	"os"

	"github.com/siemens/subplug"
	"github.com/siemens/subplug/cli"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/go-plugger/v3"
	"golang.org/x/exp/slices"
)

// Flag annotation for grouping mutually exclusive flags. Due to the
// open-ended plugin architecture of plugit we cannot directly use cobra's
// MarkFlagsMutuallyExclusive in plugins, but instead plugins need to annotate
// their flags and we then gather the groups with their flag members in order
// to issue MarkFlagsMutuallyExclusive as necessary.
const MutualFlagGroupAnnotation = "mutually-exclusive-group"

// ManifestEnvVar names the environment variable pointing to an optional YAML
// manifest declaring externally built shared-object plugin commands. The
// manifest has to be known before command-line parsing starts, so this cannot
// be a CLI flag.
const ManifestEnvVar = "PLUGIT_PLUGIN_MANIFEST"

// rootCmd represents the cobra "root" command and thus the plugit CLI itself.
var rootCmd = &cobra.Command{
	Use:   "plugit",
	Short: "Format and print file contents",
	Long: `plugit is a CLI tool for formatting and printing file contents (or stdin).
Beyond its built-in text filters it discovers and attaches externally packaged
filter commands at startup, so installed plugin packages simply appear as
additional plugit commands.`,
	// See: https://github.com/spf13/cobra/issues/340
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Run the registered before-the-command plugins.
		for _, beforeCmd := range plugger.Group[cli.BeforeCommand]().Symbols() {
			if err := beforeCmd(cmd); err != nil {
				return err
			}
		}
		return nil
	},
}

// SetupCLI registers the global ("persistent") CLI flags as well as the
// (sub)commands, and then attaches the externally packaged plugin commands.
// The built-in commands are registered via the compile-time plugin mechanism;
// the external commands come from the plugit.plugins extension point and an
// optional shared-object plugin manifest.
func SetupCLI() *cobra.Command {
	// Call registered plugins in order to add further CLI args as well as
	// commands to the root command (or below).
	for _, setupCLI := range plugger.Group[cli.SetupCLI]().Symbols() {
		setupCLI(rootCmd)
	}
	// Fill in/expand command example sections, where additional command
	// examples are available.
	for _, cmd := range rootCmd.Commands() {
		examples := cli.Examples(cmd.Name())
		if examples == "" {
			continue
		}
		cmd.Example = examples
	}
	// Only now that the root command group is fully constructed, attach the
	// externally packaged plugin commands; broken ones become diagnostic
	// stand-ins, they never keep plugit from starting.
	sources := []subplug.Source{subplug.Namespace(cli.CommandsExtensionPoint)}
	if manifest := os.Getenv(ManifestEnvVar); manifest != "" {
		source, err := subplug.LoadManifest(manifest)
		if err != nil {
			log.Warnf("ignoring plugin manifest: %s", err)
		} else {
			sources = append(sources, source)
		}
	}
	subplug.WithPlugins(rootCmd, sources...)
	// Set groups of mutually exclusive flags as annotated; this must come
	// after the attach phase, so that annotations on externally packaged
	// plugin commands are honored too.
	mutuallyExclusives(rootCmd)
	return rootCmd
}

// Annotate annotates the flag identified by name with the key=ann.
func Annotate(fs *pflag.FlagSet, flagname, key, ann string) {
	fs.SetAnnotation(flagname, key, []string{ann})
}

// exclusivesMap maps an "exclusive" group (name) to its mutually exclusive
// flags (names).
type exclusivesMap map[string][]string

// mutuallyExclusives starts with the specified command and collects mutually
// exclusive flags as identified by their annotations. It then configures them
// into their groups. This process then recursively repeats with each child
// command.
func mutuallyExclusives(cmd *cobra.Command) {
	exclusives := exclusivesMap{}
	cmd.MarkFlagsMutuallyExclusive() // hack: trigger merging if not already happened
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		group := flag.Annotations[MutualFlagGroupAnnotation]
		if len(group) != 1 {
			return
		}
		name := flag.Name
		members := exclusives[group[0]]
		if slices.Contains(members, name) {
			return
		}
		exclusives[group[0]] = append(exclusives[group[0]], name)
	})
	for _, members := range exclusives {
		cmd.MarkFlagsMutuallyExclusive(members...)
	}
	for _, subcmd := range cmd.Commands() {
		mutuallyExclusives(subcmd)
	}
}
