// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Provides the "plugit plugins" command for listing the externally packaged
// plugin commands attached to this plugit instance, including the broken
// ones.

package command

import (
	"os"

	"github.com/siemens/subplug"
	"github.com/siemens/subplug/cli"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
	"github.com/thediveo/klo"
)

// Builtin custom-columns templates
const (
	// PluginListTemplate defines the custom columns when listing attached
	// plugin commands.
	PluginListTemplate = "PLUGIN:{.Name},STATUS:{.Status}"
	// PluginWideListTemplate is like PluginListTemplate, but additionally
	// tacks on a column showing where each plugin command was loaded from.
	PluginWideListTemplate = "PLUGIN:{.Name},STATUS:{.Status},SOURCE:{.Source}"
)

// pluginDetails describes a single attached plugin command for output
// purposes.
type pluginDetails struct {
	Name   string // name the plugin command got attached under
	Status string // either "ok" or "broken"
	Source string // display form of the plugin's descriptor
}

// pluginsCmd defines the "plugit plugins" command.
var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List attached plugin commands",
	RunE:  listplugins,
}

func init() {
	plugger.Group[cli.SetupCLI]().Register(PluginsSetupCLI, plugger.WithPlugin("plugins"))
}

// PluginsSetupCLI adds the “plugins” command.
func PluginsSetupCLI(cmd *cobra.Command) {
	cmd.AddCommand(pluginsCmd)
	pluginsCmd.Flags().StringP("output", "o", "",
		"Output format. One of: json|yaml|wide|custom-columns=...|custom-columns-file=...|jsonpath=...|jsonpath-file=...")
	pluginsCmd.Flags().Bool("no-headers", false, "When using the default or custom-column output format, don't print headers (default print headers).")
	pluginsCmd.Flags().String("sort-by", "{.Name}",
		"If non-empty, sort custom-columns using this field specification. The field specification is expressed as a JSONPath expression (e.g. '{.Name}').")
}

// listplugins gathers the plugin commands attached to the root command for
// output using a template. Built-in commands don't show up here, as they
// aren't attached via a plugin descriptor.
func listplugins(cmd *cobra.Command, args []string) error {
	// Get the output CLI flag and prepare a suitable object printer.
	prn, err := getPrinter(cmd)
	if err != nil {
		return err
	}
	// ...throwing in sorting, if not explicitly forbidden. It depends on the
	// object printer if it will honor the sorted data or will just impose its
	// own order anyway.
	if sortby, err := cmd.LocalFlags().GetString("sort-by"); err == nil && sortby != "" {
		var err error
		prn, err = klo.NewSortingPrinter(sortby, prn)
		if err != nil {
			return err
		}
	}
	plugins := []*pluginDetails{}
	for _, attached := range cmd.Root().Commands() {
		source, ok := attached.Annotations[subplug.PluginAnnotation]
		if !ok {
			continue
		}
		status := "ok"
		if subplug.Broken(attached) {
			status = "broken"
		}
		log.Debugf("found plugin command %q (%s) from %q", attached.Name(), status, source)
		plugins = append(plugins, &pluginDetails{
			Name:   attached.Name(),
			Status: status,
			Source: source,
		})
	}
	prn.Fprint(os.Stdout, plugins)
	return nil
}

// getPrinter returns a value printer configured according to the output
// format chosen by the user, and some more optional output configuration
// flags.
func getPrinter(cmd *cobra.Command) (prn klo.ValuePrinter, err error) {
	outfmt, err := cmd.LocalFlags().GetString("output")
	if err != nil {
		return
	}
	// Let the kubectl-like output package handle the details and give us just
	// the printer suitable for dumping the plugin list onto our users.
	prn, err = klo.PrinterFromFlag(outfmt, &klo.Specs{
		DefaultColumnSpec: PluginListTemplate,
		WideColumnSpec:    PluginWideListTemplate,
	})
	if err != nil {
		return
	}
	if ccprn, ok := prn.(*klo.CustomColumnsPrinter); ok {
		ccprn.Padding = 3
		if noheaders, err := cmd.LocalFlags().GetBool("no-headers"); err == nil {
			ccprn.HideHeaders = noheaders
		}
	}
	return
}
