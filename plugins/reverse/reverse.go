// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Package reverse is an externally packaged plugit filter command: it is not
// referenced by the plugit base commands in any way, but instead registers
// itself under the plugit.plugins extension point. A blank import is all it
// takes to ship a plugit with the "reverse" command included.
package reverse

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/siemens/subplug"
	"github.com/siemens/subplug/cli"
	"github.com/siemens/subplug/cli/command"
	"github.com/spf13/cobra"
)

// CaseGroup is the name of the annotation value for the flags selecting the
// (optional, and mutually exclusive) case conversion applied after reversing.
const CaseGroup = "case"

func init() {
	subplug.RegisterCommand(cli.CommandsExtensionPoint, "reverse", New)
}

// New returns the "reverse" filter command, reversing its input line by line.
// The reversed lines optionally get their case converted; as attached plugin
// commands cannot call MarkFlagsMutuallyExclusive on the assembled command
// group themselves, the case flags are annotated into their exclusive group
// instead.
func New() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "reverse",
		Short: "Reverse each input line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			transform := func(s string) string { return s }
			if upper, _ := cmd.Flags().GetBool("upper"); upper {
				transform = strings.ToUpper
			}
			if lower, _ := cmd.Flags().GetBool("lower"); lower {
				transform = strings.ToLower
			}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				runes := []rune(scanner.Text())
				for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
					runes[i], runes[j] = runes[j], runes[i]
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), transform(string(runes))); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}
	f := cmd.Flags()
	f.Bool("upper", false, "additionally convert to upper case")
	f.Bool("lower", false, "additionally convert to lower case")
	command.Annotate(f, "upper", command.MutualFlagGroupAnnotation, CaseGroup)
	command.Annotate(f, "lower", command.MutualFlagGroupAnnotation, CaseGroup)
	return cmd, nil
}
