// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Shared plumbing for the built-in text filter commands: they all read from a
// file argument or stdin, transform line by line, and write to stdout.

package command

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// filter applies the specified per-line transformation to the command's input
// and writes the result to the command's output. With no file argument (or
// "-") the input is stdin.
func filter(cmd *cobra.Command, args []string, transform func(string) string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("cannot read input: %w", err)
		}
		defer f.Close()
		in = f
	}
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, transform(scanner.Text())); err != nil {
			return err
		}
	}
	return scanner.Err()
}
