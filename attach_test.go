// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

package subplug

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// newGroup returns a fresh host command group for attaching plugins to.
func newGroup() *cobra.Command {
	return &cobra.Command{
		Use:           "host",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// passing returns a factory producing a command that prints "passed" when
// run.
func passing(name string) CommandFactory {
	return func() (*cobra.Command, error) {
		return &cobra.Command{
			Use:  name,
			Args: cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), "passed")
				return nil
			},
		}, nil
	}
}

// failing returns a factory that always fails with the specified error.
func failing(err error) CommandFactory {
	return func() (*cobra.Command, error) { return nil, err }
}

// execute runs the group with the specified arguments, returning the captured
// stdout and stderr texts.
func execute(group *cobra.Command, args ...string) (stdout, stderr string, err error) {
	var out, errout bytes.Buffer
	group.SetOut(&out)
	group.SetErr(&errout)
	group.SetArgs(args)
	err = group.Execute()
	return out.String(), errout.String(), err
}

// child returns the group's direct sub-command of the specified name, if any.
func child(group *cobra.Command, name string) *cobra.Command {
	for _, cmd := range group.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	return nil
}

// names returns the names of all the group's direct sub-commands.
func names(group *cobra.Command) []string {
	var ns []string
	for _, cmd := range group.Commands() {
		ns = append(ns, cmd.Name())
	}
	return ns
}

var _ = Describe("attaching plugin commands", func() {

	It("attaches every resolvable plugin under its declared name", func() {
		group := WithPlugins(newGroup(), Descriptors(
			NewEntryPoint("cmd1", passing("cmd1")),
			NewEntryPoint("cmd2", passing("cmd2")),
		))
		Expect(names(group)).Should(ConsistOf("cmd1", "cmd2"))
		for _, name := range []string{"cmd1", "cmd2"} {
			out, _, err := execute(group, name, "something")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(Equal("passed\n"))
		}
	})

	It("forces the declared name onto the resolved command", func() {
		group := WithPlugins(newGroup(), Descriptors(
			NewEntryPoint("mine", func() (*cobra.Command, error) {
				return &cobra.Command{Use: "other [FILE]"}, nil
			}),
		))
		cmd := child(group, "mine")
		Expect(cmd).ShouldNot(BeNil())
		Expect(cmd.Use).Should(Equal("mine [FILE]"))
	})

	It("nests a resolved sub-group as-is", func() {
		sub := &cobra.Command{Use: "sub"}
		sub.AddCommand(&cobra.Command{
			Use: "leaf",
			RunE: func(cmd *cobra.Command, _ []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), "passed")
				return nil
			},
		})
		group := WithPlugins(newGroup(), Descriptors(
			NewEntryPoint("sub", func() (*cobra.Command, error) { return sub, nil }),
		))
		out, _, err := execute(group, "sub", "leaf")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(out).Should(Equal("passed\n"))
	})

	It("panics when applied before the group has been constructed", func() {
		Expect(func() { WithPlugins(nil) }).Should(PanicWith(
			ContainSubstring("nil command group")))
	})

	Context("with unloadable plugins", func() {

		It("still attaches all plugins, the broken ones as stand-ins", func() {
			group := newGroup()
			Expect(func() {
				WithPlugins(group, Descriptors(
					NewEntryPoint("good", passing("good")),
					NewEntryPoint("bad", failing(errors.New("no such module"))),
				))
			}).ShouldNot(Panic())
			Expect(names(group)).Should(ConsistOf("good", "bad"))
			Expect(Broken(child(group, "good"))).Should(BeFalse())
			Expect(Broken(child(group, "bad"))).Should(BeTrue())
		})

		It("shows the warning template in the group help listing", func() {
			group := WithPlugins(newGroup(), Descriptors(
				NewEntryPoint("good", passing("good")),
				NewEntryPoint("bad", failing(errors.New("no such module"))),
			))
			out, _, err := execute(group, "--help")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(ContainSubstring(
				"Warning: could not load plugin. See 'host bad --help'."))
			Expect(out).ShouldNot(ContainSubstring(
				"Warning: could not load plugin. See 'host good --help'."))
		})

		It("fails with the captured failure when the stand-in gets invoked", func() {
			group := WithPlugins(newGroup(), Descriptors(
				NewEntryPoint("bad", failing(errors.New("no such module"))),
			))
			_, stderr, err := execute(group, "bad")
			Expect(err).Should(HaveOccurred())
			Expect(stderr).Should(ContainSubstring("no such module"))
		})

		It("fails even when asked for its own help", func() {
			group := WithPlugins(newGroup(), Descriptors(
				NewEntryPoint("bad", failing(errors.New("no such module"))),
			))
			_, stderr, err := execute(group, "bad", "--help")
			Expect(err).Should(HaveOccurred())
			Expect(stderr).Should(ContainSubstring("no such module"))
		})

		It("swallows arbitrary arguments instead of rejecting them", func() {
			group := WithPlugins(newGroup(), Descriptors(
				NewEntryPoint("bad", failing(errors.New("no such module"))),
			))
			_, stderr, err := execute(group, "bad", "-a", "b")
			Expect(err).Should(HaveOccurred())
			Expect(stderr).Should(ContainSubstring("no such module"))
		})

		It("names the plugin exactly once in the failure text", func() {
			descriptor := NewEntryPoint("bad", failing(errors.New("no such module")))
			group := WithPlugins(newGroup(), Descriptors(descriptor))
			_, stderr, err := execute(group, "bad")
			Expect(err).Should(HaveOccurred())
			Expect(strings.Count(stderr, descriptor.String())).Should(Equal(1))
		})

		It("captures the stack of a factory panicking during load", func() {
			group := WithPlugins(newGroup(), Descriptors(
				NewEntryPoint("bad", func() (*cobra.Command, error) {
					panic("import gone wrong")
				}),
			))
			_, stderr, err := execute(group, "bad")
			Expect(err).Should(HaveOccurred())
			Expect(stderr).Should(ContainSubstring("import gone wrong"))
			Expect(stderr).Should(ContainSubstring("goroutine"))
		})

		It("lets the last of two same-named descriptors win", func() {
			group := WithPlugins(newGroup(), Descriptors(
				NewEntryPoint("x", passing("x")),
				NewEntryPoint("x", failing(errors.New("no such module"))),
			))
			Expect(names(group)).Should(ConsistOf("x"))
			Expect(Broken(child(group, "x"))).Should(BeTrue())
		})

	})

	It("attaches the same descriptor set independently to separate groups", func() {
		descriptors := []Descriptor{
			NewEntryPoint("good", passing("good")),
			NewEntryPoint("bad", failing(errors.New("no such module"))),
		}
		first := WithPlugins(newGroup(), Descriptors(descriptors...))
		second := WithPlugins(newGroup(), Descriptors(descriptors...))
		Expect(names(first)).Should(ConsistOf(names(second)))
		for _, name := range names(first) {
			Expect(Broken(child(first, name))).Should(
				Equal(Broken(child(second, name))), "plugin %q", name)
		}
	})

})
