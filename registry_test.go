// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

package subplug

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("the extension-point registry", func() {

	It("registers and enumerates descriptors per namespace", func() {
		Register("subplug.test/enumerate",
			NewEntryPoint("cmd1", passing("cmd1")),
			NewEntryPoint("cmd2", passing("cmd2")))
		eps := EntryPoints("subplug.test/enumerate")
		Expect(eps).Should(HaveLen(2))
		epnames := []string{eps[0].Name(), eps[1].Name()}
		Expect(epnames).Should(ConsistOf("cmd1", "cmd2"))
	})

	It("yields nothing for unknown namespaces, not an error", func() {
		Expect(EntryPoints("subplug.test/never-registered")).Should(BeEmpty())

		group := newGroup()
		before := len(group.Commands())
		WithPlugins(group, Namespace("subplug.test/never-registered"))
		Expect(group.Commands()).Should(HaveLen(before))
	})

	It("consults the registry only when the sequence gets pulled", func() {
		source := Namespace("subplug.test/latecomer")
		RegisterCommand("subplug.test/latecomer", "late", passing("late"))
		group := WithPlugins(newGroup(), source)
		Expect(child(group, "late")).ShouldNot(BeNil())
	})

	It("renders entry points with their factory reference", func() {
		ep := NewEntryPoint("frob", passing("frob"))
		Expect(ep.String()).Should(HavePrefix("frob = "))
		Expect(ep.String()).ShouldNot(HaveSuffix("= "))
	})

})
