// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

package subplug

import "iter"

// Source produces a lazy sequence of plugin descriptors for the attacher to
// consume. Sequences are single-pass: the attacher pulls each source exactly
// once during startup.
type Source interface {
	Descriptors() iter.Seq[Descriptor]
}

// Namespace returns a Source enumerating the descriptors registered under the
// named extension point. The registry is consulted only when the sequence is
// actually pulled, so plugins registering between Namespace and [WithPlugins]
// are still picked up. An unknown or empty namespace yields an empty
// sequence.
func Namespace(namespace string) Source {
	return namespaceSource(namespace)
}

type namespaceSource string

func (ns namespaceSource) Descriptors() iter.Seq[Descriptor] {
	return func(yield func(Descriptor) bool) {
		for _, descriptor := range EntryPoints(string(ns)) {
			if !yield(descriptor) {
				return
			}
		}
	}
}

// Descriptors returns a pass-through Source yielding exactly the specified
// descriptors in the specified order. It lets hosts bypass the registry
// entirely, for instance when testing or when merging pre-filtered extension
// points.
func Descriptors(descriptors ...Descriptor) Source {
	return passthroughSource(descriptors)
}

type passthroughSource []Descriptor

func (ds passthroughSource) Descriptors() iter.Seq[Descriptor] {
	return func(yield func(Descriptor) bool) {
		for _, descriptor := range ds {
			if !yield(descriptor) {
				return
			}
		}
	}
}
