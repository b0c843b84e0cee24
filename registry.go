// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// The ambient extension-point registry: plugin packages register their
// command descriptors under namespace strings, typically from their package
// init functions, and hosts later enumerate a namespace when assembling their
// command group.

package subplug

import "sync"

var (
	registryMu sync.Mutex
	registry   = map[string][]Descriptor{}
)

// Register adds plugin descriptors to the named extension point. Plugin
// packages usually call it from init, so that a mere blank import of the
// plugin package suffices to make its commands discoverable.
func Register(namespace string, descriptors ...Descriptor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[namespace] = append(registry[namespace], descriptors...)
}

// RegisterCommand is shorthand for registering a single factory-backed entry
// point under the named extension point.
func RegisterCommand(namespace, name string, factory CommandFactory) {
	Register(namespace, NewEntryPoint(name, factory))
}

// EntryPoints returns a snapshot of the descriptors currently registered
// under the named extension point, in registration order. An unknown
// namespace simply yields no descriptors; it is not an error. Callers must
// not rely on the enumeration order, as it depends on package initialization
// order.
func EntryPoints(namespace string) []Descriptor {
	registryMu.Lock()
	defer registryMu.Unlock()
	descriptors := make([]Descriptor, len(registry[namespace]))
	copy(descriptors, registry[namespace])
	return descriptors
}
