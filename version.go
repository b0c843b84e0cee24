// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

package subplug

// SemVersion is the semantic version of the subplug module.
const SemVersion = "0.9.1"
