/*
Package subplug attaches externally packaged sub-commands to a [cobra] command
group at startup, without the host CLI knowing about them in advance. External
packages register command factories under a named extension point (such as
“plugit.plugins”), or a host supplies its own descriptor sequence, and
[WithPlugins] then wires every resolvable plugin into the group as an ordinary
sub-command.

The central contract is failure containment: a plugin that cannot be loaded –
a missing shared object, a missing symbol, a factory returning an error or
even panicking – must never keep the host CLI from starting or from running
its other commands. Instead of propagating the failure, subplug attaches a
“broken” stand-in command under the plugin's declared name. The stand-in shows
a warning in the group's help listing, and invoking it (with any arguments,
“--help” included) prints the originally captured failure and exits non-zero.
A user thus always learns what went wrong, but only when actually touching the
broken command.

Plugins come in two packagings: compile-time plugins registering a
[CommandFactory] with [Register] in their package init, and shared-object
plugins built with “go build -buildmode=plugin” and declared in a YAML
manifest (see [LoadManifest]) or directly as [SharedObject] descriptors.

[cobra]: https://github.com/spf13/cobra
*/
package subplug
