/*
Package cli defines the compile-time plugin extension points of the plugit
command. This allows building extended text-mangling CLI clients that leverage
the existing base implementation.

# Extension Points

The following plugin “group” extension points are available (and also invoked
in this general order):

  - [SetupCLI]: for adding (sub) commands and CLI args to the (in [cobra]
    parlance) “root” command.
  - [CommandExamples]: for adding (more) examples to particular commands.
    These plugin functions are invoked after all [SetupCLI] plugins have been
    called, so that all commands have been registered by the time the examples
    should be extended with even more examples.
  - [BeforeCommand]: for checking and doing things just before the command
    runs.

These extension points are compile-time only and use [go-plugger] plugin
groups: plugin functions register in their group and the root command setup
then iterates over each group's symbols.

Externally packaged plugin commands use a different, run-time mechanism
instead: they register under the [CommandsExtensionPoint] namespace (or get
declared in a plugin manifest) and the root command setup attaches them via
the subplug attacher, with broken plugins contained as diagnostic stand-in
commands.

[cobra]: https://github.com/spf13/cobra
[go-plugger]: https://github.com/thediveo/go-plugger
*/
package cli
