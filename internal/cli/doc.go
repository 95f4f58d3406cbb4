// Package cli wires the bootstrap into a Cobra root command. The root
// command takes every argument verbatim (flag parsing disabled, no Cobra
// subcommands) and hands them to the dispatch router, which owns all
// routing decisions.
package cli
