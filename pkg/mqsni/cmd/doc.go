// Package cmd implements the cobra command tree for the mqsni CLI: channel
// name conversion on the root command plus the decode, version and
// completion subcommands.
package cmd
