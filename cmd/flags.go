/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and resolves the values they override.
//
// Separated from root.go to isolate flag definitions from command logic.
//
// Design: Flags are defined as package-level variables and bound to the
// root command. Values that can also come from configuration are resolved
// here (flag > config > default) so every command applies the same order.

package cmd

import (
	"io"
	"os"

	"github.com/jpl-au/datalint/internal/config"
	"github.com/jpl-au/datalint/internal/data"
	"github.com/jpl-au/datalint/internal/format"
	"github.com/spf13/cobra"
)

var (
	dir    string
	colour string
)

// settings holds the configuration loaded by PersistentPreRunE.
// Nil for commands that skip loading.
var settings *config.Config

// out is the output writer for commands. Defaults to os.Stdout.
var out io.Writer = os.Stdout

// dataDir returns the data directory to validate.
// Priority: --dir flag > data.dir config > discovery.
func dataDir() string {
	if dir != "" {
		return dir
	}
	if settings != nil {
		if d := settings.DataDir(); d != "" {
			return d
		}
	}
	return data.Discover()
}

// colourMode returns the colour mode.
// Priority: --colour flag > output.colour config > auto.
func colourMode() string {
	if colour != "" {
		return colour
	}
	if settings != nil {
		return settings.ColourMode()
	}
	return format.ColourAuto
}

// colourEnabled resolves the colour mode against the output writer.
func colourEnabled() bool {
	return format.Colour(colourMode(), out)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dir, "dir", "", "Data directory (skip discovery, use explicit path)")
	rootCmd.PersistentFlags().StringVar(&colour, "colour", "", "Colour output: auto, always, never")

	_ = rootCmd.RegisterFlagCompletionFunc("colour", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return format.ColourModes, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagDirname("dir")
}
