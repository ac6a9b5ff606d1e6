/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from validate.go to isolate cobra setup from the validation run
// itself. Running "datalint" with no subcommand validates the data files.
//
// Design: PersistentPreRunE loads configuration lazily - only commands that
// read the data directory or colour setting need it. This lets config, rules
// and version work even when a config file is malformed. The noConfigCommands
// map controls which commands skip loading.

package cmd

import (
	"fmt"
	"os"

	"github.com/jpl-au/datalint/internal/config"
	"github.com/jpl-au/datalint/internal/format"
	"github.com/jpl-au/datalint/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "datalint",
	Short: "Validate the community data files",
	Long: `Checks data/categories.json and data/links.json for structural and
referential integrity before they are published.

Exits 0 when validation passes (warnings allowed) and 1 when any error is found.
Run 'datalint rules' for the full rule reference.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if colour != "" && !format.ValidColourMode(colour) {
			return fmt.Errorf("invalid colour mode: %s (valid: %v)", colour, format.ColourModes)
		}

		if noConfigCommands[topLevelCmdName(cmd)] {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		settings = cfg
		return nil
	},
}

// noConfigCommands lists commands that run without loading configuration.
var noConfigCommands = map[string]bool{
	"config":     true,
	"rules":      true,
	"version":    true,
	"help":       true,
	"completion": true,
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "datalint watch", returns "watch". For "datalint" itself, returns "datalint".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until we find a command whose parent has no parent (the root)
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging unless disabled in config, executes the command, and
// exits with code 1 on any error, including a failed validation.
func Execute() {
	if logEnabled() {
		// Initialise audit logger (warn if it fails, but continue)
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
	}

	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}

// logEnabled reports whether the audit log should be opened. A config file
// that fails to load leaves logging on; the command reports the config error.
func logEnabled() bool {
	cfg, err := config.Load()
	return err != nil || cfg.LogEnabled()
}

func init() {
	rootCmd.AddCommand(newWatchCmd(), newRulesCmd(), newConfigCmd(), newVersionCmd())
}
