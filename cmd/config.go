/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// config.go implements the "datalint config" command for configuration management.
//
// Separated from root.go to isolate config-specific logic including the
// local vs global config precedence rules.
//
// Design: Config follows a cascade model similar to git: local config
// (.datalint/config.yaml) takes precedence over global
// (~/.datalint/config.yaml). The --local flag forces use of local config even
// if it doesn't exist yet, so a repository can be configured from scratch.

package cmd

import (
	"fmt"

	"github.com/jpl-au/datalint/internal/config"
	"github.com/jpl-au/datalint/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  datalint config                      # show config
  datalint config output.colour        # show output.colour value
  datalint config output.colour never  # set output.colour

Configuration locations:
  Global: ~/.datalint/config.yaml
  Local:  .datalint/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool("local", false, "Use local config (.datalint/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool("local")

	// Load config: local if exists, otherwise global
	// --local flag forces local even if it doesn't exist yet
	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		// Show all values in key order
		all := cfg.All()
		for _, k := range config.ValidKeys() {
			fmt.Fprintf(out, "%s: %s\n", k, all[k])
		}
		log.Event("config:list", "list").Write(nil)

	case 1:
		// Get single value
		v, err := cfg.Get(args[0])
		log.Event("config:get", "get").Path(args[0]).Write(err)
		if err != nil {
			return fmt.Errorf("config get %q: %w", args[0], err)
		}
		fmt.Fprintln(out, v)

	case 2:
		// Set value - write to same place we read from
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("config:set", "set").Path(args[0]).Write(err)
			return fmt.Errorf("config set %q: %w", args[0], err)
		}

		saveErr := cfg.Save()
		log.Event("config:set", "set").Path(args[0]).Detail("value", args[1]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return fmt.Errorf("config save: %w", saveErr)
		}
		fmt.Fprintf(out, "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}
