/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// rules.go implements the "datalint rules" command for the rule reference.
//
// Design: Pages are embedded in the binary via the guide package, so the
// reference always matches the rules the binary enforces. Output gets
// glamour rendering when colour is enabled (--colour, then output.colour,
// then terminal detection); otherwise raw markdown.

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/datalint/guide"
	"github.com/jpl-au/datalint/internal/config"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules [topic]",
		Short: "Show the data validation rules",
		Long: `Outputs the rules datalint enforces.

  datalint rules              # overview
  datalint rules categories   # category record rules
  datalint rules links        # link record rules
  datalint rules config       # configuration keys`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return fmt.Errorf("topic %q not found. Available: %s", name, strings.Join(available, ", "))
			}

			// Best-effort: rules must still print with a broken config file.
			if cfg, err := config.Load(); err == nil {
				settings = cfg
			}
			if colourEnabled() {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(out, rendered)
					return nil
				}
			}

			fmt.Fprint(out, content)
			return nil
		},
	}
}
