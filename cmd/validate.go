/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

package cmd

import (
	"errors"

	"github.com/jpl-au/datalint/internal/data"
	"github.com/jpl-au/datalint/internal/format"
	"github.com/jpl-au/datalint/internal/log"
	"github.com/jpl-au/datalint/internal/validate"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned when the data files contain errors.
// The findings have already been printed, so cobra does not print it again.
var ErrValidationFailed = errors.New("validation failed")

func runValidate(c *cobra.Command, _ []string) error {
	r := check("validate:run", dataDir())
	if r.Failed() {
		c.SilenceErrors = true
		c.SilenceUsage = true
		return ErrValidationFailed
	}
	return nil
}

// check runs one validation pass over dir, prints the report and records
// the run in the audit log.
func check(source, dir string) *validate.Report {
	colour := colourEnabled()
	format.Banner(out, dir, colour)

	r := validate.Run(data.ForDir(dir))
	format.Report(out, r, colour)

	log.SetProject(dir)
	log.Event(source, "validate").
		Path(dir).
		Detail("categories", r.Categories).
		Detail("links", r.Links).
		Detail("errors", len(r.Errors())).
		Detail("warnings", len(r.Warnings())).
		Write(r.Err())
	return r
}
