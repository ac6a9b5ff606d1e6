package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jpl-au/datalint/internal/validate"
)

// Banner prints the line announcing which data directory is being checked.
func Banner(w io.Writer, dir string, colour bool) {
	s := newStyles(w, colour)
	fmt.Fprintln(w, s.info.Render(fmt.Sprintf("Validating community data in %s...", dir)))
}

// Report prints the outcome of a validation run.
//
// Output order:
//   - no findings: a success line and the record counts
//   - errors: every error in recording order, then every warning, then a
//     failure line
//   - warnings only: every warning, the record counts, and a pass line
func Report(w io.Writer, r *validate.Report, colour bool) {
	s := newStyles(w, colour)
	errs, warns := r.Errors(), r.Warnings()

	fmt.Fprintln(w)
	if len(errs) == 0 && len(warns) == 0 {
		line(w, s.ok, "SUCCESS", "All validation checks passed!")
		counts(w, s, r)
		return
	}

	if len(errs) > 0 {
		fmt.Fprintln(w, s.err.Render(fmt.Sprintf("Found %d error(s):", len(errs))))
		fmt.Fprintln(w)
		for _, f := range errs {
			line(w, s.err, "ERROR", f.Message)
		}
	}

	if len(warns) > 0 {
		if len(errs) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, s.warn.Render(fmt.Sprintf("Found %d warning(s):", len(warns))))
		fmt.Fprintln(w)
		for _, f := range warns {
			line(w, s.warn, "WARNING", f.Message)
		}
	}

	fmt.Fprintln(w)
	if len(errs) > 0 {
		fmt.Fprintln(w, s.err.Render("✗ Validation failed"))
		return
	}
	counts(w, s, r)
	fmt.Fprintln(w, s.ok.Render("✓ Validation passed with warnings"))
}

// line prints one status line: a coloured label followed by the message.
func line(w io.Writer, st lipgloss.Style, name, msg string) {
	fmt.Fprintf(w, "%s: %s\n", st.Render(name), msg)
}

func counts(w io.Writer, s styles, r *validate.Report) {
	fmt.Fprintln(w, s.ok.Render(fmt.Sprintf("✓ %d categories validated", r.Categories)))
	fmt.Fprintln(w, s.ok.Render(fmt.Sprintf("✓ %d links validated", r.Links)))
}
