package validate

import (
	"fmt"
	"path/filepath"
)

// Severity classifies a finding.
type Severity string

const (
	// SeverityError fails the run.
	SeverityError Severity = "error"
	// SeverityWarning is advisory only.
	SeverityWarning Severity = "warning"
)

// NoRecord is the Finding.Index of file-level findings.
const NoRecord = -1

// Finding is one problem discovered during validation.
type Finding struct {
	Kind     error    // one of the sentinel errors in errors.go
	Severity Severity // error or warning
	File     string   // base name of the data file
	Index    int      // record index, or NoRecord
	Field    string   // offending field, empty for record or file findings
	Message  string   // human-readable description
}

func (f Finding) Error() string { return f.Message }

func (f Finding) Unwrap() error { return f.Kind }

// Fatal reports whether the finding stopped checks for its file.
func (f Finding) Fatal() bool { return fatal(f.Kind) }

// Report accumulates findings for a single run, in the order they were
// recorded. The zero value is ready to use.
type Report struct {
	findings   []Finding
	aborted    bool
	Categories int // category records checked
	Links      int // link records checked
}

// loc identifies where a finding applies.
type loc struct {
	file  string
	index int
	field string
}

func fileLoc(path string) loc {
	return loc{file: filepath.Base(path), index: NoRecord}
}

func (l loc) at(field string) loc {
	l.field = field
	return l
}

func (r *Report) add(sev Severity, kind error, l loc, format string, args ...any) {
	r.findings = append(r.findings, Finding{
		Kind:     kind,
		Severity: sev,
		File:     l.file,
		Index:    l.index,
		Field:    l.field,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Report) errorf(kind error, l loc, format string, args ...any) {
	r.add(SeverityError, kind, l, format, args...)
}

func (r *Report) warnf(l loc, format string, args ...any) {
	r.add(SeverityWarning, ErrLength, l, format, args...)
}

// Findings returns every finding in recording order.
func (r *Report) Findings() []Finding {
	return append([]Finding(nil), r.findings...)
}

// Errors returns error-severity findings in recording order.
func (r *Report) Errors() []Finding {
	return r.filter(SeverityError)
}

// Warnings returns warning-severity findings in recording order.
func (r *Report) Warnings() []Finding {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(sev Severity) []Finding {
	var out []Finding
	for _, f := range r.findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// Failed reports whether any error was recorded. Warnings never fail a run.
func (r *Report) Failed() bool {
	for _, f := range r.findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Aborted reports whether loading failed and no records were checked.
func (r *Report) Aborted() bool { return r.aborted }

// Err returns nil for a passing run, otherwise an error wrapping the first
// error finding.
func (r *Report) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d error(s), first: %w", len(errs), errs[0])
}
