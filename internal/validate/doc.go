// Package validate implements the datalint rule set for categories.json
// and links.json.
//
// Validation is a single sequential pass: categories first, because link
// records refer to category slugs, then links. Every check that fails is
// recorded as a Finding on a Report that the caller threads through the
// pass; nothing is returned early unless the file as a whole is unusable.
//
// # Severity
//
// Errors fail the run. Warnings (length limits) are advisory and never
// affect the outcome. A small set of errors is fatal for the file they
// concern: a missing file, malformed JSON, or a missing top-level array.
//
// # Error Handling
//
// Each Finding wraps one of the sentinel errors defined in errors.go
// (ErrMissingField, ErrDuplicateKey, etc.). Use errors.Is() to classify:
//
//	for _, f := range report.Errors() {
//	    if errors.Is(f, validate.ErrDanglingReference) {
//	        // link points at a category that does not exist
//	    }
//	}
//
// # Rules
//
// The rules are fixed for exactly two record types. This is deliberately not
// a general schema engine: adding a field means adding a check here.
package validate
