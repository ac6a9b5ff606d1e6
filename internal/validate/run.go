package validate

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/jpl-au/datalint/internal/data"
)

// Run validates the data files at p and returns the report.
//
// Steps run strictly in order: existence of both files, parsing of both
// files, categories, links. Missing or unparseable files abort the run after
// every such problem has been recorded; a missing "categories" array skips
// link checks because there is no slug set to resolve against.
func Run(p data.Paths) *Report {
	r := &Report{}

	for _, path := range p.Missing() {
		r.errorf(ErrMissingFile, fileLoc(path), "%s not found in %s", filepath.Base(path), filepath.Dir(path))
	}
	if r.Failed() {
		r.aborted = true
		return r
	}

	cats := load(r, p.Categories)
	links := load(r, p.Links)
	if cats == nil || links == nil {
		r.aborted = true
		return r
	}

	if slugs, ok := Categories(r, cats); ok {
		Links(r, links, slugs)
	}
	return r
}

// load parses one data file, recording a parse error on failure.
func load(r *Report, path string) *data.Document {
	doc, err := data.Load(path)
	if err == nil {
		return doc
	}

	var pe *data.ParseError
	switch {
	case errors.As(err, &pe):
		r.errorf(ErrParse, fileLoc(path), "Invalid JSON in %s", pe)
	case errors.Is(err, os.ErrNotExist):
		// Removed between the existence check and the read.
		r.errorf(ErrMissingFile, fileLoc(path), "%s not found in %s", filepath.Base(path), filepath.Dir(path))
	default:
		r.errorf(ErrParse, fileLoc(path), "Cannot read %s: %v", path, errors.Unwrap(err))
	}
	return nil
}
