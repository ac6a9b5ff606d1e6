// Package data loads the category and link files that datalint checks.
//
// The package knows where the files live and how to decode them, but
// nothing about what makes a record valid. Loading is split in two steps
// so callers can report every missing file before parsing any of them:
// Paths.Missing first, then Load per file.
package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoArray is returned by Document.Records when the expected top-level
// array is absent or has the wrong type.
var ErrNoArray = errors.New("missing top-level array")

// ParseError describes a data file that is not well-formed JSON.
type ParseError struct {
	Path   string
	Line   int // 1-based
	Column int // 1-based
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Document is a syntactically valid JSON data file.
type Document struct {
	Path string
	raw  []byte
}

// Load reads path fully and checks that it is well-formed JSON.
// Syntax errors are returned as *ParseError.
func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, b)
}

// Parse checks b for JSON syntax and wraps it as a Document.
func Parse(path string, b []byte) (*Document, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		pe := &ParseError{Path: path, Err: err}
		var se *json.SyntaxError
		if errors.As(err, &se) {
			pe.Line, pe.Column = position(b, se.Offset)
		}
		return nil, pe
	}
	return &Document{Path: path, raw: b}, nil
}

// Records returns the raw elements of the top-level array stored under key.
func (d *Document) Records(key string) ([]json.RawMessage, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(d.raw, &top); err != nil {
		return nil, fmt.Errorf("%w: top level is not an object", ErrNoArray)
	}
	raw, ok := top[key]
	if !ok || isNull(raw) {
		return nil, fmt.Errorf("%w: %q is missing", ErrNoArray, key)
	}
	var recs []json.RawMessage
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("%w: %q is not an array", ErrNoArray, key)
	}
	return recs, nil
}

// position converts a byte offset into a 1-based line and column.
// The decoder reports the offset just past the offending byte.
func position(b []byte, offset int64) (line, col int) {
	if offset > int64(len(b)) {
		offset = int64(len(b))
	}
	if offset < 1 {
		return 1, 1
	}
	before := b[:offset-1]
	line = bytes.Count(before, []byte("\n")) + 1
	col = len(before) - bytes.LastIndexByte(before, '\n')
	return line, col
}
