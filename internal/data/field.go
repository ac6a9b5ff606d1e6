// field.go implements the presence-aware field wrapper used by record types.
//
// Separated from record.go because the wrapper is generic and knows nothing
// about categories or links.
//
// Design: Data files are hand-edited by contributors, so a field can be
// absent, null, or hold the wrong JSON type. Decoding straight into string or
// float64 would either fail the whole record or silently zero the value.
// Field records what was actually there so validators can report the precise
// problem and only narrow to Value once Set and OK are both true.

package data

import (
	"bytes"
	"encoding/json"
)

// Field holds one decoded record field.
type Field[T any] struct {
	Value T
	Raw   json.RawMessage // original JSON text, kept for messages
	Set   bool            // key present with a non-null value
	OK    bool            // value decoded as T
}

// UnmarshalJSON never fails: type mismatches are recorded in OK rather than
// aborting the enclosing record.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	f.Set = true
	f.Raw = append(json.RawMessage(nil), b...)
	f.OK = json.Unmarshal(b, &f.Value) == nil
	return nil
}

// Blank reports whether a string field is absent, null or empty.
// Wrong-typed values are not blank; they are reported as type errors.
func Blank(f Field[string]) bool {
	return !f.Set || (f.OK && f.Value == "")
}
