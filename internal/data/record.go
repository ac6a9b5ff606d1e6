package data

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNotObject is returned when a record in a top-level array is not a JSON object.
var ErrNotObject = errors.New("record is not an object")

// Category is one entry of categories.json.
type Category struct {
	ID          Field[string]
	Name        Field[string]
	Slug        Field[string]
	Description Field[string]
	Order       Field[float64]
	Status      Field[string]
}

// Link is one entry of links.json.
//
// Categories elements are Fields too so a non-string entry can be reported
// without discarding the rest of the array. SubmittedAt accepts any JSON
// value; date parsing decides what is acceptable.
type Link struct {
	ID          Field[string]
	Title       Field[string]
	URL         Field[string]
	Icon        Field[string]
	Categories  Field[[]Field[string]]
	Status      Field[string]
	Description Field[string]
	SubmittedAt Field[any]
}

// DecodeCategory decodes a single raw category record.
func DecodeCategory(raw json.RawMessage) (Category, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return Category{}, err
	}
	var c Category
	obj.field("id", &c.ID)
	obj.field("name", &c.Name)
	obj.field("slug", &c.Slug)
	obj.field("description", &c.Description)
	obj.field("order", &c.Order)
	obj.field("status", &c.Status)
	return c, nil
}

// DecodeLink decodes a single raw link record.
func DecodeLink(raw json.RawMessage) (Link, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return Link{}, err
	}
	var l Link
	obj.field("id", &l.ID)
	obj.field("title", &l.Title)
	obj.field("url", &l.URL)
	obj.field("icon", &l.Icon)
	obj.field("categories", &l.Categories)
	obj.field("status", &l.Status)
	obj.field("description", &l.Description)
	obj.field("submittedAt", &l.SubmittedAt)
	return l, nil
}

// object is a decoded record keyed by its exact JSON keys.
//
// Records are not decoded straight into the structs because encoding/json
// matches keys case-insensitively: "URL" or "Status" would fill the url and
// status fields even though consumers of the data only read the exact keys.
type object map[string]json.RawMessage

// field fills f from the value under key. Keys differing only in case are
// ignored.
func (o object) field(key string, f json.Unmarshaler) {
	if raw, ok := o[key]; ok {
		_ = f.UnmarshalJSON(raw) // Field never fails
	}
}

// decodeObject rejects null and non-object records.
func decodeObject(raw json.RawMessage) (object, error) {
	if isNull(raw) {
		return nil, ErrNotObject
	}
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, ErrNotObject
	}
	return o, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
