package validate

import (
	"fmt"

	"github.com/jpl-au/datalint/internal/data"
)

// Categories checks every record in categories.json and returns the set of
// slugs it saw.
//
// The slug set includes malformed and duplicate slugs: they have already
// been reported here, and leaving them out would make every link that uses
// them fail a second time as a dangling reference.
//
// Returns ok == false, and no set, when the top-level "categories" array is
// missing. Link validation cannot run without it.
func Categories(r *Report, doc *data.Document) (slugs Slugs, ok bool) {
	file := fileLoc(doc.Path)
	recs, err := doc.Records("categories")
	if err != nil {
		r.errorf(ErrSchema, file, "%s must have a \"categories\" array (%v)", file.file, err)
		return nil, false
	}
	r.Categories = len(recs)

	slugs = make(Slugs)
	ids := make(map[string]bool)
	for i, raw := range recs {
		l := loc{file: file.file, index: i}
		c, err := data.DecodeCategory(raw)
		if err != nil {
			r.errorf(ErrInvalidType, l, "Category at index %d is not an object", i)
			continue
		}
		checkCategory(r, l, c, slugs, ids)
	}
	return slugs, true
}

func checkCategory(r *Report, l loc, c data.Category, slugs Slugs, ids map[string]bool) {
	name := label("Category", l.index, c.Name)

	requireString(r, l, name, "id", c.ID)
	requireString(r, l, name, "name", c.Name)
	requireString(r, l, name, "slug", c.Slug)
	requireString(r, l, name, "description", c.Description)
	if !c.Order.OK {
		r.errorf(ErrInvalidType, l.at("order"), "%s missing or invalid \"order\" (must be a number)", name)
	}
	requireString(r, l, name, "status", c.Status)

	if usable(c.Slug) {
		slug := c.Slug.Value
		if !Slug(slug) {
			r.errorf(ErrInvalidFormat, l.at("slug"), "%s has invalid slug %q (must be lowercase letters, digits and hyphens only)", name, slug)
		}
		if slugs.Has(slug) {
			r.errorf(ErrDuplicateKey, l.at("slug"), "Duplicate category slug %q at index %d", slug, l.index)
		}
		slugs[slug] = struct{}{}
	}
	if usable(c.ID) {
		if ids[c.ID.Value] {
			r.errorf(ErrDuplicateKey, l.at("id"), "Duplicate category id %q at index %d", c.ID.Value, l.index)
		}
		ids[c.ID.Value] = true
	}

	if usable(c.Status) && !ValidStatus(c.Status.Value) {
		r.errorf(ErrInvalidEnum, l.at("status"), "%s has invalid status %q (must be one of %s)", name, c.Status.Value, statusList())
	}

	if usable(c.Name) && tooLong(c.Name.Value, MaxCategoryName) {
		r.warnf(l.at("name"), "%s name is longer than %d characters", name, MaxCategoryName)
	}
	if usable(c.Description) && tooLong(c.Description.Value, MaxCategoryDescription) {
		r.warnf(l.at("description"), "%s description is longer than %d characters", name, MaxCategoryDescription)
	}
}

// requireString records a missing or wrongly typed required string field.
func requireString(r *Report, l loc, name, field string, f data.Field[string]) {
	switch {
	case data.Blank(f):
		r.errorf(ErrMissingField, l.at(field), "%s missing %q", name, field)
	case !f.OK:
		r.errorf(ErrInvalidType, l.at(field), "%s has invalid %q %s (must be a string)", name, field, f.Raw)
	}
}

// usable reports whether a string field holds a non-empty string.
func usable(f data.Field[string]) bool {
	return f.OK && !data.Blank(f)
}

// label names a record for messages: by its display field when it has one,
// always with its index so it can be found in the file.
func label(kind string, index int, display data.Field[string]) string {
	if usable(display) {
		return fmt.Sprintf("%s %q at index %d", kind, display.Value, index)
	}
	return fmt.Sprintf("%s at index %d", kind, index)
}
