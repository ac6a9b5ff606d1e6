package validate

import (
	"fmt"

	"github.com/jpl-au/datalint/internal/data"
)

// Links checks every record in links.json against the link rules and
// against slugs, the category set returned by Categories.
//
// A missing top-level "links" array is recorded as a schema error and no
// records are checked.
func Links(r *Report, doc *data.Document, slugs Slugs) {
	file := fileLoc(doc.Path)
	recs, err := doc.Records("links")
	if err != nil {
		r.errorf(ErrSchema, file, "%s must have a \"links\" array (%v)", file.file, err)
		return
	}
	r.Links = len(recs)

	ids := make(map[string]bool)
	for i, raw := range recs {
		l := loc{file: file.file, index: i}
		link, err := data.DecodeLink(raw)
		if err != nil {
			r.errorf(ErrInvalidType, l, "Link at index %d is not an object", i)
			continue
		}
		checkLink(r, l, link, slugs, ids)
	}
}

func checkLink(r *Report, l loc, link data.Link, slugs Slugs, ids map[string]bool) {
	name := label("Link", l.index, link.Title)

	requireString(r, l, name, "id", link.ID)
	requireString(r, l, name, "title", link.Title)
	requireString(r, l, name, "url", link.URL)
	switch {
	case !link.Categories.Set:
		r.errorf(ErrMissingField, l.at("categories"), "%s missing \"categories\" array", name)
	case !link.Categories.OK:
		r.errorf(ErrInvalidType, l.at("categories"), "%s has invalid \"categories\" %s (must be an array)", name, link.Categories.Raw)
	}
	requireString(r, l, name, "status", link.Status)

	if usable(link.ID) {
		id := link.ID.Value
		if !Slug(id) {
			r.errorf(ErrInvalidFormat, l.at("id"), "%s has invalid id %q (must be lowercase letters, digits and hyphens only)", name, id)
		}
		if ids[id] {
			r.errorf(ErrDuplicateKey, l.at("id"), "Duplicate link id %q at index %d", id, l.index)
		}
		ids[id] = true
	}

	if usable(link.URL) && !URL(link.URL.Value) {
		r.errorf(ErrInvalidURL, l.at("url"), "%s has invalid URL %q (must be an absolute http or https URL)", name, link.URL.Value)
	}
	optionalString(r, l, name, "icon", link.Icon)
	if usable(link.Icon) && !URL(link.Icon.Value) {
		r.errorf(ErrInvalidURL, l.at("icon"), "%s has invalid icon URL %q (must be an absolute http or https URL)", name, link.Icon.Value)
	}

	if link.Categories.OK {
		checkReferences(r, l, name, link.Categories.Value, slugs)
	}

	if usable(link.Status) && !ValidStatus(link.Status.Value) {
		r.errorf(ErrInvalidEnum, l.at("status"), "%s has invalid status %q (must be one of %s)", name, link.Status.Value, statusList())
	}

	if usable(link.Title) && tooLong(link.Title.Value, MaxLinkTitle) {
		r.warnf(l.at("title"), "%s title is longer than %d characters", name, MaxLinkTitle)
	}
	optionalString(r, l, name, "description", link.Description)
	if usable(link.Description) && tooLong(link.Description.Value, MaxLinkDescription) {
		r.warnf(l.at("description"), "%s description is longer than %d characters", name, MaxLinkDescription)
	}

	if v := link.SubmittedAt.Value; link.SubmittedAt.Set && truthy(v) && !Date(v) {
		r.errorf(ErrInvalidDate, l.at("submittedAt"), "%s has invalid submittedAt date %s", name, link.SubmittedAt.Raw)
	}
}

// checkReferences resolves each category entry against the known slugs.
func checkReferences(r *Report, l loc, name string, refs []data.Field[string], slugs Slugs) {
	if len(refs) == 0 {
		r.errorf(ErrEmptyCategories, l.at("categories"), "%s must have at least one category", name)
		return
	}
	for j, ref := range refs {
		field := fmt.Sprintf("categories[%d]", j)
		if !ref.OK {
			raw := string(ref.Raw)
			if !ref.Set {
				raw = "null"
			}
			r.errorf(ErrInvalidType, l.at(field), "%s has invalid category %s (must be a string)", name, raw)
			continue
		}
		if slugs.Has(ref.Value) {
			continue
		}
		if s, ok := slugs.Suggest(ref.Value); ok {
			r.errorf(ErrDanglingReference, l.at(field), "%s references non-existent category %q (did you mean %q?)", name, ref.Value, s)
			continue
		}
		r.errorf(ErrDanglingReference, l.at(field), "%s references non-existent category %q", name, ref.Value)
	}
}

// optionalString records an optional string field holding another type.
func optionalString(r *Report, l loc, name, field string, f data.Field[string]) {
	if f.Set && !f.OK {
		r.errorf(ErrInvalidType, l.at(field), "%s has invalid %q %s (must be a string)", name, field, f.Raw)
	}
}

// truthy mirrors the "field is filled in" test used for optional fields:
// empty strings, zero and false count as not provided.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case bool:
		return t
	default:
		return true
	}
}
