// rules.go holds the field-level format checks shared by both record types.
//
// Separated from category.go and link.go so the two validators read as a
// list of rules rather than parsing code. Each helper answers a yes/no
// question; the validators decide what to report.

package validate

import (
	"math"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
)

// Status is the review state shared by categories and links.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Statuses lists every accepted status in display order.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

// Soft length limits, in characters. Exceeding one is a warning.
const (
	MaxCategoryName        = 50
	MaxCategoryDescription = 200
	MaxLinkTitle           = 100
	MaxLinkDescription     = 500
)

// maxDateMillis bounds numeric timestamps to the range a JavaScript Date
// can represent, which is what the published site uses to render them.
const maxDateMillis = 8.64e15

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Slug reports whether s is lowercase letters, digits and hyphens only.
func Slug(s string) bool {
	return slugPattern.MatchString(s)
}

// ValidStatus reports whether s is one of Statuses.
func ValidStatus(s string) bool {
	return slices.Contains(Statuses, Status(s))
}

// URL reports whether s is an absolute http or https URL with a host.
func URL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Date reports whether v, a decoded JSON value, is a usable date/time.
// Strings go through cast first (RFC 3339, plain dates, RFC 1123) and then
// dateparse for the looser forms browsers accept: "2024-01-15 10:30",
// "2024/01/15", "January 15, 2024", a bare year. Numbers are epoch
// milliseconds.
func Date(v any) bool {
	switch t := v.(type) {
	case string:
		return dateString(strings.TrimSpace(t))
	case float64:
		return !math.IsNaN(t) && math.Abs(t) <= maxDateMillis
	default:
		return false
	}
}

func dateString(s string) bool {
	if s == "" {
		return false
	}
	if _, err := cast.StringToDate(s); err == nil {
		return true
	}
	// dateparse reads digit runs as unix timestamps or packed dates; a
	// browser only takes a digit-only string as a year.
	if strings.Trim(s, "0123456789") == "" && len(s) != 4 {
		return false
	}
	_, err := dateparse.ParseAny(s)
	return err == nil
}

// tooLong reports whether s exceeds limit characters.
func tooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}

func statusList() string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
