package validate

import (
	"maps"
	"slices"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Slugs is the set of category slugs seen while validating categories.json.
type Slugs map[string]struct{}

// Has reports whether slug is in the set.
func (s Slugs) Has(slug string) bool {
	_, ok := s[slug]
	return ok
}

// Sorted returns the slugs in lexical order.
func (s Slugs) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Suggest returns the known slug closest to target by edit distance, if it
// is within roughly a third of target's length (and at least one edit).
// Ties go to the lexically first slug.
func (s Slugs) Suggest(target string) (string, bool) {
	if target == "" || len(s) == 0 {
		return "", false
	}

	dmp := diffmatchpatch.New()
	best, bestDist := "", -1
	for _, c := range s.Sorted() {
		if c == "" {
			continue
		}
		d := dmp.DiffLevenshtein(dmp.DiffMain(target, c, false))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	limit := max(1, len(target)/3)
	if bestDist < 0 || bestDist > limit {
		return "", false
	}
	return best, true
}
