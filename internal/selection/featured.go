// Package selection derives the featured subset of case studies shown on the home tab.
package selection

import (
	"strings"

	"github.com/jonathan/trail-guidebook/internal/types"
)

// SelectFeatured returns the case studies whose name contains at least one
// allow-list entry, in their original order. Matching is a plain,
// case-sensitive substring test with no normalization. Empty allow-list
// entries never match. When nothing matches the result is an empty, non-nil slice.
func SelectFeatured(all []*types.CaseStudy, allowList []string) []*types.CaseStudy {
	featured := make([]*types.CaseStudy, 0, len(all))
	if len(allowList) == 0 {
		return featured
	}

	for _, cs := range all {
		if matchesAny(cs.Name, allowList) {
			featured = append(featured, cs)
		}
	}

	return featured
}

func matchesAny(name string, allowList []string) bool {
	for _, needle := range allowList {
		if needle != "" && strings.Contains(name, needle) {
			return true
		}
	}
	return false
}
