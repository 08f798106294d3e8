package interpret

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yash171102/shopquery/internal/domain/query"
)

// brandTokens is the fixed brand scan list. The first token found as a
// substring of the query wins, in this list order, not by position in the
// query text. Do not reorder: the order is a tested contract.
var brandTokens = []string{"nike", "adidas", "puma", "mac", "loreal", "head & shoulders"}

// colorTokens is the fixed color scan list, same first-in-list-order rule.
var colorTokens = []string{"black", "white", "red", "blue", "pink"}

// priceCeilingRe captures the integer N from "under N", "less than N",
// or "below N".
var priceCeilingRe = regexp.MustCompile(`under (\d+)|less than (\d+)|below (\d+)`)

// Extract parses structured intent out of a corrected query. Matching is
// plain substring containment, not token-boundary aware: a token embedded
// inside a longer word still counts. At most one brand and one color are ever
// inferred; only a price upper bound is ever extracted.
func Extract(corrected string) query.Semantic {
	lower := strings.ToLower(corrected)

	var brand, color *string
	var ceiling *float64

	for _, t := range brandTokens {
		if strings.Contains(lower, t) {
			b := t
			brand = &b
			break
		}
	}

	for _, t := range colorTokens {
		if strings.Contains(lower, t) {
			c := t
			color = &c
			break
		}
	}

	if m := priceCeilingRe.FindStringSubmatch(lower); m != nil {
		for _, g := range m[1:] {
			if g == "" {
				continue
			}
			if n, err := strconv.Atoi(g); err == nil {
				v := float64(n)
				ceiling = &v
			}
			break
		}
	}

	return query.NewSemantic(brand, color, ceiling)
}
