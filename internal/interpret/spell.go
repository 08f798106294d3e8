// Package interpret turns raw query text into corrected text and structured
// intent. Correction is an exact whole-word table lookup; extraction is
// substring containment against fixed token lists plus a price-phrase pattern.
package interpret

import "strings"

// corrections maps known misspellings to canonical forms. Lookups are exact
// whole words; no edit-distance matching.
var corrections = map[string]string{
	"lapstick": "lipstick",
	"runni":    "running",
	"shampoo":  "shampoo",
	"shampo":   "shampoo",
	"sneeker":  "sneaker",
	"snekers":  "sneakers",
}

// Correct lower-cases the query and replaces each whitespace-separated word
// via the correction table, leaving unknown words unchanged. The output has
// the same word count as the input and single spaces between words.
func Correct(query string) string {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return ""
	}
	for i, w := range words {
		if canonical, ok := corrections[w]; ok {
			words[i] = canonical
		}
	}
	return strings.Join(words, " ")
}
