package sdk

import (
	"context"
	"strings"

	"github.com/advmanik/casefolio/pkg/schema"
)

// AllCategories is the reserved sentinel that disables category filtering.
const AllCategories = "all"

// Browser holds a case list and answers category and free-text queries over
// it locally. The search tolerates spacing and punctuation variation in
// Bengali input by matching a normalized form alongside the raw text.
type Browser struct {
	cases []Case
}

// Case aliases the schema type so browse-only callers need a single import.
type Case = schema.Case

// LoadBrowser fetches the case list and wraps it in a Browser. When the
// fetch fails or returns nothing, the bundled fallback dataset is used
// silently; a broken API should degrade, not blank the portfolio.
func LoadBrowser(ctx context.Context, client *Client) *Browser {
	items, err := client.ListCases(ctx)
	if err != nil || len(items) == 0 {
		return NewBrowser(nil)
	}
	return NewBrowser(items)
}

// NewBrowser wraps the given cases; an empty list selects the fallback
// dataset.
func NewBrowser(cases []Case) *Browser {
	if len(cases) == 0 {
		cases = FallbackCases()
	}
	return &Browser{cases: cases}
}

// Cases returns the full list in its stored order.
func (b *Browser) Cases() []Case {
	return b.cases
}

// Categories returns AllCategories followed by the distinct categories in
// first-seen order.
func (b *Browser) Categories() []string {
	seen := make(map[string]bool)
	list := []string{AllCategories}
	for _, c := range b.cases {
		if !seen[c.Category] {
			seen[c.Category] = true
			list = append(list, c.Category)
		}
	}
	return list
}

// Filter applies an exact category match (AllCategories skips it) and then
// the free-text search. An empty term matches everything.
func (b *Browser) Filter(category, term string) []Case {
	filtered := make([]Case, 0, len(b.cases))
	term = strings.ToLower(strings.TrimSpace(term))
	normalizedTerm := NormalizeText(term)

	for _, c := range b.cases {
		if category != AllCategories && c.Category != category {
			continue
		}
		if term != "" && !matches(c, term, normalizedTerm) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// matches reports whether any of the four text fields contains the term,
// comparing the raw lowercase form OR the normalized form. Both passes stay:
// the normalized one exists to tolerate spacing and punctuation variance the
// raw pass misses in Bengali text.
func matches(c Case, term, normalizedTerm string) bool {
	fields := []string{c.Title, c.Summary, c.Outcome, c.Category}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	if normalizedTerm == "" {
		return false
	}
	for _, f := range fields {
		if strings.Contains(NormalizeText(f), normalizedTerm) {
			return true
		}
	}
	return false
}

// NormalizeText lowercases the input and strips every rune outside ASCII
// letters, digits, and the Bengali block (U+0980–U+09FF). Whitespace and
// punctuation disappear, so "ধারা ১৪৪" and "ধারা-১৪৪" normalize identically.
func NormalizeText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 0x0980 && r <= 0x09FF:
			b.WriteRune(r)
		}
	}
	return b.String()
}
