package logic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"transferlist/internal/domain"
)

// Match modes accepted by MatcherFor
const (
	MatchSubstring = "substring"
	MatchFuzzy     = "fuzzy"
)

// Filter returns the items whose label contains query, ignoring case.
// An empty query returns items unchanged.
func Filter(items []domain.Item, query string) []domain.Item {
	if query == "" {
		return items
	}

	lowerQuery := strings.ToLower(query)
	filtered := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lowerQuery) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Matcher selects the subsequence of items matching a search query
type Matcher interface {
	Match(items []domain.Item, query string) []domain.Item
	Name() string
}

// SubstringMatcher is the default case-insensitive substring matcher
type SubstringMatcher struct{}

func (SubstringMatcher) Match(items []domain.Item, query string) []domain.Item {
	return Filter(items, query)
}

func (SubstringMatcher) Name() string { return MatchSubstring }

// FuzzyMatcher matches labels fuzzily but keeps the list's own order rather
// than ranking by score, so rows don't jump around while typing.
type FuzzyMatcher struct{}

func (FuzzyMatcher) Match(items []domain.Item, query string) []domain.Item {
	if query == "" {
		return items
	}

	matches := fuzzy.FindFrom(query, labelSource(items))
	indexes := make([]int, 0, len(matches))
	for _, m := range matches {
		indexes = append(indexes, m.Index)
	}
	sort.Ints(indexes)

	filtered := make([]domain.Item, 0, len(indexes))
	for _, i := range indexes {
		filtered = append(filtered, items[i])
	}
	return filtered
}

func (FuzzyMatcher) Name() string { return MatchFuzzy }

// labelSource adapts a list of items to fuzzy.Source
type labelSource []domain.Item

func (s labelSource) String(i int) string { return s[i].Label }
func (s labelSource) Len() int            { return len(s) }

// MatcherFor returns the matcher for a configured match mode.
// An empty mode selects substring matching.
func MatcherFor(mode string) (Matcher, error) {
	switch mode {
	case "", MatchSubstring:
		return SubstringMatcher{}, nil
	case MatchFuzzy:
		return FuzzyMatcher{}, nil
	default:
		return nil, fmt.Errorf("unknown match mode %q", mode)
	}
}
