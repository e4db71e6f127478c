package tagging

import (
	"regexp"
	"sort"
	"strings"

	"github.com/poiesic/assessrec/core"
)

// categoryPatterns holds the compiled keyword matchers for one category.
type categoryPatterns struct {
	category core.Category
	patterns []*regexp.Regexp
}

// Classifier assigns exactly one category to free text by counting how
// many distinct keyword patterns of each category match.
type Classifier struct {
	categories      []categoryPatterns
	rank            map[core.Category]int
	defaultCategory core.Category
}

// NewClassifier compiles a classifier from a keyword table and a tie-break
// priority list. Categories are evaluated in sorted code order so scoring
// iteration is deterministic; ties are resolved by the explicit rank map,
// not by iteration accidents.
func NewClassifier(keywords map[core.Category][]string, priority []core.Category) *Classifier {
	codes := make([]core.Category, 0, len(keywords))
	for category := range keywords {
		codes = append(codes, category)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	categories := make([]categoryPatterns, 0, len(codes))
	for _, category := range codes {
		patterns := make([]*regexp.Regexp, 0, len(keywords[category]))
		for _, keyword := range keywords[category] {
			patterns = append(patterns, compileWordPattern(keyword))
		}
		categories = append(categories, categoryPatterns{category: category, patterns: patterns})
	}

	rank := make(map[core.Category]int, len(priority))
	for i, category := range priority {
		rank[category] = i
	}

	return &Classifier{
		categories:      categories,
		rank:            rank,
		defaultCategory: core.CategorySkills,
	}
}

// DefaultClassifier compiles a classifier from the built-in keyword table.
func DefaultClassifier() *Classifier {
	return NewClassifier(CategoryKeywords, CategoryPriority)
}

// Classify returns the category whose keyword set best matches the text.
// The score of a category is the number of its distinct keyword patterns
// that occur in the lowercased text, not the number of occurrences. A zero
// best score falls back to the default category rather than failing; ties
// are broken by the priority rank, lowest rank first.
func (c *Classifier) Classify(text string) core.Category {
	lowered := strings.ToLower(text)

	best := 0
	var candidates []core.Category
	for _, cp := range c.categories {
		score := 0
		for _, pattern := range cp.patterns {
			if pattern.MatchString(lowered) {
				score++
			}
		}
		switch {
		case score > best:
			best = score
			candidates = candidates[:0]
			candidates = append(candidates, cp.category)
		case score == best:
			candidates = append(candidates, cp.category)
		}
	}

	if best == 0 {
		return c.defaultCategory
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	winner := candidates[0]
	winnerRank, ok := c.rank[winner]
	if !ok {
		winnerRank = len(c.rank)
	}
	for _, candidate := range candidates[1:] {
		r, ok := c.rank[candidate]
		if !ok {
			continue
		}
		if r < winnerRank {
			winner = candidate
			winnerRank = r
		}
	}
	return winner
}
