package search

import (
	"regexp"
	"strings"
)

// boostPhrases are multi-word terms matched as substrings of the query.
// Single-word terms are taken from the query tokens directly.
var boostPhrases = []string{
	"power bi",
	"data warehousing",
	"machine learning",
	"deep learning",
	"amazon web services",
	"amazon aws",
}

var tokenSplitter = regexp.MustCompile(`\W+`)

// desiredTerms extracts the lexical terms a result should be rewarded for
// containing. Multi-word phrases are detected by substring match on the
// lowercased query; every remaining token of two or more characters also
// counts as a term.
func desiredTerms(query string) map[string]bool {
	lowered := strings.ToLower(query)
	terms := make(map[string]bool)

	for _, phrase := range boostPhrases {
		if strings.Contains(lowered, phrase) {
			terms[phrase] = true
		}
	}

	for _, token := range tokenSplitter.Split(lowered, -1) {
		if len(token) >= 2 {
			terms[token] = true
		}
	}

	return terms
}

// countTermMatches counts how many desired terms appear in the document text.
// Matching is substring containment on the lowercased text, so "sql" also
// matches "postgresql"; that mirrors how catalog text is written.
func countTermMatches(text string, terms map[string]bool) int {
	lowered := strings.ToLower(text)
	matches := 0
	for term := range terms {
		if strings.Contains(lowered, term) {
			matches++
		}
	}
	return matches
}
