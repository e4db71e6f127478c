package tagging

import (
	"regexp"
	"sort"
	"strings"
)

// Synonym maps an alternate spelling to its canonical skill label.
type Synonym struct {
	Alt       string
	Canonical string
}

// Entry pairs a canonical label with its compiled word-boundary matcher.
type Entry struct {
	Label   string
	pattern *regexp.Regexp
}

// Matches reports whether the entry's pattern occurs in text as whole word(s).
// Text is expected to be lowercased by the caller.
func (e Entry) Matches(text string) bool {
	return e.pattern.MatchString(text)
}

// Registry holds the ordered list of skill matchers. Entry order is a
// correctness property: multi-word phrases are evaluated before synonyms,
// synonyms before canonical single tokens, and discovery order feeds
// directly into ExtractSkills output order.
type Registry struct {
	entries []Entry
}

// NewRegistry builds a registry from multi-word phrases, synonym mappings
// and canonical single-token labels.
//
// Phrases are ordered longest-first (stable on input order for equal
// lengths). Synonym entries follow in input order, each producing its
// mapped canonical label. Canonical labels already covered by the first
// two groups are skipped to avoid duplicate pattern evaluation; duplicate
// output is handled separately by ExtractSkills.
func NewRegistry(phrases []string, synonyms []Synonym, canonical []string) *Registry {
	entries := make([]Entry, 0, len(phrases)+len(synonyms)+len(canonical))

	ordered := make([]string, len(phrases))
	copy(ordered, phrases)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})
	for _, phrase := range ordered {
		label := strings.ToLower(phrase)
		entries = append(entries, Entry{Label: label, pattern: compileWordPattern(phrase)})
	}

	for _, syn := range synonyms {
		label := strings.ToLower(syn.Canonical)
		entries = append(entries, Entry{Label: label, pattern: compileWordPattern(syn.Alt)})
	}

	existing := make(map[string]bool, len(entries))
	for _, e := range entries {
		existing[e.Label] = true
	}
	for _, skill := range canonical {
		label := strings.ToLower(skill)
		if existing[label] {
			continue
		}
		entries = append(entries, Entry{Label: label, pattern: compileWordPattern(skill)})
	}

	return &Registry{entries: entries}
}

// DefaultRegistry builds a registry from the built-in skill taxonomy.
func DefaultRegistry() *Registry {
	return NewRegistry(MultiWordSkills, Synonyms, CanonicalSkills)
}

// Entries returns the compiled entries in evaluation order.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// Len returns the number of compiled entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// compileWordPattern compiles a literal, case-insensitive whole-word matcher.
// The pattern text is quoted so regex metacharacters in skill names cannot
// change the match semantics, and word boundaries prevent substring hits
// inside longer tokens (e.g. "aws" inside "flaws").
func compileWordPattern(text string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(text)) + `\b`)
}
