package ingestion

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/poiesic/assessrec/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RawItem is one crawled catalog page before cleaning and enrichment.
type RawItem struct {
	SourceURL       string
	CanonicalURL    string
	Title           string
	MetaDescription string
	TextSnippet     string
	ExtractedText   string
}

// URL returns the canonical URL, falling back to the source URL.
func (r *RawItem) URL() string {
	if r.CanonicalURL != "" {
		return r.CanonicalURL
	}
	return r.SourceURL
}

// CanonicalText assembles the text used for classification, embedding and
// boosting. Full extracted page text is preferred; otherwise the title,
// meta description and snippet are joined. The result is truncated to
// core.MaxCanonicalTextLen runes.
func (r *RawItem) CanonicalText() string {
	text := collapseWhitespace(r.ExtractedText)
	if text == "" {
		text = collapseWhitespace(joinNonEmpty(r.Title, r.MetaDescription, r.TextSnippet))
	}
	return truncateRunes(text, core.MaxCanonicalTextLen)
}

// SkillText assembles the text scanned for skill tags. Unlike CanonicalText
// it always includes every field, so skills mentioned only in the title or
// meta description are still found.
func (r *RawItem) SkillText() string {
	return collapseWhitespace(joinNonEmpty(r.Title, r.MetaDescription, r.TextSnippet, r.ExtractedText))
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

var titleCaser = cases.Title(language.English)

// UnknownName is the display name assigned when neither the title nor the
// URL yields one. A degenerate crawler row still becomes a valid item
// instead of aborting the build.
const UnknownName = "Unknown Assessment"

// InferName derives a display name for a catalog item. Page titles carry
// site chrome after a pipe ("Java Test | Vendor Catalog"), so only the
// part before the first pipe is used. When there is no usable title the
// name is recovered from the URL slug, and UnknownName covers root-path
// URLs with no slug at all.
func InferName(title, rawURL string) string {
	name := title
	if idx := strings.Index(name, "|"); idx >= 0 {
		name = name[:idx]
	}
	name = collapseWhitespace(name)
	if name != "" {
		return name
	}
	if slug := nameFromSlug(rawURL); slug != "" {
		return slug
	}
	return UnknownName
}

func nameFromSlug(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return ""
	}
	segments := strings.Split(path, "/")
	slug := segments[len(segments)-1]

	slug = strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	slug = collapseWhitespace(slug)
	if slug == "" {
		return ""
	}
	return titleCaser.String(slug)
}

// dedupeByURL drops rows whose URL was already seen, keeping the first
// occurrence, and rows with no URL at all. Input order is preserved.
func dedupeByURL(items []RawItem) []RawItem {
	seen := make(map[string]bool, len(items))
	deduped := make([]RawItem, 0, len(items))
	for _, item := range items {
		u := item.URL()
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		deduped = append(deduped, item)
	}
	return deduped
}
