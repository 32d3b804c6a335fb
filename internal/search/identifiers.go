// Identifier extraction and title normalization helpers for ingest-side
// adapters: pull an arXiv ID, DOI, or ISBN out of pasted text, tidy a
// title, or guess a source type from what is known.
package search

import (
	"regexp"
	"strings"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

var (
	// arXiv IDs, new format (1234.56789v2) and old format (math.CO/0123456).
	arxivNewRe = regexp.MustCompile(`(?i)(?:arxiv:)?(\d{4}\.\d{4,5}(?:v\d+)?)`)
	arxivOldRe = regexp.MustCompile(`(?i)(?:arxiv:)?([a-z-]+(?:\.[A-Z]{2})?/\d{7}(?:v\d+)?)`)

	doiRe = regexp.MustCompile(`(?i)(?:doi:)?(10\.\d+/\S+)`)

	whitespaceRe     = regexp.MustCompile(`\s+`)
	leadingArticleRe = regexp.MustCompile(`(?i)^(a|an|the)\s+`)
	nonISBNRe        = regexp.MustCompile(`[^0-9X]`)
)

// CleanTitle collapses runs of whitespace and strips a leading article.
func CleanTitle(title string) string {
	title = whitespaceRe.ReplaceAllString(strings.TrimSpace(title), " ")
	return leadingArticleRe.ReplaceAllString(title, "")
}

// ExtractArxivID pulls an arXiv ID out of free text, accepting both the
// new and old ID formats with an optional "arXiv:" prefix. Returns the
// empty string when no ID is found.
func ExtractArxivID(text string) string {
	if m := arxivNewRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := arxivOldRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// ExtractDOI pulls a DOI out of free text, with an optional "doi:" prefix.
// Returns the empty string when no DOI is found.
func ExtractDOI(text string) string {
	if m := doiRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// ExtractISBN pulls an ISBN-10 or ISBN-13 out of free text, tolerating
// hyphens and spaces. Returns the bare digits (X allowed as the ISBN-10
// check character), or the empty string when nothing ISBN-shaped remains.
func ExtractISBN(text string) string {
	cleaned := nonISBNRe.ReplaceAllString(strings.ToUpper(text), "")

	if len(cleaned) == 13 && (strings.HasPrefix(cleaned, "978") || strings.HasPrefix(cleaned, "979")) {
		return cleaned
	}
	if len(cleaned) == 10 {
		return cleaned
	}
	return ""
}

// identifierTypeHints maps identifier types to the source type they most
// likely belong to.
var identifierTypeHints = map[string]string{
	types.IdentifierArxiv:           types.SourcePaper,
	types.IdentifierDOI:             types.SourcePaper,
	types.IdentifierSemanticScholar: types.SourcePaper,
	types.IdentifierISBN:            types.SourceBook,
	types.IdentifierURL:             types.SourceWebpage,
}

// titleKeywordHints maps title keywords to source types, checked in order.
var titleKeywordHints = []struct {
	sourceType string
	keywords   []string
}{
	{types.SourcePaper, []string{"paper", "article", "journal", "conference"}},
	{types.SourceBook, []string{"book", "textbook", "handbook"}},
	{types.SourceVideo, []string{"video", "lecture", "tutorial"}},
	{types.SourceBlog, []string{"blog", "post"}},
}

// GuessSourceType infers a likely source type from the identifier type,
// falling back to title keywords and finally to webpage.
func GuessSourceType(title, identifierType string) string {
	if hint, ok := identifierTypeHints[identifierType]; ok {
		return hint
	}

	titleLower := strings.ToLower(title)
	for _, hint := range titleKeywordHints {
		for _, kw := range hint.keywords {
			if strings.Contains(titleLower, kw) {
				return hint.sourceType
			}
		}
	}

	return types.SourceWebpage
}
