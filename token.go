package corpusq

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenLength is the minimum keyword length; shorter tokens carry no
// signal in an advisory-prose corpus.
const minTokenLength = 3

// stopwords are excluded from the index. The list is deliberately small:
// matching here is a naive bag-of-words model, not text analysis.
var stopwords = map[string]struct{}{
	"and": {}, "are": {}, "but": {}, "for": {}, "had": {},
	"has": {}, "have": {}, "its": {}, "not": {}, "our": {},
	"out": {}, "that": {}, "the": {}, "their": {}, "them": {},
	"they": {}, "this": {}, "was": {}, "were": {}, "will": {},
	"with": {}, "you": {}, "your": {},
}

// Tokenize extracts lowercase alphanumeric tokens of length >=
// minTokenLength from text, in order of appearance, with stopwords
// excluded. Duplicates are preserved; use TokenSet for membership
// checks.
func Tokenize(text string) []string {
	var tokens []string
	var sb strings.Builder

	flush := func() {
		if sb.Len() == 0 {
			return
		}
		tok := sb.String()
		sb.Reset()
		if utf8.RuneCountInString(tok) < minTokenLength {
			return
		}
		if _, ok := stopwords[tok]; ok {
			return
		}
		tokens = append(tokens, tok)
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// TokenSet returns the set of tokens extracted from text.
func TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(text) {
		set[tok] = struct{}{}
	}
	return set
}

// NormalizeKeyword lowercases and trims a query keyword so it matches
// indexed tokens. Returns "" for keywords that are empty after
// trimming.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}
