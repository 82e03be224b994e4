// Package textproc provides text normalization and tokenization for the
// retrieval pipeline. The same tokenizer is used at fit time and at query
// time so that vocabulary lookups stay consistent.
package textproc

import (
	"strings"
)

// delimiters is the fixed set of characters that terminate a token.
// Whitespace plus sentence punctuation; identifiers and hyphenated
// words survive intact.
const delimiters = " \t\n\r.,!?"

// Normalize lowercases text, collapses newline and carriage-return
// characters to spaces, and trims surrounding whitespace.
func Normalize(text string) string {
	lower := strings.ToLower(text)
	collapsed := strings.NewReplacer("\r", " ", "\n", " ").Replace(lower)
	return strings.TrimSpace(collapsed)
}

// Tokenize normalizes text and splits it into lexical tokens.
// Empty tokens are discarded. Empty or blank input yields an empty
// slice, never nil and never an error.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return []string{}
	}

	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
	if fields == nil {
		return []string{}
	}
	return fields
}

// FilterStopWords removes stop words from a token list.
func FilterStopWords(tokens []string, stopWords map[string]struct{}) []string {
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, isStop := stopWords[strings.ToLower(token)]; !isStop {
			result = append(result, token)
		}
	}
	return result
}

// BuildStopWordMap converts a slice of stop words to a map for efficient lookup.
func BuildStopWordMap(stopWords []string) map[string]struct{} {
	m := make(map[string]struct{}, len(stopWords))
	for _, word := range stopWords {
		m[strings.ToLower(word)] = struct{}{}
	}
	return m
}
