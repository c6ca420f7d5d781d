package services

import (
	"regexp"
	"strings"
)

// punctuation stripped before tokenizing. Anything outside this set
// (apostrophes, digits, accented letters) passes through untouched.
var punctRe = regexp.MustCompile("[.,/#!$%^&*;:{}=\\-_`~()]")

// stopWords are filler words that carry no signal for menu matching.
var stopWords = map[string]bool{
	"have": true,
	"you":  true,
	"the":  true,
	"menu": true,
	"for":  true,
	"with": true,
	"and":  true,
	"are":  true,
	"what": true,
	"does": true,
}

// CleanUtterance lowercases the input and strips the punctuation set.
func CleanUtterance(input string) string {
	return punctRe.ReplaceAllString(strings.ToLower(input), "")
}

// Tokenize splits a cleaned utterance on whitespace and keeps only the
// significant words: longer than 2 characters and not a stop word.
func Tokenize(clean string) []string {
	var tokens []string
	for _, w := range strings.Fields(clean) {
		if len(w) > 2 && !stopWords[w] {
			tokens = append(tokens, w)
		}
	}
	return tokens
}
