// Package wordlist provides word filtering helpers for frequency tables.
package wordlist

import "unicode/utf8"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// ExcludeWords drops every word present in the list.
func ExcludeWords(words []string) FilterFunc {
	if len(words) == 0 {
		return keepAll
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return func(word string) bool {
		_, found := set[word]
		return !found
	}
}

// MinLength keeps words with at least n runes.
func MinLength(n int) FilterFunc {
	if n <= 0 {
		return keepAll
	}
	return func(word string) bool {
		return utf8.RuneCountInString(word) >= n
	}
}

// All keeps a word only when every filter keeps it.
func All(filters ...FilterFunc) FilterFunc {
	return func(word string) bool {
		for _, f := range filters {
			if f != nil && !f(word) {
				return false
			}
		}
		return true
	}
}

func keepAll(string) bool { return true }
