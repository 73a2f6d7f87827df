// Package analyzer tokenizes plain text and computes word metrics.
package analyzer

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/verte-zerg/readometer/internal/model"
)

// DefaultWPM is the average reading speed in words per minute.
const DefaultWPM = 200

// Tokenize splits text on whitespace and normalizes each fragment.
// Fragments that are empty after trimming are dropped.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, unicode.IsSpace)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		word := strings.ToLower(strings.TrimFunc(field, notAlphanumeric))
		if word == "" {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

func notAlphanumeric(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// CountTotal returns the number of tokens, duplicates included.
func CountTotal(tokens []string) int {
	return len(tokens)
}

// Frequency counts token occurrences, most frequent first. Ties keep the
// order in which words were first seen.
func Frequency(tokens []string) []model.WordCount {
	index := make(map[string]int, len(tokens))
	out := make([]model.WordCount, 0)
	for _, token := range tokens {
		if i, ok := index[token]; ok {
			out[i].Count++
			continue
		}
		index[token] = len(out)
		out = append(out, model.WordCount{Word: token, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// EstimateReadingMinutes rounds totalWords/wpm to the nearest minute,
// halves away from zero. A non-positive wpm yields 0.
func EstimateReadingMinutes(totalWords, wpm int) int {
	if wpm <= 0 || totalWords <= 0 {
		return 0
	}
	return int(math.Round(float64(totalWords) / float64(wpm)))
}

// Analyze computes all metrics for text at the given reading speed.
func Analyze(text string, wpm int) model.Result {
	tokens := Tokenize(text)
	freqs := Frequency(tokens)
	total := CountTotal(tokens)
	return model.Result{
		Words:          total,
		Unique:         len(freqs),
		Frequencies:    freqs,
		ReadingMinutes: EstimateReadingMinutes(total, wpm),
		WPM:            wpm,
	}
}

// Top returns up to n leading entries accepted by keep. A nil keep accepts
// everything; n <= 0 means no limit.
func Top(freqs []model.WordCount, n int, keep func(string) bool) []model.WordCount {
	out := make([]model.WordCount, 0, len(freqs))
	for _, wc := range freqs {
		if keep != nil && !keep(wc.Word) {
			continue
		}
		out = append(out, wc)
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}
