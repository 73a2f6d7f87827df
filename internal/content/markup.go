package content

import (
	"fmt"
	"regexp"
	"strings"
)

// rule is a single markdown construct. When keep is set the pattern has
// exactly one capture group holding the text that replaces the match;
// otherwise the match is dropped.
type rule struct {
	name    string
	pattern string
	keep    bool
}

// Order matters: at a given position the first matching rule wins.
var markupRules = []rule{
	{name: "fence", pattern: "^[ \\t]*```[^\\n]*\\n?"},
	{name: "heading", pattern: `^[ \t]*#[^\n]*\n?`},
	{name: "rule", pattern: `^[ \t]*(?:-{3,}|_{3,}|\*{3,})[ \t]*(?:\n|$)`},
	{name: "link", pattern: `!?\[([^\]\n]*)\]\([^)\n]*\)`, keep: true},
	{name: "bold-star", pattern: `\*\*([^\n]+?)\*\*`, keep: true},
	{name: "bold-underscore", pattern: `__([^\n]+?)__`, keep: true},
	{name: "code", pattern: "`([^`\\n]+)`", keep: true},
	{name: "italic-star", pattern: `\*([^*\n]+)\*`, keep: true},
	{name: "italic-underscore", pattern: `_([^_\n]+)_`, keep: true},
}

// Stripper removes markdown syntax in a single left-to-right pass.
type Stripper struct {
	re *regexp.Regexp
	// keepGroup maps a rule's outer group index to the group holding its
	// kept text, or -1 when the match is dropped.
	keepGroup map[int]int
	outer     []int
}

// NewStripper composes the markup rules into one expression.
func NewStripper() (*Stripper, error) {
	return newStripper(markupRules)
}

func newStripper(rules []rule) (*Stripper, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("no markup rules")
	}
	parts := make([]string, 0, len(rules))
	keepGroup := make(map[int]int, len(rules))
	outer := make([]int, 0, len(rules))
	group := 1
	for _, r := range rules {
		sub, err := regexp.Compile(r.pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", r.name, err)
		}
		n := sub.NumSubexp()
		if r.keep && n != 1 {
			return nil, fmt.Errorf("rule %s: expected 1 capture group, got %d", r.name, n)
		}
		outer = append(outer, group)
		if r.keep {
			keepGroup[group] = group + 1
		} else {
			keepGroup[group] = -1
		}
		parts = append(parts, "("+r.pattern+")")
		group += n + 1
	}
	re, err := regexp.Compile("(?m)" + strings.Join(parts, "|"))
	if err != nil {
		return nil, err
	}
	return &Stripper{re: re, keepGroup: keepGroup, outer: outer}, nil
}

// Strip returns text with markdown constructs replaced by their readable
// content. The same input always yields the same output.
func (s *Stripper) Strip(text string) string {
	matches := s.re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		b.WriteString(s.replacement(text, m))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func (s *Stripper) replacement(text string, m []int) string {
	for _, g := range s.outer {
		if m[2*g] < 0 {
			continue
		}
		keep := s.keepGroup[g]
		if keep < 0 || m[2*keep] < 0 {
			return ""
		}
		return text[m[2*keep]:m[2*keep+1]]
	}
	return ""
}
