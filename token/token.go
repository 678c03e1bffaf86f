// Package token implements the placeholder syntax used inside varpad text.
//
// A token is an inline substring of the form {{IDENTIFIER}} where IDENTIFIER
// is one or more of A-Z, 0-9 and underscore. Tokens are never stored
// separately: they are recognized by scanning the text whenever needed.
package token

import (
	"regexp"
	"sort"
	"strings"
)

const (
	Open  = "{{"
	Close = "}}"
)

var (
	tokenRE      = regexp.MustCompile(`\{\{([A-Z0-9_]+)\}\}`)
	identifierRE = regexp.MustCompile(`^[A-Z0-9_]+$`)
)

// space is the whitespace class shared by every Strip step. It covers what
// JavaScript's \s covers.
const space = `[\s\v\p{Z}\x{FEFF}]`

var (
	edgeSpaceRE  = regexp.MustCompile(`^` + space + `+|` + space + `+$`)
	spaceRunRE   = regexp.MustCompile(space + `{2,}`)
	spacePunctRE = regexp.MustCompile(space + `+([,.;:!?])`)
)

// Span locates one token in a text. Start and End are byte offsets, [Start, End).
type Span struct {
	Start      int
	End        int
	Identifier string
}

// Format returns the token text for id.
func Format(id string) string {
	return Open + id + Close
}

// IsIdentifier reports whether s is a syntactically valid identifier.
func IsIdentifier(s string) bool {
	return identifierRE.MatchString(s)
}

// Find returns all non-overlapping tokens in text, left to right.
func Find(text string) []Span {
	matches := tokenRE.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]Span, 0, len(matches))
	for _, m := range matches {
		out = append(out, Span{Start: m[0], End: m[1], Identifier: text[m[2]:m[3]]})
	}
	return out
}

// Set is a set of identifiers.
type Set map[string]struct{}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Len() int { return len(s) }

// Sorted returns the identifiers in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Identifiers returns the set of identifiers used by tokens in text.
func Identifiers(text string) Set {
	used := Set{}
	for _, m := range tokenRE.FindAllStringSubmatch(text, -1) {
		if m[1] != "" {
			used[m[1]] = struct{}{}
		}
	}
	return used
}

// Contains reports whether text holds a token for id.
func Contains(text, id string) bool {
	if !strings.Contains(text, Open+id+Close) {
		return false
	}
	return Identifiers(text).Has(id)
}

// Strip removes every token from text and tidies the whitespace left behind:
// edges are trimmed, runs of whitespace become a single space, and
// whitespace before , . ; : ! ? is dropped.
//
// Strip is idempotent and its result never contains a token.
func Strip(text string) string {
	// Removing a token can splice its neighbours into a new one
	// ("{{A{{B}}}}" -> "{{A}}"), so repeat until nothing matches.
	for tokenRE.MatchString(text) {
		text = tokenRE.ReplaceAllString(text, "")
	}
	text = edgeSpaceRE.ReplaceAllString(text, "")
	text = spaceRunRE.ReplaceAllString(text, " ")
	text = spacePunctRE.ReplaceAllString(text, "$1")
	return edgeSpaceRE.ReplaceAllString(text, "")
}
