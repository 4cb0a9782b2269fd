package core

import "strings"

// MatchMode decides whether a tab accepts an input line. Exactly two
// implementations exist: MatchAll and MatchContains. Keeping the mode a
// closed set of types keeps Matches total; there is no "no pattern" state.
type MatchMode interface {
	Matches(line string) bool
}

type matchAll struct{}

func (matchAll) Matches(string) bool { return true }

type matchContains struct {
	pattern string
}

func (m matchContains) Matches(line string) bool {
	return strings.Contains(line, m.pattern)
}

// MatchAll accepts every line, including the empty line.
func MatchAll() MatchMode { return matchAll{} }

// MatchContains accepts lines containing pattern as a literal,
// case-sensitive substring.
func MatchContains(pattern string) MatchMode { return matchContains{pattern: pattern} }

// IsAcceptAll reports whether mode is the accept-everything mode.
func IsAcceptAll(mode MatchMode) bool {
	_, ok := mode.(matchAll)
	return ok
}
