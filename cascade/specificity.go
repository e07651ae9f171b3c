package cascade

//go:generate go tool go-enum --nocase --marshal --names --mustparse

import (
	"regexp"
	"strings"
)

var reTagOnly = regexp.MustCompile(`^[a-zA-Z]+$`)

// Specificity scores selector text. It is intentionally coarse: presence of
// "#" adds 100, presence of "." adds 10 and a bare tag name adds 1. Number of
// occurrences does not matter.
func Specificity(selector string) int {
	score := 0
	if strings.Contains(selector, "#") {
		score += 100
	}
	if strings.Contains(selector, ".") {
		score += 10
	}
	if reTagOnly.MatchString(selector) {
		score++
	}
	return score
}

// Order controls direction in which matched rules are applied. With
// descending order most specific rules are applied first, so less specific
// rules applied later overwrite them. Ascending order applies most specific
// rules last, so they win.
// ENUM(descending, ascending)
type Order int
