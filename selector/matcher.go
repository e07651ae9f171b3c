// Package selector decides whether a selector applies to an element.
//
// Supported forms are deliberately small: tag, #id, .class and [attr] simple
// selectors, descendant chains of simple selectors separated by whitespace
// and a single child combinator "a > b". Compound simple selectors (p.note)
// are not recognized and compare as tag names.
package selector

import (
	"regexp"
	"strings"

	"github.com/ny-haritina10/pdf-generator/dom"
)

var reChild = regexp.MustCompile(`\s*>\s*`)

// Match reports whether selector applies to element. It never fails, any
// selector it does not understand simply does not match.
func Match(el *dom.Element, selector string) bool {
	if el == nil {
		return false
	}
	if strings.Contains(selector, ">") {
		return matchChild(el, selector)
	}

	parts := strings.Fields(selector)
	switch len(parts) {
	case 0:
		return false
	case 1:
		return MatchSimple(el, parts[0])
	default:
		return matchDescendant(el, parts)
	}
}

// MatchSimple checks single simple selector against element.
func MatchSimple(el *dom.Element, sel string) bool {
	switch {
	case strings.HasPrefix(sel, "#"):
		id := sel[1:]
		return id != "" && el.ID == id
	case strings.HasPrefix(sel, "."):
		return el.HasClass(sel[1:])
	case strings.Contains(sel, "["):
		return el.HasAttr(strings.NewReplacer("[", "", "]", "").Replace(sel))
	default:
		return strings.EqualFold(el.Tag, sel)
	}
}

// matchChild handles "parent > child", anything but exactly two parts does
// not match.
func matchChild(el *dom.Element, sel string) bool {
	parts := reChild.Split(strings.TrimSpace(sel), -1)
	if len(parts) != 2 {
		return false
	}
	parent := el.Parent()
	return parent != nil && MatchSimple(el, parts[1]) && MatchSimple(parent, parts[0])
}

// matchDescendant walks from element up the ancestors chain matching parts
// from right to left. Every part must match next consecutive ancestor, there
// is no skipping of intermediate elements.
func matchDescendant(el *dom.Element, parts []string) bool {
	cur := el
	for i := len(parts) - 1; i >= 0; i-- {
		if cur == nil || !MatchSimple(cur, parts[i]) {
			return false
		}
		cur = cur.Parent()
		if cur == nil && i > 0 {
			return false
		}
	}
	return true
}
