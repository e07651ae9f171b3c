package cascade

import (
	"github.com/ny-haritina10/pdf-generator/css"
	"github.com/ny-haritina10/pdf-generator/dom"
	"github.com/ny-haritina10/pdf-generator/style"
)

// Resolved is computed style of a single element.
type Resolved struct {
	Element *dom.Element
	Depth   int
	Path    string // readable chain of element labels from the root
	Style   *style.Computed
}

// ComputeTree resolves every element of the trees in document order, parents
// before children. Each element gets its own record, nothing is inherited.
func (a *Analyzer) ComputeTree(roots []*dom.Element, rules []css.Rule) []Resolved {
	var res []Resolved
	for _, root := range roots {
		root.Walk(func(el *dom.Element, depth int) bool {
			res = append(res, Resolved{Element: el, Depth: depth, Path: el.Path(), Style: a.ComputeStyle(el, rules)})
			return true
		})
	}
	return res
}
