// Package dom is the read-only element tree styles are resolved against.
package dom

import (
	"slices"
	"strings"
)

// Element is a single markup element. Trees are assembled once with
// AppendChild and friends and are not modified afterwards.
type Element struct {
	Tag  string
	ID   string // empty when element has no identifier
	Text string // own text, without descendants

	classes  []string
	attrs    map[string]string
	inline   InlineStyle
	children []*Element
	parent   *Element
}

func NewElement(tag string) *Element {
	return &Element{Tag: tag, attrs: make(map[string]string)}
}

// NewTextElement returns span carrying text.
func NewTextElement(text string) *Element {
	el := NewElement("span")
	el.Text = text
	return el
}

// NewContainer returns element with no text to be filled with children.
func NewContainer(tag string) *Element {
	return NewElement(tag)
}

// AppendChild adds child to the end of children list and sets its parent.
// Returns child for chaining.
func (e *Element) AppendChild(child *Element) *Element {
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// AddClass adds class names, duplicates and empty names are ignored.
func (e *Element) AddClass(names ...string) *Element {
	for _, name := range names {
		if name == "" || slices.Contains(e.classes, name) {
			continue
		}
		e.classes = append(e.classes, name)
	}
	return e
}

func (e *Element) SetAttr(name, value string) *Element {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
	return e
}

// SetInlineStyle records inline style property, see InlineStyle.Set.
func (e *Element) SetInlineStyle(property, value string) *Element {
	e.inline.Set(property, value)
	return e
}

// Parent returns nil for roots.
func (e *Element) Parent() *Element {
	return e.parent
}

func (e *Element) Children() []*Element {
	return e.children
}

func (e *Element) HasChildren() bool {
	return len(e.children) > 0
}

// ChildrenByTag returns direct children with any of requested tags (case
// insensitive) in document order.
func (e *Element) ChildrenByTag(tags ...string) []*Element {
	var res []*Element
	for _, c := range e.children {
		for _, t := range tags {
			if strings.EqualFold(c.Tag, t) {
				res = append(res, c)
				break
			}
		}
	}
	return res
}

func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Classes returns class names in order they were first added.
func (e *Element) Classes() []string {
	return e.classes
}

func (e *Element) HasAttr(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// Attr returns attribute value or def when attribute is absent.
func (e *Element) Attr(name, def string) string {
	if v, ok := e.attrs[name]; ok {
		return v
	}
	return def
}

// Attrs returns attribute names in sorted order.
func (e *Element) Attrs() []string {
	names := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// HasText reports presence of non-blank own text.
func (e *Element) HasText() bool {
	return strings.TrimSpace(e.Text) != ""
}

func (e *Element) InlineStyle() *InlineStyle {
	return &e.inline
}

// Walk visits element and its descendants depth first, parents before
// children. Returning false from fn skips element's subtree.
func (e *Element) Walk(fn func(el *Element, depth int) bool) {
	e.walk(fn, 0)
}

func (e *Element) walk(fn func(el *Element, depth int) bool, depth int) {
	if !fn(e, depth) {
		return
	}
	for _, c := range e.children {
		c.walk(fn, depth+1)
	}
}

// Label is short css-like element description: tag#id.class1.class2
func (e *Element) Label() string {
	var sb strings.Builder
	sb.WriteString(e.Tag)
	if e.ID != "" {
		sb.WriteByte('#')
		sb.WriteString(e.ID)
	}
	for _, c := range e.classes {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	return sb.String()
}

// Path returns labels of element ancestors and element itself joined with
// " > ", root first.
func (e *Element) Path() string {
	var labels []string
	for cur := e; cur != nil; cur = cur.parent {
		labels = append(labels, cur.Label())
	}
	slices.Reverse(labels)
	return strings.Join(labels, " > ")
}
