// Package markup builds element trees from HTML and XHTML documents.
package markup

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"github.com/ny-haritina10/pdf-generator/css"
	"github.com/ny-haritina10/pdf-generator/dom"
)

// Document is the result of markup parsing.
type Document struct {
	// Roots are reportable top-level elements of the document body.
	Roots []*dom.Element
	// InlineByID maps id of every element having one to the raw value of its
	// style attribute (empty when there is none).
	InlineByID map[string]string
	// Stylesheets has text of <style> elements in document order.
	Stylesheets []string
}

// Elements returns number of elements in all trees.
func (d *Document) Elements() int {
	n := 0
	for _, r := range d.Roots {
		r.Walk(func(*dom.Element, int) bool {
			n++
			return true
		})
	}
	return n
}

// ErrMalformed is wrapped by every ParseError.
var ErrMalformed = errors.New("malformed markup")

type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return ErrMalformed.Error() + ": " + e.Msg + ": " + e.Err.Error()
	}
	return ErrMalformed.Error() + ": " + e.Msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformed, e.Err}
	}
	return []error{ErrMalformed}
}

// Parser turns markup into Document.
type Parser struct {
	log          *zap.Logger
	css          *css.Parser
	checkBalance bool
	enc          encoding.Encoding // forced input encoding, nil to detect
}

type Option func(*Parser)

// WithTagBalanceCheck rejects documents which have more opening than closing
// tags, void and self-closed elements are not counted.
func WithTagBalanceCheck() Option {
	return func(p *Parser) {
		p.checkBalance = true
	}
}

// WithEncoding disables encoding detection and decodes input with enc.
func WithEncoding(enc encoding.Encoding) Option {
	return func(p *Parser) {
		p.enc = enc
	}
}

func NewParser(log *zap.Logger, opts ...Option) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{
		log: log.Named("markup"),
		css: css.NewParser(log),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// node hides differences between HTML and XML trees.
type node interface {
	Tag() string
	Attrs() []attr
	OwnText() string
	Children() []node
	// HasText reports non-blank text anywhere in the subtree.
	HasText() bool
}

type attr struct {
	Key, Val string
}

// skipped elements never make it into the tree.
var skipped = map[string]bool{
	"script": true, "style": true, "meta": true, "link": true,
	"head": true, "title": true, "template": true,
}

// reportable keeps elements with text, element children or which are not
// blocks. Empty blocks carry nothing to report.
func reportable(n node) bool {
	tag := strings.ToLower(n.Tag())
	if skipped[tag] {
		return false
	}
	return n.HasText() || len(n.Children()) > 0 || !dom.IsBlockTag(tag)
}

type builder struct {
	p   *Parser
	doc *Document
}

func (b *builder) build(n node) *dom.Element {
	el := dom.NewElement(strings.ToLower(n.Tag()))

	for _, a := range n.Attrs() {
		el.SetAttr(a.Key, a.Val)
		switch a.Key {
		case "id":
			el.ID = strings.TrimSpace(a.Val)
		case "class":
			el.AddClass(strings.Fields(a.Val)...)
		case "style":
			for _, d := range b.p.css.ParseInline(a.Val) {
				el.SetInlineStyle(d.Property, d.Value)
			}
		}
	}
	if el.ID != "" {
		b.doc.InlineByID[el.ID] = el.Attr("style", "")
	}
	el.Text = collapse(n.OwnText())

	for _, c := range n.Children() {
		if !reportable(c) {
			b.p.log.Debug("Skipping element", zap.String("tag", c.Tag()), zap.String("parent", el.Tag))
			continue
		}
		el.AppendChild(b.build(c))
	}
	return el
}

func newDocument() *Document {
	return &Document{InlineByID: make(map[string]string)}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
