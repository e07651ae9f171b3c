package markup

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// ParseHTML reads HTML document. Input encoding is detected from BOM and meta
// tags, UTF-8 is assumed otherwise.
func (p *Parser) ParseHTML(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Msg: "unable to read HTML", Err: err}
	}
	if p.checkBalance {
		if err := checkTagBalance(data); err != nil {
			return nil, err
		}
	}

	var ur io.Reader
	if p.enc != nil {
		ur = p.enc.NewDecoder().Reader(bytes.NewReader(data))
	} else if ur, err = charset.NewReader(bytes.NewReader(data), "text/html"); err != nil {
		return nil, &ParseError{Msg: "unable to detect HTML encoding", Err: err}
	}
	root, err := html.Parse(ur)
	if err != nil {
		return nil, &ParseError{Msg: "unable to parse HTML", Err: err}
	}

	doc := newDocument()
	var body *html.Node
	walkHTML(root, func(n *html.Node) {
		switch {
		case n.DataAtom == atom.Style:
			doc.Stylesheets = append(doc.Stylesheets, htmlText(n, false))
		case n.DataAtom == atom.Body && body == nil:
			body = n
		}
	})
	if body == nil {
		return nil, &ParseError{Msg: "document has no body"}
	}

	b := &builder{p: p, doc: doc}
	for _, c := range (htmlNode{body}).Children() {
		if reportable(c) {
			doc.Roots = append(doc.Roots, b.build(c))
		}
	}
	p.log.Debug("Parsed HTML", zap.Int("roots", len(doc.Roots)), zap.Int("elements", doc.Elements()), zap.Int("stylesheets", len(doc.Stylesheets)))
	return doc, nil
}

func walkHTML(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHTML(c, fn)
	}
}

// htmlText concatenates text nodes, recursive when deep is set.
func htmlText(n *html.Node, deep bool) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			sb.WriteString(c.Data)
		case deep && c.Type == html.ElementNode:
			sb.WriteString(htmlText(c, true))
		}
	}
	return sb.String()
}

type htmlNode struct {
	n *html.Node
}

func (h htmlNode) Tag() string { return h.n.Data }

func (h htmlNode) Attrs() []attr {
	res := make([]attr, 0, len(h.n.Attr))
	for _, a := range h.n.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = fmt.Sprintf("%s:%s", a.Namespace, a.Key)
		}
		res = append(res, attr{Key: key, Val: a.Val})
	}
	return res
}

func (h htmlNode) OwnText() string { return htmlText(h.n, false) }

func (h htmlNode) HasText() bool {
	return strings.TrimSpace(htmlText(h.n, true)) != ""
}

func (h htmlNode) Children() []node {
	var res []node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			res = append(res, htmlNode{c})
		}
	}
	return res
}
