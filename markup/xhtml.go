package markup

import (
	"bytes"
	"io"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// entities known to XHTML but not to XML, documents produced by hand often
// use them.
var entities = map[string]string{
	"nbsp":   "\u00a0",
	"copy":   "©",
	"reg":    "®",
	"trade":  "™",
	"laquo":  "«",
	"raquo":  "»",
	"ndash":  "–",
	"mdash":  "—",
	"hellip": "…",
	"euro":   "€",
	"deg":    "°",
	"times":  "×",
}

// ParseXHTML reads XHTML (or any well formed XML markup). When document has
// no body element its root element is used as the only tree root.
func (p *Parser) ParseXHTML(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Msg: "unable to read XHTML", Err: err}
	}
	if p.checkBalance {
		if err := checkTagBalance(data); err != nil {
			return nil, err
		}
	}

	var in io.Reader = bytes.NewReader(data)
	xd := etree.NewDocument()
	xd.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Entity:        entities,
		Permissive:    true,
	}
	if p.enc != nil {
		// declared encoding is ignored, input is already decoded
		in = p.enc.NewDecoder().Reader(in)
		xd.ReadSettings.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) { return r, nil }
	}
	if _, err := xd.ReadFrom(in); err != nil {
		return nil, &ParseError{Msg: "unable to parse XHTML", Err: err}
	}
	root := xd.Root()
	if root == nil {
		return nil, &ParseError{Msg: "document has no root element"}
	}

	doc := newDocument()
	for _, st := range root.FindElements("//style") {
		doc.Stylesheets = append(doc.Stylesheets, st.Text())
	}

	b := &builder{p: p, doc: doc}
	if body := root.FindElement("//body"); body != nil {
		for _, c := range (xmlNode{body}).Children() {
			if reportable(c) {
				doc.Roots = append(doc.Roots, b.build(c))
			}
		}
	} else if rn := (xmlNode{root}); reportable(rn) {
		doc.Roots = append(doc.Roots, b.build(rn))
	}
	p.log.Debug("Parsed XHTML", zap.Int("roots", len(doc.Roots)), zap.Int("elements", doc.Elements()), zap.Int("stylesheets", len(doc.Stylesheets)))
	return doc, nil
}

type xmlNode struct {
	el *etree.Element
}

func (x xmlNode) Tag() string { return x.el.Tag }

func (x xmlNode) Attrs() []attr {
	res := make([]attr, 0, len(x.el.Attr))
	for _, a := range x.el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		res = append(res, attr{Key: a.FullKey(), Val: a.Value})
	}
	return res
}

func (x xmlNode) OwnText() string {
	var sb strings.Builder
	for _, tok := range x.el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return sb.String()
}

func (x xmlNode) HasText() bool {
	var deep func(el *etree.Element) bool
	deep = func(el *etree.Element) bool {
		for _, tok := range el.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				if strings.TrimSpace(t.Data) != "" {
					return true
				}
			case *etree.Element:
				if deep(t) {
					return true
				}
			}
		}
		return false
	}
	return deep(x.el)
}

func (x xmlNode) Children() []node {
	var res []node
	for _, c := range x.el.ChildElements() {
		res = append(res, xmlNode{c})
	}
	return res
}
