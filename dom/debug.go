package dom

import (
	"github.com/ny-haritina10/pdf-generator/utils/debug"
)

// String returns indented dump of element subtree.
func (e *Element) String() string {
	tw := debug.NewTreeWriter()
	e.Dump(tw, 0)
	return tw.String()
}

// Dump writes element subtree into tree writer starting at depth.
func (e *Element) Dump(tw *debug.TreeWriter, depth int) {
	e.Walk(func(el *Element, d int) bool {
		tw.Line(depth+d, "<%s>", el.Label())
		for _, name := range el.Attrs() {
			if name == "id" || name == "class" || name == "style" {
				continue
			}
			tw.Line(depth+d+1, "@%s=%q", name, el.attrs[name])
		}
		if el.inline.Len() > 0 {
			tw.Line(depth+d+1, "style: %s", el.inline.String())
		}
		if el.HasText() {
			tw.Text(depth+d+1, "text", el.Text)
		}
		return true
	})
}
