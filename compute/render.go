package compute

import (
	"io"

	yaml "gopkg.in/yaml.v3"

	"github.com/ny-haritina10/pdf-generator/cascade"
	"github.com/ny-haritina10/pdf-generator/utils/debug"
)

type record struct {
	Path  string    `yaml:"path"`
	Depth int       `yaml:"depth"`
	Text  string    `yaml:"text,omitempty"`
	Style yaml.Node `yaml:"style"`
}

// styleNode keeps properties in their fixed order, plain map would be
// sorted by key.
func styleNode(r cascade.Resolved) yaml.Node {
	n := yaml.Node{Kind: yaml.MappingNode}
	for _, p := range r.Style.Properties() {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Value},
		)
	}
	return n
}

func renderYAML(w io.Writer, resolved []cascade.Resolved) error {
	records := make([]record, 0, len(resolved))
	for _, r := range resolved {
		records = append(records, record{
			Path:  r.Path,
			Depth: r.Depth,
			Text:  r.Element.Text,
			Style: styleNode(r),
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}

func renderTree(w io.Writer, resolved []cascade.Resolved) error {
	tw := debug.NewTreeWriter()
	for _, r := range resolved {
		tw.Line(r.Depth, "<%s>", r.Element.Label())
		if r.Element.HasText() {
			tw.Text(r.Depth+1, "text", r.Element.Text)
		}
		props := r.Style.Properties()
		fields := make([]debug.Field, 0, len(props))
		for _, p := range props {
			fields = append(fields, debug.Field{Key: p.Name, Value: p.Value})
		}
		tw.Fields(r.Depth+1, fields...)
	}
	_, err := tw.WriteTo(w)
	return err
}
