package dom

import (
	"iter"
	"strings"
)

// InlineStyle is insertion ordered property -> raw value mapping coming from
// element "style" attribute. Property names are stored lower-cased.
type InlineStyle struct {
	keys   []string
	values map[string]string
}

// Set records property value. Setting existing property replaces its value
// but keeps original position.
func (s *InlineStyle) Set(property, value string) {
	property = strings.ToLower(strings.TrimSpace(property))
	if property == "" {
		return
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[property]; !ok {
		s.keys = append(s.keys, property)
	}
	s.values[property] = value
}

func (s *InlineStyle) Get(property string) (string, bool) {
	v, ok := s.values[strings.ToLower(property)]
	return v, ok
}

func (s *InlineStyle) Len() int {
	return len(s.keys)
}

// All iterates over properties in insertion order.
func (s *InlineStyle) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range s.keys {
			if !yield(k, s.values[k]) {
				return
			}
		}
	}
}

// String renders mapping back as style attribute value.
func (s *InlineStyle) String() string {
	var sb strings.Builder
	for k, v := range s.All() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(v)
		sb.WriteByte(';')
	}
	return sb.String()
}
