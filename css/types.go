package css

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Declaration is a single "property: value" pair. Value is kept as raw text,
// typed interpretation happens when cascade applies it.
type Declaration struct {
	Property  string // lower-cased
	Value     string
	Important bool // "!important" was present and stripped from Value
}

func (d Declaration) String() string {
	if d.Important {
		return d.Property + ": " + d.Value + " !important"
	}
	return d.Property + ": " + d.Value
}

// Rule is a selector with declarations in source order. Grouped selectors
// ("h1, h2") produce separate rules sharing the same declarations.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Property returns value of the last declaration of the property.
func (r Rule) Property(name string) (string, bool) {
	name = strings.ToLower(name)
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == name {
			return r.Declarations[i].Value, true
		}
	}
	return "", false
}

// Stylesheet is ordered list of rules, order is significant for cascade.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string // things which were skipped or not understood
}

// Merge concatenates rules of all sheets in order given. Nil sheets are
// skipped.
func Merge(sheets ...*Stylesheet) *Stylesheet {
	res := &Stylesheet{}
	for _, s := range sheets {
		if s == nil {
			continue
		}
		res.Rules = append(res.Rules, s.Rules...)
		res.Warnings = append(res.Warnings, s.Warnings...)
	}
	return res
}

// RulesBySelector returns all rules with exactly this selector text.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, r := range s.Rules {
		if r.Selector == selector {
			matches = append(matches, r)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing
// io.WriterTo. Declarations keep their original order.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := range s.Rules {
		if i > 0 {
			n, err := io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := writeRule(w, &s.Rules[i])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeRule(w io.Writer, rule *Rule) (int, error) {
	total, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err := fmt.Fprintf(w, "  %s;\n", d)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err := io.WriteString(w, "}\n")
	return total + n, err
}

// ErrSyntax is wrapped by every ParseError.
var ErrSyntax = errors.New("stylesheet syntax error")

// ParseError describes a single problem in stylesheet text. Callers are
// expected to treat it as fatal.
type ParseError struct {
	Source string // name of the stylesheet, may be empty
	Line   int    // 1-based, 0 when unknown
	Msg    string
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrSyntax.Error())
	if e.Source != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Source)
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, " at line %d", e.Line)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Msg)
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}
