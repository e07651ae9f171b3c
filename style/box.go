package style

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Box holds four edge values (padding, margin). Units are not kept.
type Box struct {
	Top, Right, Bottom, Left float64
}

func (b Box) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return f(b.Top) + " " + f(b.Right) + " " + f(b.Bottom) + " " + f(b.Left)
}

// ParseBox handles 1, 2 and 4 value shorthand. Any other number of values
// results in all zero box.
func ParseBox(s string) Box {
	parts := strings.Fields(s)
	v := make([]float64, len(parts))
	for i, p := range parts {
		v[i] = ParseLength(p).Value
	}
	switch len(v) {
	case 1:
		return Box{v[0], v[0], v[0], v[0]}
	case 2:
		return Box{v[0], v[1], v[0], v[1]}
	case 4:
		return Box{v[0], v[1], v[2], v[3]}
	default:
		return Box{}
	}
}

// Border is border shorthand value.
type Border struct {
	Width float64
	Style string
	Color Color
}

func DefaultBorder() Border {
	return Border{Style: "none", Color: Black}
}

func (b Border) String() string {
	return strconv.FormatFloat(b.Width, 'f', -1, 64) + "px " + b.Style + " " + b.Color.String()
}

var borderStyles = map[string]bool{
	"none": true, "hidden": true, "solid": true, "dashed": true, "dotted": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

// ParseBorder understands "width style color" shorthand in any order. Parts
// which are absent keep default values.
func ParseBorder(s string, log *zap.Logger) Border {
	b := DefaultBorder()
	for _, part := range splitOutsideParens(s) {
		lp := strings.ToLower(part)
		switch {
		case borderStyles[lp]:
			b.Style = lp
		case lp != "" && (lp[0] >= '0' && lp[0] <= '9' || lp[0] == '.'):
			b.Width = ParseLength(lp).Value
		case lp == "thin":
			b.Width = 1
		case lp == "medium":
			b.Width = 3
		case lp == "thick":
			b.Width = 5
		default:
			b.Color = ParseColor(part, log)
		}
	}
	return b
}

// splitOutsideParens splits on whitespace not enclosed in parentheses, so
// rgb(1, 2, 3) stays single part.
func splitOutsideParens(s string) []string {
	var (
		parts []string
		depth int
		start = -1
	)
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth = max(depth-1, 0)
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'):
			if start >= 0 {
				parts = append(parts, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		parts = append(parts, s[start:])
	}
	return parts
}
