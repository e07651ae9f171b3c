package cascade

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ny-haritina10/pdf-generator/style"
)

// setter applies raw declaration value to the computed style.
type setter func(cs *style.Computed, value string, log *zap.Logger)

var coreProperties = map[string]setter{
	"font-family": func(cs *style.Computed, v string, _ *zap.Logger) { cs.FontFamily = v },
	"font-size":   func(cs *style.Computed, v string, _ *zap.Logger) { cs.FontSize = style.ParseLength(v) },
	"color":       func(cs *style.Computed, v string, log *zap.Logger) { cs.Color = style.ParseColor(v, log) },
	"width":       func(cs *style.Computed, v string, _ *zap.Logger) { cs.Width = style.ParseLength(v) },
	"height":      func(cs *style.Computed, v string, _ *zap.Logger) { cs.Height = style.ParseLength(v) },
	"margin":      func(cs *style.Computed, v string, _ *zap.Logger) { cs.Margin = style.ParseBox(v) },
	"padding":     func(cs *style.Computed, v string, _ *zap.Logger) { cs.Padding = style.ParseBox(v) },
	"font-weight": func(cs *style.Computed, v string, _ *zap.Logger) { cs.FontWeight = style.FontWeightFromCSS(v) },
	"text-align":  func(cs *style.Computed, v string, _ *zap.Logger) { cs.TextAlign = style.TextAlignFromCSS(v) },
}

var extendedProperties = map[string]setter{
	"font-style":       func(cs *style.Computed, v string, _ *zap.Logger) { cs.FontStyle = style.FontStyleFromCSS(v) },
	"text-decoration":  func(cs *style.Computed, v string, _ *zap.Logger) { cs.TextDecoration = style.TextDecorationFromCSS(v) },
	"background-color": func(cs *style.Computed, v string, log *zap.Logger) { cs.BackgroundColor = style.ParseColor(v, log) },
	"line-height":      func(cs *style.Computed, v string, _ *zap.Logger) { cs.LineHeight = style.ParseLength(v) },
	"position":         func(cs *style.Computed, v string, _ *zap.Logger) { cs.Position = style.PositionFromCSS(v) },
	"top":              func(cs *style.Computed, v string, _ *zap.Logger) { cs.Top = style.ParseLength(v) },
	"right":            func(cs *style.Computed, v string, _ *zap.Logger) { cs.Right = style.ParseLength(v) },
	"bottom":           func(cs *style.Computed, v string, _ *zap.Logger) { cs.Bottom = style.ParseLength(v) },
	"left":             func(cs *style.Computed, v string, _ *zap.Logger) { cs.Left = style.ParseLength(v) },
	"z-index":          func(cs *style.Computed, v string, _ *zap.Logger) { cs.ZIndex = style.ParseLength(v) },
	"min-width":        func(cs *style.Computed, v string, _ *zap.Logger) { cs.MinWidth = style.ParseLength(v) },
	"max-width":        func(cs *style.Computed, v string, _ *zap.Logger) { cs.MaxWidth = style.ParseLength(v) },
	"border":           func(cs *style.Computed, v string, log *zap.Logger) { cs.Border = style.ParseBorder(v, log) },
	"display": func(cs *style.Computed, v string, _ *zap.Logger) {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			cs.Display = v
		}
	},
}

// CoreProperties lists property names recognized without extensions.
func CoreProperties() []string {
	return sortedKeys(coreProperties)
}

// ExtendedProperties lists property names recognized only when
// WithExtendedProperties option is used.
func ExtendedProperties() []string {
	return sortedKeys(extendedProperties)
}
