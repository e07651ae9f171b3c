// Package cascade computes element styles from default values, matching
// author rules and inline declarations.
package cascade

import (
	"maps"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ny-haritina10/pdf-generator/css"
	"github.com/ny-haritina10/pdf-generator/dom"
	"github.com/ny-haritina10/pdf-generator/selector"
	"github.com/ny-haritina10/pdf-generator/style"
)

const (
	DefaultFontFamily = "Arial"
	DefaultFontSize   = "10pt"
)

// Analyzer resolves styles. It keeps no state between calls and may be used
// from multiple goroutines.
type Analyzer struct {
	log        *zap.Logger
	order      Order
	properties map[string]setter
	fontFamily string
	fontSize   style.Length
}

type Option func(*Analyzer)

// WithOrder sets direction in which matched rules are applied, default is
// OrderDescending.
func WithOrder(o Order) Option {
	return func(a *Analyzer) {
		a.order = o
	}
}

// WithExtendedProperties makes analyzer understand properties beyond the
// basic font, color, size and box set (see ExtendedProperties).
func WithExtendedProperties() Option {
	return func(a *Analyzer) {
		maps.Copy(a.properties, extendedProperties)
	}
}

// WithDefaultFont replaces font family and size set for every element before
// author rules are applied. Empty values keep built-in defaults.
func WithDefaultFont(family, size string) Option {
	return func(a *Analyzer) {
		if family != "" {
			a.fontFamily = family
		}
		if size != "" {
			a.fontSize = style.ParseLength(size)
		}
	}
}

func NewAnalyzer(log *zap.Logger, opts ...Option) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Analyzer{
		log:        log.Named("cascade"),
		order:      OrderDescending,
		properties: maps.Clone(coreProperties),
		fontFamily: DefaultFontFamily,
		fontSize:   style.ParseLength(DefaultFontSize),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ComputeStyle returns new style record for element with all cascade stages
// applied.
func (a *Analyzer) ComputeStyle(el *dom.Element, rules []css.Rule) *style.Computed {
	cs := style.NewComputed()
	a.ApplyCascade(el, rules, cs)
	return cs
}

// ApplyCascade applies, in order, defaults, matching rules and element inline
// declarations to cs. Every stage overwrites what previous stages set.
func (a *Analyzer) ApplyCascade(el *dom.Element, rules []css.Rule, cs *style.Computed) {
	a.applyDefaults(el, cs)
	a.applyRules(el, rules, cs)
	a.applyInline(el, cs)
}

func (a *Analyzer) applyDefaults(el *dom.Element, cs *style.Computed) {
	cs.FontFamily = a.fontFamily
	cs.FontSize = a.fontSize
	cs.Color = style.Black

	switch {
	case el.IsBlock():
		cs.Display = "block"
	case el.IsInline():
		cs.Display = "inline"
	}
}

func (a *Analyzer) applyRules(el *dom.Element, rules []css.Rule, cs *style.Computed) {
	matched := MatchingRules(el, rules, a.order)
	for _, r := range matched {
		for _, d := range r.Declarations {
			a.apply(cs, d.Property, d.Value)
		}
	}
}

func (a *Analyzer) applyInline(el *dom.Element, cs *style.Computed) {
	for prop, value := range el.InlineStyle().All() {
		a.apply(cs, prop, value)
	}
}

func (a *Analyzer) apply(cs *style.Computed, property, value string) {
	property = strings.ToLower(property)
	set, ok := a.properties[property]
	if !ok {
		a.log.Debug("Ignoring unsupported property", zap.String("property", property), zap.String("value", value))
		return
	}
	set(cs, value, a.log)
}

// MatchingRules returns rules with selectors matching element, stable sorted
// by specificity in requested order.
func MatchingRules(el *dom.Element, rules []css.Rule, order Order) []css.Rule {
	var matched []css.Rule
	for _, r := range rules {
		if selector.Match(el, r.Selector) {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		si, sj := Specificity(matched[i].Selector), Specificity(matched[j].Selector)
		if order == OrderAscending {
			return si < sj
		}
		return si > sj
	})
	return matched
}

func sortedKeys(m map[string]setter) []string {
	return slices.Sorted(maps.Keys(m))
}
