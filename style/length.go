// Package style defines typed style values, the computed style record and
// total parsers turning declaration text into values.
package style

import (
	"strconv"
	"strings"
)

type Unit int

const (
	UnitPX Unit = iota
	UnitPT
	UnitEM
	UnitPercent
	UnitCM
	UnitMM
	UnitIN
)

var unitNames = [...]string{
	UnitPX:      "px",
	UnitPT:      "pt",
	UnitEM:      "em",
	UnitPercent: "%",
	UnitCM:      "cm",
	UnitMM:      "mm",
	UnitIN:      "in",
}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// Length is a numeric value with unit.
type Length struct {
	Value float64
	Unit  Unit
}

func Px(v float64) Length { return Length{Value: v, Unit: UnitPX} }
func Pt(v float64) Length { return Length{Value: v, Unit: UnitPT} }
func Em(v float64) Length { return Length{Value: v, Unit: UnitEM} }

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit.String()
}

// ParseLength never fails. Everything except digits and dots is dropped
// before parsing the number, so sign and any garbage are lost. Unit is
// decided by presence of "px" or "pt" in the original text, px otherwise.
// Unparsable number gives 0px.
func ParseLength(s string) Length {
	num := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Px(0)
	}
	switch {
	case strings.Contains(s, "px"):
		return Px(v)
	case strings.Contains(s, "pt"):
		return Pt(v)
	default:
		return Px(v)
	}
}
