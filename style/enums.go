package style

//go:generate go tool go-enum --nocase --marshal --names --mustparse

// ENUM(static, relative, absolute, fixed)
type Position int

// Bolder is kept so computed style can name every keyword, values coming
// from style sheets never produce it.
// ENUM(normal, bold, lighter, bolder)
type FontWeight int

// ENUM(normal, italic, oblique)
type FontStyle int

// ENUM(left, right, center, justify)
type TextAlign int

// ENUM(none, underline, overline, line-through)
type TextDecoration int

// FontWeightFromCSS maps bold and bolder to bold, lighter to lighter and
// anything else (numeric weights included) to normal.
func FontWeightFromCSS(s string) FontWeight {
	w, err := ParseFontWeight(s)
	switch {
	case err != nil:
		return FontWeightNormal
	case w == FontWeightBolder:
		return FontWeightBold
	default:
		return w
	}
}

// TextAlignFromCSS returns left for anything it does not recognize.
func TextAlignFromCSS(s string) TextAlign {
	a, err := ParseTextAlign(s)
	if err != nil {
		return TextAlignLeft
	}
	return a
}

func FontStyleFromCSS(s string) FontStyle {
	v, err := ParseFontStyle(s)
	if err != nil {
		return FontStyleNormal
	}
	return v
}

func TextDecorationFromCSS(s string) TextDecoration {
	v, err := ParseTextDecoration(s)
	if err != nil {
		return TextDecorationNone
	}
	return v
}

func PositionFromCSS(s string) Position {
	v, err := ParsePosition(s)
	if err != nil {
		return PositionStatic
	}
	return v
}
