package style

// Computed is fully resolved style of a single element. Every field always
// holds a value, NewComputed fills defaults.
type Computed struct {
	Width    Length
	Height   Length
	MinWidth Length
	MaxWidth Length

	Position Position
	Top      Length
	Right    Length
	Bottom   Length
	Left     Length
	ZIndex   Length

	FontFamily string
	FontSize   Length
	FontWeight FontWeight
	FontStyle  FontStyle
	Color      Color

	Padding         Box
	Margin          Box
	Border          Border
	BackgroundColor Color

	TextAlign      TextAlign
	TextDecoration TextDecoration
	LineHeight     Length

	Display string
}

func NewComputed() *Computed {
	return &Computed{
		Position:        PositionStatic,
		FontFamily:      "Arial",
		FontSize:        Pt(10),
		FontWeight:      FontWeightNormal,
		FontStyle:       FontStyleNormal,
		Color:           Black,
		Border:          DefaultBorder(),
		BackgroundColor: White,
		TextAlign:       TextAlignLeft,
		TextDecoration:  TextDecorationNone,
		LineHeight:      Em(1.2),
		Display:         "inline",
	}
}

// Property is a named rendering of a single computed value.
type Property struct {
	Name  string
	Value string
}

// Properties returns all values rendered as text using CSS property names in
// stable order.
func (c *Computed) Properties() []Property {
	return []Property{
		{"display", c.Display},
		{"position", c.Position.String()},
		{"top", c.Top.String()},
		{"right", c.Right.String()},
		{"bottom", c.Bottom.String()},
		{"left", c.Left.String()},
		{"z-index", c.ZIndex.String()},
		{"width", c.Width.String()},
		{"height", c.Height.String()},
		{"min-width", c.MinWidth.String()},
		{"max-width", c.MaxWidth.String()},
		{"margin", c.Margin.String()},
		{"padding", c.Padding.String()},
		{"border", c.Border.String()},
		{"font-family", c.FontFamily},
		{"font-size", c.FontSize.String()},
		{"font-weight", c.FontWeight.String()},
		{"font-style", c.FontStyle.String()},
		{"color", c.Color.String()},
		{"background-color", c.BackgroundColor.String()},
		{"text-align", c.TextAlign.String()},
		{"text-decoration", c.TextDecoration.String()},
		{"line-height", c.LineHeight.String()},
	}
}
