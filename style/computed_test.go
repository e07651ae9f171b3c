package style

import "testing"

func TestNewComputed_Defaults(t *testing.T) {
	c := NewComputed()

	for name, l := range map[string]Length{
		"width": c.Width, "height": c.Height, "min-width": c.MinWidth, "max-width": c.MaxWidth,
		"top": c.Top, "right": c.Right, "bottom": c.Bottom, "left": c.Left, "z-index": c.ZIndex,
	} {
		if l != Px(0) {
			t.Errorf("%s = %v, want 0px", name, l)
		}
	}
	if c.Position != PositionStatic {
		t.Errorf("Position = %v", c.Position)
	}
	if c.FontFamily != "Arial" {
		t.Errorf("FontFamily = %q", c.FontFamily)
	}
	if c.FontSize != Pt(10) {
		t.Errorf("FontSize = %v", c.FontSize)
	}
	if c.FontWeight != FontWeightNormal || c.FontStyle != FontStyleNormal {
		t.Errorf("font weight/style = %v/%v", c.FontWeight, c.FontStyle)
	}
	if c.Color != Black {
		t.Errorf("Color = %v", c.Color)
	}
	if c.Padding != (Box{}) || c.Margin != (Box{}) {
		t.Errorf("Padding/Margin = %v/%v", c.Padding, c.Margin)
	}
	if c.Border != (Border{0, "none", Black}) {
		t.Errorf("Border = %v", c.Border)
	}
	if c.BackgroundColor != White {
		t.Errorf("BackgroundColor = %v", c.BackgroundColor)
	}
	if c.TextAlign != TextAlignLeft || c.TextDecoration != TextDecorationNone {
		t.Errorf("text = %v/%v", c.TextAlign, c.TextDecoration)
	}
	if c.LineHeight != Em(1.2) {
		t.Errorf("LineHeight = %v", c.LineHeight)
	}
	if c.Display != "inline" {
		t.Errorf("Display = %q", c.Display)
	}
}

func TestComputed_Properties(t *testing.T) {
	c := NewComputed()
	c.Color = Red

	props := c.Properties()
	if len(props) != 23 {
		t.Fatalf("Properties() returned %d entries", len(props))
	}
	seen := make(map[string]string)
	for _, p := range props {
		if _, dup := seen[p.Name]; dup {
			t.Errorf("duplicate property %q", p.Name)
		}
		seen[p.Name] = p.Value
	}
	if seen["color"] != "#ff0000" {
		t.Errorf("color = %q", seen["color"])
	}
	if seen["font-size"] != "10pt" || seen["line-height"] != "1.2em" {
		t.Errorf("font-size = %q line-height = %q", seen["font-size"], seen["line-height"])
	}
	if seen["border"] != "0px none #000000" {
		t.Errorf("border = %q", seen["border"])
	}
}
