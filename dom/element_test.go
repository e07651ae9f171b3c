package dom

import (
	"slices"
	"strings"
	"testing"
)

// fixture builds:
//
//	div#container.main
//	  h1.title "Title"
//	  p[data-test]
//	    span "Hello"
func fixture() (div, h1, p, span *Element) {
	div = NewContainer("div")
	div.ID = "container"
	div.AddClass("main")

	h1 = div.AppendChild(NewElement("h1"))
	h1.Text = "Title"
	h1.AddClass("title")

	p = div.AppendChild(NewElement("p"))
	p.SetAttr("data-test", "value")

	span = p.AppendChild(NewTextElement("Hello"))
	return
}

func TestElement_Navigation(t *testing.T) {
	div, h1, p, span := fixture()

	if div.Parent() != nil {
		t.Error("root must not have parent")
	}
	if h1.Parent() != div || p.Parent() != div {
		t.Error("children of div must point back to div")
	}
	if span.Parent() != p {
		t.Error("span parent must be p")
	}
	if got := div.Children(); len(got) != 2 || got[0] != h1 || got[1] != p {
		t.Errorf("unexpected children order: %v", got)
	}
	if !div.HasChildren() || span.HasChildren() {
		t.Error("HasChildren() mismatch")
	}
}

func TestElement_ChildrenByTag(t *testing.T) {
	div, h1, p, _ := fixture()

	if got := div.ChildrenByTag("H1"); len(got) != 1 || got[0] != h1 {
		t.Errorf("ChildrenByTag(H1) = %v", got)
	}
	if got := div.ChildrenByTag("p", "h1"); len(got) != 2 || got[0] != h1 || got[1] != p {
		t.Errorf("ChildrenByTag(p, h1) must keep document order, got %v", got)
	}
	if got := div.ChildrenByTag("table"); len(got) != 0 {
		t.Errorf("ChildrenByTag(table) = %v, want none", got)
	}
}

func TestElement_Classes(t *testing.T) {
	el := NewElement("div")
	el.AddClass("a", "b", "a", "")
	el.AddClass("b")

	if !slices.Equal(el.Classes(), []string{"a", "b"}) {
		t.Errorf("Classes() = %v, want [a b]", el.Classes())
	}
	if !el.HasClass("a") || el.HasClass("c") {
		t.Error("HasClass() mismatch")
	}
}

func TestElement_Attr(t *testing.T) {
	_, _, p, span := fixture()

	if !p.HasAttr("data-test") {
		t.Error("expected data-test attribute")
	}
	if got := p.Attr("data-test", "none"); got != "value" {
		t.Errorf("Attr() = %q, want %q", got, "value")
	}
	if got := span.Attr("data-test", "none"); got != "none" {
		t.Errorf("Attr() default = %q, want %q", got, "none")
	}
}

func TestElement_HasText(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"   \n\t", false},
		{"x", true},
		{"  Hello  ", true},
	}
	for _, tt := range tests {
		el := NewElement("p")
		el.Text = tt.text
		if got := el.HasText(); got != tt.want {
			t.Errorf("HasText(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestElement_Classification(t *testing.T) {
	tests := []struct {
		tag           string
		block, inline bool
	}{
		{"div", true, false},
		{"P", true, false},
		{"h1", true, false},
		{"h6", true, false},
		{"ul", true, false},
		{"ol", true, false},
		{"li", true, false},
		{"table", true, false},
		{"span", false, true},
		{"A", false, true},
		{"strong", false, true},
		{"em", false, true},
		{"b", false, true},
		{"i", false, true},
		{"img", false, true},
		{"section", false, false},
		{"td", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			el := NewElement(tt.tag)
			if el.IsBlock() != tt.block {
				t.Errorf("IsBlock() = %v, want %v", el.IsBlock(), tt.block)
			}
			if el.IsInline() != tt.inline {
				t.Errorf("IsInline() = %v, want %v", el.IsInline(), tt.inline)
			}
		})
	}
}

func TestElement_Walk(t *testing.T) {
	div, _, _, _ := fixture()

	var visited []string
	div.Walk(func(el *Element, depth int) bool {
		visited = append(visited, strings.Repeat("-", depth)+el.Tag)
		return true
	})
	want := []string{"div", "-h1", "-p", "--span"}
	if !slices.Equal(visited, want) {
		t.Errorf("Walk() order = %v, want %v", visited, want)
	}

	visited = visited[:0]
	div.Walk(func(el *Element, _ int) bool {
		visited = append(visited, el.Tag)
		return el.Tag != "p"
	})
	if !slices.Equal(visited, []string{"div", "h1", "p"}) {
		t.Errorf("Walk() with pruning = %v", visited)
	}
}

func TestElement_Path(t *testing.T) {
	_, _, _, span := fixture()
	if got, want := span.Path(), "div#container.main > p > span"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestInlineStyle(t *testing.T) {
	el := NewElement("p")
	el.SetInlineStyle("Color", "red").
		SetInlineStyle(" font-size ", "12px").
		SetInlineStyle("color", "blue").
		SetInlineStyle("", "ignored")

	st := el.InlineStyle()
	if st.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", st.Len())
	}
	if v, ok := st.Get("COLOR"); !ok || v != "blue" {
		t.Errorf("Get(COLOR) = %q, %v", v, ok)
	}

	var keys, values []string
	for k, v := range st.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	if !slices.Equal(keys, []string{"color", "font-size"}) {
		t.Errorf("All() keys = %v", keys)
	}
	if !slices.Equal(values, []string{"blue", "12px"}) {
		t.Errorf("All() values = %v", values)
	}
	if got, want := st.String(), "color: blue; font-size: 12px;"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestElement_String(t *testing.T) {
	div, _, _, span := fixture()
	span.SetInlineStyle("color", "red")

	got := div.String()
	for _, want := range []string{
		"<div#container.main>\n",
		"  <h1.title>\n",
		"    text: \"Title\"\n",
		"    @data-test=\"value\"\n",
		"    <span>\n",
		"      style: color: red;\n",
		"      text: \"Hello\"\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("String() missing %q in:\n%s", want, got)
		}
	}
}
