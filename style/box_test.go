package style

import (
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestParseBox(t *testing.T) {
	tests := []struct {
		in   string
		want Box
	}{
		{"10px", Box{10, 10, 10, 10}},
		{"10px 5px", Box{10, 5, 10, 5}},
		{"1px 2px 3px 4px", Box{1, 2, 3, 4}},
		{"  1pt   2pt  ", Box{1, 2, 1, 2}},
		{"1px 2px 3px", Box{}},
		{"1 2 3 4 5", Box{}},
		{"", Box{}},
		{"auto", Box{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseBox(tt.in); got != tt.want {
				t.Errorf("ParseBox(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBox_String(t *testing.T) {
	if got := (Box{10, 5, 10, 5.5}).String(); got != "10 5 10 5.5" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseBorder(t *testing.T) {
	log := zaptest.NewLogger(t)

	tests := []struct {
		in   string
		want Border
	}{
		{"1px solid red", Border{1, "solid", Red}},
		{"dashed 2px #00f", Border{2, "dashed", Blue}},
		{"thick double rgb(255, 255, 255)", Border{5, "double", White}},
		{"3pt", Border{3, "none", Black}},
		{"none", DefaultBorder()},
		{"", DefaultBorder()},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseBorder(tt.in, log); got != tt.want {
				t.Errorf("ParseBorder(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitOutsideParens(t *testing.T) {
	got := splitOutsideParens(" 1px  solid\trgb(1, 2, 3) ")
	want := []string{"1px", "solid", "rgb(1, 2, 3)"}
	if !slices.Equal(got, want) {
		t.Errorf("splitOutsideParens() = %q, want %q", got, want)
	}
}
