package cascade_test

import (
	"testing"

	"github.com/ny-haritina10/pdf-generator/cascade"
	"github.com/ny-haritina10/pdf-generator/dom"
	"github.com/ny-haritina10/pdf-generator/style"
)

func TestComputeTree(t *testing.T) {
	tr := fixture()
	other := dom.NewElement("p")
	other.SetInlineStyle("color", "white")

	res := cascade.NewAnalyzer(nil).ComputeTree([]*dom.Element{tr.container, other}, rulesOf(t, testCSS))

	wantTags := []string{"div", "h1", "p", "span", "p"}
	wantDepth := []int{0, 1, 1, 2, 0}
	if len(res) != len(wantTags) {
		t.Fatalf("ComputeTree() returned %d records, want %d", len(res), len(wantTags))
	}
	for i := range res {
		if res[i].Element.Tag != wantTags[i] || res[i].Depth != wantDepth[i] {
			t.Errorf("record %d = %s@%d, want %s@%d", i, res[i].Element.Tag, res[i].Depth, wantTags[i], wantDepth[i])
		}
	}

	wantPath := map[int]string{0: "div#container.main", 3: "div#container.main > p > span", 4: "p"}
	for i, want := range wantPath {
		if res[i].Path != want {
			t.Errorf("record %d path = %q, want %q", i, res[i].Path, want)
		}
	}

	if res[0].Style.Color != style.Red {
		t.Errorf("container color = %v", res[0].Style.Color)
	}
	// no inheritance: children keep their own defaults
	if res[1].Style.Color != style.Black || res[1].Style.FontSize != style.Pt(10) {
		t.Errorf("h1 must not inherit from container: %v %v", res[1].Style.Color, res[1].Style.FontSize)
	}
	if res[4].Style.Color != style.White {
		t.Errorf("second root color = %v", res[4].Style.Color)
	}
}

func TestComputeTree_Empty(t *testing.T) {
	if res := cascade.NewAnalyzer(nil).ComputeTree(nil, nil); len(res) != 0 {
		t.Errorf("ComputeTree(nil) = %v", res)
	}
}
