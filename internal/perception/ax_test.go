package perception

import (
	"testing"

	"github.com/voxctl/voxctl/internal/model"
)

func TestCandidatesFromElements_LeafText(t *testing.T) {
	tree := []model.Element{
		{
			ID: 1, Role: "window", Title: "Editor", Bounds: [4]int{0, 0, 800, 600},
			Children: []model.Element{
				{ID: 2, Role: "btn", Title: "Save", Bounds: [4]int{10, 10, 80, 30}},
				{ID: 3, Role: "btn", Title: "Cancel", Bounds: [4]int{100, 10, 80, 30}},
				{ID: 4, Role: "group", Bounds: [4]int{0, 50, 800, 500},
					Children: []model.Element{
						{ID: 5, Role: "input", Value: "hello", Bounds: [4]int{10, 60, 200, 24}},
					}},
			},
		},
	}

	candidates := CandidatesFromElements(tree)
	if len(candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d: %v", len(candidates), candidates)
	}
	if candidates[0].Text != "Save" || candidates[1].Text != "Cancel" || candidates[2].Text != "hello" {
		t.Fatalf("unexpected candidate texts: %v", candidates)
	}
	for _, c := range candidates {
		if c.Source != SourceAccessibility {
			t.Fatalf("expected source %q, got %q", SourceAccessibility, c.Source)
		}
	}
}

func TestCandidatesFromElements_ContainerTextSuppressedByChildren(t *testing.T) {
	tree := []model.Element{
		{ID: 1, Role: "group", Title: "Toolbar", Bounds: [4]int{0, 0, 400, 40},
			Children: []model.Element{
				{ID: 2, Role: "btn", Title: "Bold", Bounds: [4]int{0, 0, 40, 40}},
			}},
	}
	candidates := CandidatesFromElements(tree)
	if len(candidates) != 1 || candidates[0].Text != "Bold" {
		t.Fatalf("expected only leaf candidate, got %v", candidates)
	}
}

func TestCandidatesFromElements_SkipsZeroSizeAndEmpty(t *testing.T) {
	tree := []model.Element{
		{ID: 1, Role: "txt", Title: "Ghost", Bounds: [4]int{0, 0, 0, 0}},
		{ID: 2, Role: "txt", Bounds: [4]int{0, 0, 50, 20}},
	}
	if candidates := CandidatesFromElements(tree); len(candidates) != 0 {
		t.Fatalf("expected no candidates, got %v", candidates)
	}
}

func TestCandidateCenter(t *testing.T) {
	c := Candidate{Bounds: [4]int{10, 20, 100, 40}}
	x, y := c.Center()
	if x != 60 || y != 40 {
		t.Fatalf("expected center (60,40), got (%d,%d)", x, y)
	}
}
