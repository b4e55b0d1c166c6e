package voronoi

import (
	"testing"

	"github.com/pkg/errors"
)

func TestJumpFloodDeterministic(t *testing.T) {
	a, err := JumpFlood(30, 20, 42, 12, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := JumpFlood(30, 20, 42, 12, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a.Categories) != 600 {
		t.Fatalf("expected 600 categories, got %d", len(a.Categories))
	}
	for i := range a.Categories {
		if a.Categories[i] != b.Categories[i] {
			t.Fatalf("category %d differs between runs: %d vs %d", i, a.Categories[i], b.Categories[i])
		}
	}
	for i := range a.Seeds {
		if a.Seeds[i] != b.Seeds[i] {
			t.Fatalf("seed %d differs between runs: %d vs %d", i, a.Seeds[i], b.Seeds[i])
		}
	}
}

func TestJumpFloodCategoryRange(t *testing.T) {
	for _, seed := range []int64{0, 1, 7, 1234} {
		p, err := JumpFlood(25, 25, seed, 10, 4)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		for i, c := range p.Categories {
			if c < 0 || c >= 4 {
				t.Fatalf("seed %d: cell %d has category %d outside [0,4)", seed, i, c)
			}
		}
	}
}

func TestJumpFloodSeedsDistinct(t *testing.T) {
	p, err := JumpFlood(5, 5, 3, 25, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Seeds) != 25 {
		t.Fatalf("expected 25 seeds, got %d", len(p.Seeds))
	}
	seen := map[int]bool{}
	for _, s := range p.Seeds {
		if s < 0 || s >= 25 {
			t.Fatalf("seed index %d out of range", s)
		}
		if seen[s] {
			t.Fatalf("seed index %d chosen twice", s)
		}
		seen[s] = true
	}
}

func TestJumpFloodSingleRegion(t *testing.T) {
	p, err := JumpFlood(40, 40, 9, 1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := p.Categories[p.Seeds[0]]
	for i, c := range p.Categories {
		if c != want {
			t.Fatalf("cell %d has category %d, expected %d everywhere", i, c, want)
		}
	}
}

func TestJumpFloodCategoriesComeFromSeeds(t *testing.T) {
	p, err := JumpFlood(50, 30, 11, 8, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	valid := map[int]bool{}
	for _, s := range p.Seeds {
		valid[p.Categories[s]] = true
	}
	for i, c := range p.Categories {
		if !valid[c] {
			t.Fatalf("cell %d has category %d which no seed carries", i, c)
		}
	}
}

func TestJumpFloodTooManyRegions(t *testing.T) {
	_, err := JumpFlood(3, 3, 0, 10, 2)
	if err == nil {
		t.Fatal("expected an error when regions exceed cells")
	}
	if errors.Cause(err) != ErrTooManyRegions {
		t.Errorf("expected ErrTooManyRegions, got %v", err)
	}
}

func TestPartitionCategoryBounds(t *testing.T) {
	p := Degenerate(4, 3)
	if len(p.Categories) != 12 {
		t.Fatalf("expected 12 categories, got %d", len(p.Categories))
	}
	if len(p.Seeds) != 1 || p.Seeds[0] != 0 {
		t.Errorf("expected seeds {0}, got %v", p.Seeds)
	}
	if p.Category(3, 2) != 0 {
		t.Errorf("expected category 0 at (3,2), got %d", p.Category(3, 2))
	}
	if p.Category(4, 0) != -1 || p.Category(0, -1) != -1 {
		t.Error("expected -1 for out of bounds lookups")
	}
}

func TestFloodSteps(t *testing.T) {
	got := floodSteps(100)
	want := []int{100, 50, 25, 12, 1, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}
