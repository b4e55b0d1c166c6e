package voronoi

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

var (
	// ErrTooManyRegions is returned when more regions are asked for than
	// there are cells to seed them in.
	ErrTooManyRegions = errors.New("region count exceeds cell count")

	// ErrMissingSeed indicates a cell held a category without knowing which
	// seed it came from. This is a logic error & should never happen.
	ErrMissingSeed = errors.New("assigned cell has no seed")
)

const unassigned = -1

// neighbours are the 8 grid offsets a cell compares itself against on
// each pass (scaled by the pass step). The cell itself is not included.
var neighbours = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Partition is the result of a jump flood; one category per grid cell.
type Partition struct {
	Width  int
	Height int

	// Categories holds the resolved category of each cell, indexed
	// x*Height + y
	Categories []int

	// Seeds are the indexes of the cells chosen as region centres,
	// in the order they were picked
	Seeds []int
}

// Category returns the category at x,y or -1 if out of bounds
func (p *Partition) Category(x, y int) int {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return unassigned
	}
	return p.Categories[x*p.Height+y]
}

// floodCell is one grid cell during partitioning.
type floodCell struct {
	x, y     int
	category int
	seed     *floodCell
	isSeed   bool
}

// JumpFlood builds an approximate voronoi partition of a width x height grid.
// The given number of regions are seeded at random & each handed one of
// `categories` categories, which are then flooded out over the grid.
//
// The result depends only on the arguments; a private rng is used throughout.
func JumpFlood(width, height int, seed int64, regions, categories int) (*Partition, error) {
	count := width * height
	if regions > count {
		return nil, errors.Wrapf(ErrTooManyRegions, "%d regions over %d cells", regions, count)
	}
	if regions < 1 || categories < 1 {
		return nil, errors.Errorf("regions & categories must be positive, got %d, %d", regions, categories)
	}

	rng := rand.New(rand.NewSource(seed))

	cells := make([]*floodCell, count)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			cells[x*height+y] = &floodCell{x: x, y: y, category: unassigned}
		}
	}

	seeds := pickSeeds(rng, regions, count)
	for _, i := range seeds {
		c := cells[i]
		c.category = rng.Intn(categories)
		c.isSeed = true
		c.seed = c
	}

	at := func(x, y int) *floodCell {
		if x < 0 || y < 0 || x >= width || y >= height {
			return nil
		}
		return cells[x*height+y]
	}

	for _, step := range floodSteps(count) {
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				cell := at(x, y)
				if cell.isSeed {
					continue
				}
				for _, off := range neighbours {
					other := at(x+off[0]*step, y+off[1]*step)
					if other == nil || other.category == unassigned {
						continue
					}
					if cell.category == unassigned {
						cell.category = other.category
						cell.seed = other.seed
						continue
					}
					if cell.seed == nil || other.seed == nil {
						return nil, errors.Wrapf(ErrMissingSeed, "cell (%d,%d) step %d", x, y, step)
					}
					mine := calculateDist(cell.x, cell.y, cell.seed.x, cell.seed.y)
					theirs := calculateDist(cell.x, cell.y, other.seed.x, other.seed.y)
					if theirs < mine {
						cell.category = other.category
						cell.seed = other.seed
					}
				}
			}
		}
	}

	// anything the flood failed to reach goes to its nearest seed
	for _, cell := range cells {
		if cell.category != unassigned {
			continue
		}
		best := math.Inf(1)
		for _, i := range seeds {
			s := cells[i]
			d := calculateDist(cell.x, cell.y, s.x, s.y)
			if d < best {
				best = d
				cell.category = s.category
				cell.seed = s
			}
		}
	}

	p := &Partition{Width: width, Height: height, Categories: make([]int, count), Seeds: seeds}
	for i, cell := range cells {
		p.Categories[i] = cell.category
	}
	return p, nil
}

// Degenerate returns the fall back partition; every cell category 0 with
// a lone seed at index 0.
func Degenerate(width, height int) *Partition {
	return &Partition{
		Width:      width,
		Height:     height,
		Categories: make([]int, width*height),
		Seeds:      []int{0},
	}
}

// floodSteps returns the pass step sizes for a grid of `count` cells.
// Note the trailing 1, 2, 1 rather than a plain halving down to 1.
func floodSteps(count int) []int {
	n := float64(count)
	return []int{int(n), int(n / 2), int(n / 4), int(n / 8), 1, 2, 1}
}

// pickSeeds chooses n distinct indexes in [0, count), re-rolling duplicates.
func pickSeeds(rng *rand.Rand, n, count int) []int {
	chosen := make(map[int]bool, n)
	out := make([]int, 0, n)
	for len(out) < n {
		i := rng.Intn(count)
		if chosen[i] {
			continue
		}
		chosen[i] = true
		out = append(out, i)
	}
	return out
}

// calculateDist standard pythag.
func calculateDist(ax, ay, bx, by int) float64 {
	return math.Sqrt(math.Pow(float64(ax-bx), 2) + math.Pow(float64(ay-by), 2))
}
