package darwin

import (
	"math"
	"math/rand"
	"testing"
)

func testRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestMoveWrapsAround(t *testing.T) {
	const width, height = 5, 4
	tests := []struct {
		name   string
		x, y   uint32
		dir    Direction
		wx, wy uint32
	}{
		{"west from left edge", 0, 2, West, width - 1, 2},
		{"east from right edge", width - 1, 2, East, 0, 2},
		{"north from top edge", 3, 0, North, 3, height - 1},
		{"south from bottom edge", 3, height - 1, South, 3, 0},
		{"north west from corner", 0, 0, NorthWest, width - 1, height - 1},
		{"south east from corner", width - 1, height - 1, SouthEast, 0, 0},
		{"north east from top right", width - 1, 0, NorthEast, 0, height - 1},
		{"south west from bottom left", 0, height - 1, SouthWest, width - 1, 0},
		{"east inside", 1, 1, East, 2, 1},
		{"north west inside", 2, 2, NorthWest, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Animal{x: tt.x, y: tt.y, direction: tt.dir}
			a.move(width, height)
			if a.x != tt.wx || a.y != tt.wy {
				t.Fatalf("move %v from (%d, %d) = (%d, %d), want (%d, %d)",
					tt.dir, tt.x, tt.y, a.x, a.y, tt.wx, tt.wy)
			}
		})
	}
}

func TestMoveStaysOnGrid(t *testing.T) {
	const width, height = 3, 7
	for x := uint32(0); x < width; x++ {
		for y := uint32(0); y < height; y++ {
			for d := Direction(0); d < NumDirections; d++ {
				a := &Animal{x: x, y: y, direction: d}
				a.move(width, height)
				if a.x >= width || a.y >= height {
					t.Fatalf("move %v from (%d, %d) left the grid: (%d, %d)", d, x, y, a.x, a.y)
				}
			}
		}
	}
}

func TestMoveOnSingleCellGrid(t *testing.T) {
	for d := Direction(0); d < NumDirections; d++ {
		a := &Animal{direction: d}
		a.move(1, 1)
		if a.x != 0 || a.y != 0 {
			t.Fatalf("move %v on 1x1 grid = (%d, %d)", d, a.x, a.y)
		}
	}
}

func TestFounderGenesInRange(t *testing.T) {
	r := testRand(1)
	for i := 0; i < 200; i++ {
		a := newFounder(0, 0, 10, r)
		for j, g := range a.genes {
			if g < MinGene || g > MaxGene {
				t.Fatalf("founder %d gene %d = %d out of range", i, j, g)
			}
		}
		if a.direction < 0 || a.direction >= NumDirections {
			t.Fatalf("founder %d direction = %d", i, a.direction)
		}
	}
}

// geneDelta returns the index and signed change of the single gene that
// differs between before and after, or ok=false otherwise.
func geneDelta(before, after Genes) (idx, delta int, ok bool) {
	idx = -1
	for i := range before {
		if before[i] == after[i] {
			continue
		}
		if idx >= 0 {
			return 0, 0, false
		}
		idx, delta = i, int(after[i])-int(before[i])
	}
	return idx, delta, idx >= 0
}

func TestMutate(t *testing.T) {
	tests := []struct {
		name   string
		gene   uint8
		deltas []int
	}{
		{"lower bound", MinGene, []int{1}},
		{"upper bound", MaxGene, []int{-1}},
		{"middle", 5, []int{-1, 1}},
		{"just above lower bound", 2, []int{-1, 1}},
		{"just below upper bound", 9, []int{-1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRand(42)
			seen := map[int]bool{}
			for i := 0; i < 500; i++ {
				var genes Genes
				for j := range genes {
					genes[j] = tt.gene
				}
				a := &Animal{genes: genes}
				a.mutate(r)
				_, delta, ok := geneDelta(genes, a.genes)
				if !ok {
					t.Fatalf("mutate changed %v to %v, want exactly one gene changed", genes, a.genes)
				}
				seen[delta] = true
			}
			if len(seen) != len(tt.deltas) {
				t.Fatalf("saw deltas %v, want %v", seen, tt.deltas)
			}
			for _, d := range tt.deltas {
				if !seen[d] {
					t.Fatalf("delta %d never seen, got %v", d, seen)
				}
			}
		})
	}
}

func TestDetermineDirectionFollowsGenes(t *testing.T) {
	r := testRand(7)
	a := &Animal{genes: Genes{10, 1, 1, 1, 1, 1, 1, 3}}
	const draws = 20000
	var counts [NumDirections]int
	for i := 0; i < draws; i++ {
		d := a.determineDirection(r)
		if d < 0 || d >= NumDirections {
			t.Fatalf("direction %d out of range", d)
		}
		counts[d]++
	}
	total := 19.0
	for i, g := range a.genes {
		want := float64(g) / total
		got := float64(counts[i]) / draws
		if math.Abs(got-want) > 0.02 {
			t.Errorf("direction %v frequency = %.3f, want %.3f", Direction(i), got, want)
		}
	}
}

func TestReproduceThreshold(t *testing.T) {
	r := testRand(3)
	const threshold = 60

	a := &Animal{energy: threshold, genes: Genes{5, 5, 5, 5, 5, 5, 5, 5}}
	if child := a.reproduce(threshold, r); child != nil {
		t.Fatal("animal at threshold reproduced")
	}
	if a.energy != threshold {
		t.Fatalf("energy = %d, want %d", a.energy, threshold)
	}

	for _, energy := range []uint32{threshold + 1, threshold + 2, 1001} {
		a := &Animal{x: 3, y: 4, energy: energy, genes: Genes{5, 5, 5, 5, 5, 5, 5, 5}}
		child := a.reproduce(threshold, r)
		if child == nil {
			t.Fatalf("animal with energy %d did not reproduce", energy)
		}
		if a.energy+child.energy != energy {
			t.Fatalf("split %d into %d + %d", energy, a.energy, child.energy)
		}
		if child.energy != energy/2 {
			t.Fatalf("child energy = %d, want %d", child.energy, energy/2)
		}
		if child.x != a.x || child.y != a.y {
			t.Fatalf("child at (%d, %d), parent at (%d, %d)", child.x, child.y, a.x, a.y)
		}
		if _, _, ok := geneDelta(a.genes, child.genes); !ok {
			t.Fatalf("child genes %v are not a single mutation of %v", child.genes, a.genes)
		}
	}
}

func TestNewDay(t *testing.T) {
	r := testRand(5)

	dead := &Animal{x: 2, y: 2, direction: East, genes: Genes{1, 1, 1, 1, 1, 1, 1, 1}}
	if dead.newDay(5, 5, r) {
		t.Fatal("animal without energy survived the day")
	}
	if dead.x != 2 || dead.y != 2 || dead.energy != 0 || dead.direction != East {
		t.Fatalf("dead animal changed: %+v", dead)
	}

	a := &Animal{x: 4, y: 0, energy: 1, direction: NorthEast, genes: Genes{1, 1, 1, 1, 1, 1, 1, 1}}
	if !a.newDay(5, 5, r) {
		t.Fatal("animal with energy died")
	}
	if a.energy != 0 {
		t.Fatalf("energy = %d, want 0", a.energy)
	}
	if a.x != 0 || a.y != 4 {
		t.Fatalf("position = (%d, %d), want (0, 4)", a.x, a.y)
	}
}

func TestEat(t *testing.T) {
	a := &Animal{energy: 3}
	a.eat(60)
	a.eat(0)
	if a.energy != 63 {
		t.Fatalf("energy = %d, want 63", a.energy)
	}
}

func TestDirectionString(t *testing.T) {
	if got := SouthWest.String(); got != "SW" {
		t.Fatalf("SouthWest.String() = %q", got)
	}
	if got := Direction(9).String(); got != "Direction(9)" {
		t.Fatalf("Direction(9).String() = %q", got)
	}
}
