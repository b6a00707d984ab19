package darwin

import "math/rand"

// Gene bounds. Every gene of every animal stays within [MinGene, MaxGene].
const (
	MinGene = 1
	MaxGene = 10
)

// Genes weights the eight directions: direction i is chosen with
// probability Genes[i] / sum(Genes).
type Genes [NumDirections]uint8

// Animal is a mobile agent that forages for plants.
type Animal struct {
	x, y      uint32
	energy    uint32
	genes     Genes
	direction Direction
}

// newFounder creates an animal with uniformly random genes.
func newFounder(x, y, energy uint32, r *rand.Rand) *Animal {
	a := &Animal{x: x, y: y, energy: energy}
	for i := range a.genes {
		a.genes[i] = uint8(MinGene + r.Intn(MaxGene-MinGene+1))
	}
	a.direction = a.determineDirection(r)
	return a
}

// newOffspring creates an animal carrying a single mutation of the parent's genes.
func newOffspring(x, y, energy uint32, genes Genes, r *rand.Rand) *Animal {
	a := &Animal{x: x, y: y, energy: energy, genes: genes}
	a.mutate(r)
	a.direction = a.determineDirection(r)
	return a
}

// Position returns the cell the animal stands on.
func (a *Animal) Position() Coordinate { return Coordinate{X: a.x, Y: a.y} }

// Energy returns the animal's energy.
func (a *Animal) Energy() uint32 { return a.energy }

// Genes returns a copy of the gene vector.
func (a *Animal) Genes() Genes { return a.genes }

// Direction returns the direction the animal will move on its next day.
func (a *Animal) Direction() Direction { return a.direction }

// mutate moves one random gene by one step, bouncing off the bounds.
func (a *Animal) mutate(r *rand.Rand) {
	i := r.Intn(NumDirections)
	switch g := a.genes[i]; {
	case g <= MinGene:
		a.genes[i] = MinGene + 1
	case g >= MaxGene:
		a.genes[i] = MaxGene - 1
	case r.Intn(2) == 0:
		a.genes[i]++
	default:
		a.genes[i]--
	}
}

// determineDirection draws a direction weighted by the genes.
func (a *Animal) determineDirection(r *rand.Rand) Direction {
	total := 0
	for _, g := range a.genes {
		total += int(g)
	}
	n := r.Intn(total)
	for i, g := range a.genes {
		if n < int(g) {
			return Direction(i)
		}
		n -= int(g)
	}
	return West
}

// move steps once in the current direction on a width x height torus.
func (a *Animal) move(width, height uint32) {
	dx, dy := a.direction.Offset()
	a.x = wrap(a.x, dx, width)
	a.y = wrap(a.y, dy, height)
}

// newDay spends one unit of energy, moves and picks the next direction.
// It returns false, leaving the animal untouched, if the animal has no
// energy left.
func (a *Animal) newDay(width, height uint32, r *rand.Rand) bool {
	if a.energy < 1 {
		return false
	}
	a.energy--
	a.move(width, height)
	a.direction = a.determineDirection(r)
	return true
}

// eat adds energy.
func (a *Animal) eat(energy uint32) {
	a.energy += energy
}

// reproduce splits the animal's energy with a mutated child on the same
// cell once energy exceeds threshold. It returns nil otherwise.
func (a *Animal) reproduce(threshold uint32, r *rand.Rand) *Animal {
	if a.energy <= threshold {
		return nil
	}
	split := a.energy / 2
	a.energy -= split
	return newOffspring(a.x, a.y, split, a.genes, r)
}
