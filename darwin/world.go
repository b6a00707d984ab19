// Package darwin implements a discrete-time artificial life simulation.
//
// Animals roam a toroidal grid looking for plants. Every day they spend one
// unit of energy to take a step, eat the plant they stand on and, once they
// have more energy than a threshold, split it with a mutated child. An
// animal's eight genes weight the eight directions it can step in, so the
// population evolves its movement habits.
//
// A World is not safe for concurrent use. Separate worlds are independent
// and may be advanced from different goroutines.
package darwin

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"
)

// ErrNoPlant reports a coordinate outside the plant grid.
var ErrNoPlant = errors.New("no plant at coordinate")

// Stats summarizes the world after the last completed day.
type Stats struct {
	Day        int
	Population int
	Births     int
	Deaths     int
	PlantCells int    // cells holding at least one plant
	PlantUnits uint64 // plants on the whole grid
}

// World owns the plants, the animals and the display buffer.
type World struct {
	cfg Config

	plants  []Plant    // row-major, one per cell
	animals []*Animal  // creation order
	field   [][]Symbol // [y][x], derived from plants and animals
	rng     *rand.Rand
	logger  *log.Logger
	seed    int64

	day            int
	births, deaths int
}

// Option customizes a World.
type Option func(*World)

// WithSeed makes the world's random draws reproducible. It overrides Config.Seed.
func WithSeed(seed int64) Option {
	return func(w *World) { w.seed = seed }
}

// WithLogger sets the logger used for internal diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.logger = l }
}

// New creates a world with a single founder in the middle of the grid.
func New(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:    cfg,
		seed:   cfg.Seed,
		logger: log.New(os.Stderr, "darwin: ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.seed == 0 {
		w.seed = newSeed()
	}
	w.rng = rand.New(rand.NewSource(w.seed))
	w.populate()
	return w, nil
}

// newSeed reads a seed from the system's secure source, falling back to
// the clock.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	if s := int64(binary.LittleEndian.Uint64(b[:])); s != 0 {
		return s
	}
	return 1
}

func (w *World) populate() {
	w.plants = make([]Plant, int(w.cfg.Width)*int(w.cfg.Height))
	w.field = newField(w.cfg.Width, w.cfg.Height)
	founder := newFounder(w.cfg.Width/2, w.cfg.Height/2, w.cfg.InitialEnergy, w.rng)
	w.animals = []*Animal{founder}
	w.field[founder.y][founder.x] = AnimalMarker
	w.day, w.births, w.deaths = 0, 0, 0
}

// Reset restarts the world from its config with a single new founder.
// Random draws continue from the current state of the generator.
func (w *World) Reset() {
	w.populate()
}

// Seed returns the seed the world's generator was created with.
func (w *World) Seed() int64 { return w.seed }

// Config returns the world's settings.
func (w *World) Config() Config { return w.cfg }

// Width returns the number of columns.
func (w *World) Width() uint32 { return w.cfg.Width }

// Height returns the number of rows.
func (w *World) Height() uint32 { return w.cfg.Height }

// Cell returns the display symbol at (x, y). It panics if the coordinate is
// outside the grid.
func (w *World) Cell(x, y int) Symbol {
	return w.field[y][x]
}

// PlantAmount returns the number of plants at (x, y). It panics if the
// coordinate is outside the grid.
func (w *World) PlantAmount(x, y uint32) uint32 {
	p, err := w.plantAt(x, y)
	if err != nil {
		panic(err)
	}
	return p.Amount()
}

// Animals returns a snapshot of the live animals in creation order.
func (w *World) Animals() []Animal {
	out := make([]Animal, len(w.animals))
	for i, a := range w.animals {
		out[i] = *a
	}
	return out
}

// Population returns the number of live animals.
func (w *World) Population() int { return len(w.animals) }

// Extinct reports whether every animal has died.
func (w *World) Extinct() bool { return len(w.animals) == 0 }

// Stats returns counters for the last completed day.
func (w *World) Stats() Stats {
	s := Stats{
		Day:        w.day,
		Population: len(w.animals),
		Births:     w.births,
		Deaths:     w.deaths,
	}
	for i := range w.plants {
		if n := w.plants[i].Amount(); n > 0 {
			s.PlantCells++
			s.PlantUnits += uint64(n)
		}
	}
	return s
}

func (w *World) plantAt(x, y uint32) (*Plant, error) {
	if x >= w.cfg.Width || y >= w.cfg.Height {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrNoPlant, x, y)
	}
	return &w.plants[Coordinate{X: x, Y: y}.index(w.cfg.Width)], nil
}

// AdvanceTick runs one day: plants grow, then every animal eats, moves
// and possibly reproduces or dies.
func (w *World) AdvanceTick() {
	w.generatePlants()
	w.updateAnimals()
	w.day++
}

// generatePlants spawns the daily plants on the whole grid and in the forest.
func (w *World) generatePlants() {
	for i := uint32(0); i < w.cfg.PlantsPerDay; i++ {
		x := uint32(w.rng.Int63n(int64(w.cfg.Width)))
		y := uint32(w.rng.Int63n(int64(w.cfg.Height)))
		w.growPlant(x, y)
	}

	x0, y0, fw, fh := w.cfg.forest()
	if fw == 0 || fh == 0 {
		return
	}
	for i := uint32(0); i < w.cfg.PlantsPerDayForest; i++ {
		x := x0 + uint32(w.rng.Int63n(int64(fw)))
		y := y0 + uint32(w.rng.Int63n(int64(fh)))
		w.growPlant(x, y)
	}
}

func (w *World) growPlant(x, y uint32) {
	p, err := w.plantAt(x, y)
	if err != nil {
		w.logger.Printf("growing plant: %v", err)
		return
	}
	p.Increase()
	if p.Amount() == 1 {
		w.field[y][x] = PlantMarker
	}
}

// eatPlant takes one plant from (x, y) and returns the energy it yields.
func (w *World) eatPlant(x, y uint32) uint32 {
	p, err := w.plantAt(x, y)
	if err != nil {
		w.logger.Printf("eating plant: %v", err)
		return 0
	}
	if p.Amount() == 0 {
		return 0
	}
	p.Decrease()
	if p.Amount() == 0 {
		w.field[y][x] = Blank
	}
	return w.cfg.PlantEnergy
}

// updateAnimals advances every animal by one day. Deaths and births are
// collected during the pass and applied afterwards.
func (w *World) updateAnimals() {
	for _, a := range w.animals {
		w.field[a.y][a.x] = Blank
		if p, err := w.plantAt(a.x, a.y); err == nil && p.Amount() > 0 {
			w.field[a.y][a.x] = PlantMarker
		}
	}

	var dead []int
	var newborn []*Animal
	for i, a := range w.animals {
		food := w.eatPlant(a.x, a.y)
		if !a.newDay(w.cfg.Width, w.cfg.Height, w.rng) {
			dead = append(dead, i)
			continue
		}
		a.eat(food)
		if child := a.reproduce(w.cfg.EnergyToReproduce, w.rng); child != nil {
			newborn = append(newborn, child)
		}
	}

	w.animals = append(w.animals, newborn...)
	for i := len(dead) - 1; i >= 0; i-- {
		k := dead[i]
		w.animals = append(w.animals[:k], w.animals[k+1:]...)
	}
	w.births, w.deaths = len(newborn), len(dead)

	for _, a := range w.animals {
		w.field[a.y][a.x] = AnimalMarker
	}
}
