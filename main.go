// Command darwin runs an evolution simulation of plant-eating animals
// using the Ebiten game library.
//
// Animals wander a toroidal grid, eat plants, split their energy with a
// mutated child once they have enough of it and die when it runs out.
// Eight genes weight the direction an animal steps in each day, so the
// population slowly evolves the way it moves.
//
// Usage:
//
//	darwin [flags]
//
// Settings come from the built-in defaults, then an optional YAML file
// (-config), then any flag given explicitly on the command line.
//
// In the window, Space pauses, N advances one day while paused and R
// restarts the world.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"runtime"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/sync/errgroup"

	"github.com/hans1song/darwin/darwin"
)

// Simulation configuration flags.
var (
	// configPath is an optional YAML file read over the built-in defaults.
	configPath = flag.String("config", "", "YAML file with world settings.")

	// wwidth is the width of the toroidal world grid.
	wwidth = flag.Uint("width", 100, "Width of the world in cells.")

	// wheight is the height of the toroidal world grid.
	wheight = flag.Uint("height", 100, "Height of the world in cells.")

	// plantEnergy is the energy an animal gains from one plant.
	plantEnergy = flag.Uint("plantenergy", 60, "Energy gained from eating one plant.")

	// reproduce is the energy an animal must exceed to split.
	reproduce = flag.Uint("reproduce", 60, "Energy an animal must exceed to reproduce.")

	// plants is the number of plants spawned anywhere each day.
	plants = flag.Uint("plants", 1, "Plants spawned on the whole map per day.")

	// forestPlants is the number of extra plants spawned in the forest each day.
	forestPlants = flag.Uint("forestplants", 1, "Plants spawned in the forest per day.")

	// forest is the size of the centered forest as a fraction of the map.
	forest = flag.Float64("forest", 0.1, "Size of the forest as a fraction of the map.")

	// energy is the starting energy of the founder.
	energy = flag.Uint("energy", 1000, "Energy of the first animal.")

	// seed makes runs reproducible. 0 picks a random seed.
	seed = flag.Int64("seed", 0, "Random seed (0 for a random one).")

	// scale is the size of a cell in screen pixels.
	scale = flag.Int("scale", 6, "Pixels per cell.")

	// benchmark enables headless mode (no GUI) for performance testing.
	benchmark = flag.Bool("benchmark", false, "Run in benchmark mode (no graphics) for timing analysis.")

	// days is the number of days each world runs in benchmark mode.
	days = flag.Int("days", 2000, "Days to simulate per world in benchmark mode.")

	// worlds is the number of independent worlds run side by side in benchmark mode.
	worlds = flag.Int("worlds", runtime.NumCPU(), "Number of worlds to run concurrently in benchmark mode.")
)

// Rendering colors for grid cells.
var (
	plantcolor  = color.RGBA{0, 255, 0, 255} // Green
	animalcolor = color.RGBA{255, 0, 0, 255} // Red
	groundcolor = color.RGBA{255, 255, 255, 255}
	hudcolor    = color.RGBA{0, 0, 0, 255}
)

// loadConfig builds the world settings from the defaults, the optional
// config file and the flags set on the command line.
func loadConfig() (darwin.Config, error) {
	cfg, err := darwin.LoadConfig(*configPath)
	if err != nil {
		return cfg, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = uint32(*wwidth)
		case "height":
			cfg.Height = uint32(*wheight)
		case "plantenergy":
			cfg.PlantEnergy = uint32(*plantEnergy)
		case "reproduce":
			cfg.EnergyToReproduce = uint32(*reproduce)
		case "plants":
			cfg.PlantsPerDay = uint32(*plants)
		case "forestplants":
			cfg.PlantsPerDayForest = uint32(*forestPlants)
		case "forest":
			cfg.ForestPercent = float32(*forest)
		case "energy":
			cfg.InitialEnergy = uint32(*energy)
		case "seed":
			cfg.Seed = *seed
		}
	})
	return cfg, cfg.Validate()
}

// Game implements the ebiten.Game interface.
type Game struct {
	world  *darwin.World
	paused bool
}

// Update advances the world by one day per frame unless paused.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset()
	}
	if !g.paused || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.world.AdvanceTick()
	}
	return nil
}

// Draw paints one rectangle per occupied cell and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(groundcolor)
	cell := float32(*scale)
	for y := 0; y < int(g.world.Height()); y++ {
		for x := 0; x < int(g.world.Width()); x++ {
			var clr color.Color
			switch g.world.Cell(x, y) {
			case darwin.PlantMarker:
				clr = plantcolor
			case darwin.AnimalMarker:
				clr = animalcolor
			default:
				continue
			}
			vector.DrawFilledRect(screen, float32(x)*cell, float32(y)*cell, cell, cell, clr, false)
		}
	}

	s := g.world.Stats()
	ebitenutil.DebugPrint(screen, strconv.Itoa(s.Day))
	status := fmt.Sprintf("animals %d  plants %d", s.Population, s.PlantUnits)
	if g.paused {
		status += "  [paused]"
	}
	_, h := g.Layout(0, 0)
	text.Draw(screen, status, basicfont.Face7x13, 4, h-6, hudcolor)
}

// Layout returns the grid size in screen pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.world.Width()) * *scale, int(g.world.Height()) * *scale
}

// runBenchmark advances *worlds independent worlds for *days days each,
// one goroutine per world, and reports the time taken.
func runBenchmark(cfg darwin.Config) error {
	fmt.Printf("Running darwin benchmark...\n")
	fmt.Printf("Config: Worlds=%d, Days=%d, Width=%d, Height=%d, Plants=%d+%d\n",
		*worlds, *days, cfg.Width, cfg.Height, cfg.PlantsPerDay, cfg.PlantsPerDayForest)

	results := make([]darwin.Stats, *worlds)
	g, ctx := errgroup.WithContext(context.Background())
	startTime := time.Now()

	for i := 0; i < *worlds; i++ {
		i := i
		wcfg := cfg
		if wcfg.Seed != 0 {
			wcfg.Seed += int64(i)
		}
		g.Go(func() error {
			w, err := darwin.New(wcfg)
			if err != nil {
				return fmt.Errorf("world %d: %w", i, err)
			}
			for d := 0; d < *days && !w.Extinct(); d++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				w.AdvanceTick()
			}
			results[i] = w.Stats()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	duration := time.Since(startTime)

	fmt.Printf("--- Benchmark Complete ---\n")
	for i, s := range results {
		fmt.Printf("World %d: day %d, %d animals, %d plants\n", i, s.Day, s.Population, s.PlantUnits)
	}
	fmt.Printf("Total time for %d worlds of %d days: %v\n", *worlds, *days, duration)
	return nil
}

// main parses flags and starts either the benchmark or the window.
func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if *scale < 1 {
		log.Fatal("scale must be at least 1")
	}

	if *benchmark {
		if *worlds < 1 {
			*worlds = 1
		}
		if err := runBenchmark(cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	world, err := darwin.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Size: %dx%d, seed %d", world.Width(), world.Height(), world.Seed())

	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowTitle("Darwin Simulation")
	if err := ebiten.RunGame(&Game{world: world}); err != nil {
		log.Fatal(err)
	}
}
