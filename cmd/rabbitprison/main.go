package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/quasilyte/gdata/v2"

	"github.com/SamuelWeese/rabbit-prison/internal/game"
	ebitenrender "github.com/SamuelWeese/rabbit-prison/internal/render/ebiten"
	"github.com/SamuelWeese/rabbit-prison/internal/settings"
	"github.com/SamuelWeese/rabbit-prison/internal/world"
)

func main() {
	// Command-line flags
	layoutPath := flag.String("layout", "", "layout YAML file (empty = built-in prison yard)")
	width := flag.Int("width", 0, "window width (0 = saved setting)")
	height := flag.Int("height", 0, "window height (0 = saved setting)")
	seed := flag.Int64("seed", 0, "rabbit behavior seed (0 = random)")
	freecam := flag.Bool("freecam", false, "start with a free-panning camera")
	grid := flag.Bool("grid", true, "draw the floor reference grid")
	flag.Parse()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	// Open the cross-platform settings store
	store, err := gdata.Open(gdata.Config{AppName: "rabbit-prison"})
	if err != nil {
		log.Printf("Warning: settings store unavailable: %v (settings won't persist)", err)
		store = nil
	}
	settingsMgr := settings.NewManager(store)

	// Flags override saved settings for this run
	if *width > 0 {
		settingsMgr.Settings().WindowWidth = *width
	}
	if *height > 0 {
		settingsMgr.Settings().WindowHeight = *height
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "grid" {
			settingsMgr.Settings().ShowGrid = *grid
		}
	})
	if *freecam {
		settingsMgr.Settings().FreeCamera = true
	}

	// Load the scene layout
	layout := world.DefaultLayout()
	if *layoutPath != "" {
		layout, err = world.LoadLayout(*layoutPath)
		if err != nil {
			log.Fatalf("Failed to load layout: %v", err)
		}
	}

	log.Printf("Loaded layout: %s (%gx%g, %d rabbits)",
		layout.Name, layout.Width, layout.Height, len(layout.Rabbits))

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	w := world.New(layout, rng)

	screenWidth := 800
	screenHeight := 600

	g := game.New(w, renderer, inputMgr, settingsMgr, screenWidth, screenHeight)

	engine.SetWindowSize(settingsMgr.Settings().WindowWidth, settingsMgr.Settings().WindowHeight)
	engine.SetWindowTitle("Rabbit Prison - Warden Mode")
	engine.SetWindowResizable(true)

	log.Printf("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
