package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"wumpushunt/pkg/engine/input"
	"wumpushunt/pkg/game/config"
	"wumpushunt/pkg/game/devtools"
	"wumpushunt/pkg/game/gameplay"
	"wumpushunt/pkg/game/renderer"
	ebitenrenderer "wumpushunt/pkg/game/renderer/ebiten"
	"wumpushunt/pkg/game/renderer/tui"
	"wumpushunt/pkg/game/state"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the settings file")
	rendererName := flag.String("renderer", "", "renderer backend (tui or ebiten), overrides the settings file")
	dumpMap := flag.String("dumpmap", "", "write a debug dump of the generated cave to this file (for developer testing)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Could not load settings: %v", err)
	}
	if *rendererName != "" {
		cfg.Renderer = *rendererName
	}

	gotext.Configure("locales", cfg.Locale, "default")

	s := gameplay.BuildSession()

	if *dumpMap != "" {
		if err := devtools.DumpWorldToFile(s.World, *dumpMap); err != nil {
			log.Fatalf("Could not dump map: %v", err)
		}
	}

	switch cfg.Renderer {
	case "ebiten":
		runEbiten(s)
	case "tui":
		runTUI(s, cfg)
	default:
		log.Fatalf("Unknown renderer: %q", cfg.Renderer)
	}
}

func runEbiten(s *state.Session) {
	r := ebitenrenderer.New(s)
	renderer.SetRenderer(r)
	renderer.Init()

	if err := r.Run(); err != nil {
		log.Fatalf("Renderer stopped: %v", err)
	}
}

func runTUI(s *state.Session, cfg *config.Config) {
	renderer.SetRenderer(tui.New(cfg.Color))
	renderer.Init()

	for {
		mainLoop(s)
	}
}

func mainLoop(s *state.Session) {
	now := time.Now()
	gameplay.Tick(s, now)

	renderer.Clear()
	renderer.RenderFrame(s)

	intent := renderer.GetInput()
	if intent.Action == input.ActionQuit {
		renderer.ShowMessage(gotext.Get("Goodbye."))
		os.Exit(0)
	}

	gameplay.ProcessIntent(s, intent, time.Now())
}
