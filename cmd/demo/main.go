package main

import (
	"flag"
	"fmt"
	"os"

	"deferred-shading/config"
	"deferred-shading/core"
	"deferred-shading/logging"
	"deferred-shading/renderer"
	"deferred-shading/scene"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config overlay")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New("demo", *debug || cfg.Debug)

	if err := run(cfg, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger logging.Logger) error {
	window, err := core.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	scn := scene.NewScene(cfg.Scene)

	engine, err := renderer.NewRenderEngine(window, cfg, scn, logger)
	if err != nil {
		return fmt.Errorf("failed to create render engine: %w", err)
	}
	defer engine.Destroy()

	cam := scene.NewOrbitCamera()
	scn.PlaceCamera(cam)
	controller := scene.NewOrbitController(cfg.Scene.AutoMotion)

	logger.Infof("Controls: hold left shift and drag; left turns, right zooms, middle pans. ESC quits.")

	overlay := &DebugOverlay{}
	for !window.ShouldClose() {
		t := window.Time()

		controller.Update(cam, window.Pointer(), t)
		view := scene.NewFrameView(cam, engine.Aspect())
		stats, err := engine.Render(view, scn.Lights(t, cam.Eye()), t)
		if err != nil {
			return err
		}
		engine.Present()

		if overlay.Tick(window.Time(), cfg.Window.Title, stats) {
			window.SetTitle(overlay.GetText())
		}
		window.PollEvents()
	}

	logger.Infof("Exiting...")
	return nil
}
