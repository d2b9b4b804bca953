// Command tankduel opens a window and runs a two-player tank duel.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plus3/tankduel/backend/ebitengine"
	"github.com/plus3/tankduel/config"
	imguiebiten "github.com/plus3/tankduel/engine/debugui/ebiten"
	"github.com/plus3/tankduel/session"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "TOML settings file, empty for the defaults.")
	overlay := flag.Bool("debug", false, "Show the debug overlay.")
	flag.Parse()

	if err := run(*configPath, *overlay); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, overlay bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if overlay {
		cfg.Debug.Overlay = true
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	s, err := session.New(cfg, log)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := []ebitengine.AppOption{ebitengine.WithAppLogger(s.Logger())}
	if cfg.Debug.Overlay {
		arena := s.Layout.Arena()
		backend := imguiebiten.NewImguiBackend(cfg.Window.Title+" debug", arena.Width*cfg.Window.Scale, arena.Height*cfg.Window.Scale)
		opts = append(opts, ebitengine.WithLayer(imguiebiten.NewLayer(backend)))
	}

	app := ebitengine.NewApp(s.Game, s.Frames, s.Hub, opts...)

	s.Logger().Info("window opening", zap.String("title", cfg.Window.Title), zap.Bool("overlay", cfg.Debug.Overlay))
	return ebitengine.Run(app, ebitengine.WindowOptions{
		Title: cfg.Window.Title,
		Scale: cfg.Window.Scale,
		TPS:   cfg.Window.TPS,
	})
}
