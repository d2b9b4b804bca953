// Command tankduel-tty runs the duel in a text terminal. Tanks and lasers are
// drawn as colored cells; Escape or Ctrl-C quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tankduel/backend/terminal"
	"github.com/plus3/tankduel/config"
	"github.com/plus3/tankduel/session"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "TOML settings file, empty for the defaults.")
	logPath := flag.String("log", "", "Write logs to this file; the screen is not used for logging.")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log := zap.NewNop()
	if logPath != "" {
		logCfg := cfg.Logging
		logCfg.Format = "json"
		built, err := config.NewFileLogger(logCfg, logPath)
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		log = built
		defer log.Sync()
	}

	s, err := session.New(cfg, log)
	if err != nil {
		return err
	}
	defer s.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := terminal.New(screen, s.Game, s.Frames, s.Hub,
		terminal.WithInterval(cfg.Window.TickInterval()),
		terminal.WithLogger(s.Logger()))
	return term.Run(ctx)
}
