package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halyard/quarterdeck/internal/config"
	"github.com/halyard/quarterdeck/internal/journal"
	"github.com/halyard/quarterdeck/internal/overlay"
	"github.com/halyard/quarterdeck/internal/perspective"
	"github.com/halyard/quarterdeck/internal/perspectives/activity"
	"github.com/halyard/quarterdeck/internal/perspectives/settings"
	"github.com/halyard/quarterdeck/internal/perspectives/welcome"
	"github.com/halyard/quarterdeck/internal/shell"
)

func main() {
	startup := flag.String("perspective", "", "open this perspective and lock the session to it")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := newLogger(*logPath)

	if err := os.MkdirAll(filepath.Dir(cfg.Journal.Path), 0o755); err != nil {
		log.Fatalf("mkdir journal dir: %v", err)
	}
	db, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		log.Fatalf("open journal: %v", err)
	}
	defer db.Close()
	if err := journal.Migrate(db); err != nil {
		log.Fatalf("migrate journal: %v", err)
	}
	store := journal.NewStore(db)

	// Hosting pieces: bundle loader, shell, controller.
	bundles := overlay.NewLoader(cfg.UI.LocalesDir, cfg.UI.Locale)
	sh := shell.New(cfg.UI.OverlayRoot, shell.NewKeyRegistry(shell.DefaultKeyBindings()), logger)
	ctrl := perspective.NewController(bundles, logger)
	ctrl.SetShell(sh)
	sh.SetMenuSource(menuSource(ctrl))

	// Built-in perspectives. Plugins would do exactly this: register
	// with the controller and claim a deck slot for their view.
	builtins := []interface {
		perspective.Perspective
		shell.View
	}{
		welcome.New(),
		activity.New(store),
		settings.New(cfg),
	}
	for _, p := range builtins {
		if err := ctrl.Register(p); err != nil {
			log.Fatalf("register %s: %v", p.ID(), err)
		}
		sh.Deck().AddSlot(perspective.ViewSlotID(p.ID()), p)
	}

	// Startup perspective: flag wins over config. The explicit
	// activation runs the full sequence so overlays and handlers are
	// applied before the first frame.
	target := cfg.Startup.Perspective
	lock := cfg.Startup.Lock
	if *startup != "" {
		target = *startup
		lock = true
	}
	if target == "" {
		target = ctrl.Active().ID()
	}
	if errs, err := ctrl.ActivateID(target); err != nil {
		var nf *perspective.NotFoundError
		if errors.As(err, &nf) {
			log.Fatalf("startup perspective: %v", nf)
		}
		log.Fatalf("activate %s: %v", target, err)
	} else if len(errs) > 0 {
		for _, oe := range errs {
			logger.Warn("startup overlay failure", "uri", oe.URI, "phase", oe.Phase, "err", oe.Err)
		}
	}
	if lock {
		ctrl.SetLocked(true)
		sh.RefreshMenus()
	}

	m := shell.NewModel(sh, ctrl)
	m.OnSwitch = func(prev, next string, overlayFailures int) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := store.Record(ctx, next, prev, overlayFailures); err != nil {
			logger.Warn("journal record failed", "err", err)
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// menuSource maps controller state to the shell's menu line.
func menuSource(ctrl *perspective.Controller) shell.MenuSource {
	return func() shell.MenuState {
		list := ctrl.List()
		activeID := ""
		if p := ctrl.Active(); p != nil {
			activeID = p.ID()
		}
		items := make([]shell.MenuItem, 0, len(list))
		for i, p := range list {
			items = append(items, shell.MenuItem{
				Index:  i + 1,
				ID:     p.ID(),
				Title:  p.ID(),
				Active: p.ID() == activeID,
			})
		}
		return shell.MenuState{Items: items, Locked: ctrl.Locked()}
	}
}

func newLogger(path string) *slog.Logger {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("warn: log file unavailable: %v", err)
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
