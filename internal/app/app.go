package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termplay/internal/config"
	"github.com/dshills/termplay/internal/demo"
	"github.com/dshills/termplay/internal/demo/loader"
	"github.com/dshills/termplay/internal/demo/watcher"
	"github.com/dshills/termplay/internal/event"
	"github.com/dshills/termplay/internal/playback"
	"github.com/dshills/termplay/internal/style"
	"github.com/dshills/termplay/internal/surface"
)

// mainSurfaceID names the one terminal surface the interactive UI drives.
const mainSurfaceID = "main"

// Application owns the player and its surroundings for the lifetime of
// one interactive run.
type Application struct {
	opts     Options
	cfg      *config.Config
	logger   *Logger
	logFile  *os.File
	bus      *event.Bus
	builtin  *demo.Catalog
	registry *surface.Registry
	player   *playback.Player
	screen   tcell.Screen
	term     *surface.Terminal
	watcher  *watcher.Watcher

	lastDemo string
	quit     chan struct{}
}

// New builds the application from options and configuration. No terminal
// state is touched until Run.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	level := ParseLogLevel(cfg.Log.Level)
	if opts.LogLevel != "" {
		level = ParseLogLevel(opts.LogLevel)
	}

	var logFile *os.File
	var out io.Writer = os.Stderr
	if cfg.Log.File != "" {
		logFile, err = os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = logFile
	}
	logger := NewLogger(level, out)

	theme := style.DefaultTheme()
	for tag, hex := range cfg.Theme {
		c, err := style.FromHex(hex)
		if err != nil {
			closeFile(logFile)
			return nil, fmt.Errorf("theme.%s: %w", tag, err)
		}
		theme = theme.With(demo.ColorTag(tag), c)
	}

	builtin := demo.Builtin()
	catalog, err := loader.Merge(builtin, cfg.Catalog.Paths...)
	if err != nil {
		closeFile(logFile)
		return nil, err
	}

	bus := event.NewBus()
	registry := surface.NewRegistry()
	player := playback.NewPlayer(catalog, registry,
		playback.WithTypingInterval(cfg.TypingInterval()),
		playback.WithBus(bus),
		playback.WithTheme(theme),
	)

	a := &Application{
		opts:     opts,
		cfg:      cfg,
		logger:   logger,
		logFile:  logFile,
		bus:      bus,
		builtin:  builtin,
		registry: registry,
		player:   player,
		quit:     make(chan struct{}),
	}
	a.subscribeLogging()
	return a, nil
}

func closeFile(f *os.File) {
	if f != nil {
		_ = f.Close()
	}
}

// subscribeLogging mirrors playback events into the log.
func (a *Application) subscribeLogging() {
	log := a.logger.WithComponent("playback")
	a.bus.SubscribeAll(func(e event.Event) {
		switch e.Type {
		case event.DemoNotFound:
			log.Warn("demo %q not found for surface %q", e.Demo, e.Surface)
		case event.SurfaceNotFound:
			log.Warn("surface %q not found for demo %q", e.Surface, e.Demo)
		case event.PlaybackStarted, event.PlaybackFinished, event.PlaybackCancelled:
			log.Info("%s demo=%s surface=%s session=%s", e.Type, e.Demo, e.Surface, e.Session)
		case event.LineRendered:
			log.Debug("line %d rendered on %s: %s", e.Line, e.Surface, e.Text)
		case event.CatalogReloaded:
			log.Info("catalog reloaded")
		}
	})
}

// DemoNames returns the catalog's demo names in sorted order.
func (a *Application) DemoNames() []string {
	return a.player.Catalog().Names()
}

// Run initializes the terminal, plays the startup demo, and services key
// and resize events until the user quits.
func (a *Application) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	a.screen = screen

	a.term = surface.NewTerminal(mainSurfaceID, screen)
	if err := a.registry.Add(a.term); err != nil {
		screen.Fini()
		return err
	}

	if a.cfg.Catalog.Watch && len(a.cfg.Catalog.Paths) > 0 {
		if err := a.startWatcher(); err != nil {
			a.logger.Warn("catalog watch disabled: %v", err)
		}
	}

	startup := a.cfg.Playback.DefaultDemo
	if a.opts.Demo != "" {
		startup = a.opts.Demo
	}
	if startup != "" {
		a.play(startup)
	}

	return a.eventLoop()
}

// startWatcher begins reloading catalogs on file changes.
func (a *Application) startWatcher() error {
	w, err := watcher.New(a.cfg.WatchDebounce(), a.cfg.Catalog.Paths...)
	if err != nil {
		return err
	}
	a.watcher = w

	log := a.logger.WithComponent("watcher")
	go func() {
		for {
			select {
			case path, ok := <-w.Events():
				if !ok {
					return
				}
				log.Debug("catalog file changed: %s", path)
				a.reloadCatalog()
			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				log.Error("watch error: %v", err)
			}
		}
	}()
	return nil
}

// reloadCatalog re-layers every configured catalog file over the builtin
// demos. A file that fails to parse leaves the current catalog in place.
func (a *Application) reloadCatalog() {
	catalog, err := loader.Merge(a.builtin, a.cfg.Catalog.Paths...)
	if err != nil {
		a.logger.Error("catalog reload failed: %v", err)
		return
	}
	a.player.SetCatalog(catalog)
	a.bus.Publish(event.Event{Type: event.CatalogReloaded, Time: time.Now()})
}

func (a *Application) play(name string) {
	a.lastDemo = name
	a.player.PlayDemo(mainSurfaceID, name)
}

// eventLoop services terminal input until quit. Digits select demos by
// their position in the sorted name list, r replays the last demo, and
// q, Escape, or Ctrl+C quits.
func (a *Application) eventLoop() error {
	for {
		select {
		case <-a.quit:
			return nil
		default:
		}

		ev := a.screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			if a.handleKey(tev) {
				return nil
			}
		case *tcell.EventResize:
			a.screen.Sync()
			a.term.Redraw()
		case nil:
			// Screen finalized.
			return nil
		}
	}
}

// handleKey reacts to one key event and reports whether to quit.
func (a *Application) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == 'q':
			return true
		case r == 'r':
			if a.lastDemo != "" {
				a.play(a.lastDemo)
			}
		case r >= '1' && r <= '9':
			names := a.DemoNames()
			idx := int(r - '1')
			if idx < len(names) {
				a.play(names[idx])
			}
		}
	}
	return false
}

// Shutdown stops playback and restores the terminal. Safe to call more
// than once.
func (a *Application) Shutdown() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}

	a.player.CancelAll()
	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
	if a.screen != nil {
		a.screen.Fini()
		a.screen = nil
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}
