package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/ecarlucci/tessera/internal/backend"
	"github.com/ecarlucci/tessera/internal/config"
	"github.com/ecarlucci/tessera/internal/key"
	"github.com/ecarlucci/tessera/internal/view"
)

// Options configures an App.
type Options struct {
	// Backend is the terminal to run on. Defaults to the real tty.
	Backend backend.Backend

	// Poll bounds the wait for input so the screen re-renders
	// periodically even without events. Defaults to 100ms.
	Poll time.Duration

	// Logger receives lifecycle and dispatch logs. Defaults to the
	// standard logger on stderr.
	Logger *Logger

	// QuitKeys are chords that end the run loop. Defaults to Ctrl+C
	// and Ctrl+Q.
	QuitKeys []key.Event
}

// App owns the run loop: render the screen, wait for input with a
// bounded poll, dispatch, repeat until a quit chord or backend
// shutdown.
type App struct {
	screen   *view.Screen
	backend  backend.Backend
	poll     time.Duration
	logger   *Logger
	quitKeys []key.Event
}

// New creates an app for the given screen.
func New(screen *view.Screen, opts Options) (*App, error) {
	if screen == nil {
		return nil, ErrNoScreen
	}

	b := opts.Backend
	if b == nil {
		term, err := backend.NewTerminal()
		if err != nil {
			return nil, fmt.Errorf("opening terminal: %w", err)
		}
		b = term
	}

	poll := opts.Poll
	if poll <= 0 {
		poll = 100 * time.Millisecond
	}

	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(DefaultLoggerConfig())
	}

	quitKeys := opts.QuitKeys
	if len(quitKeys) == 0 {
		quitKeys = []key.Event{
			key.NewRuneEvent('c', key.ModCtrl),
			key.NewRuneEvent('q', key.ModCtrl),
		}
	}

	return &App{
		screen:   screen,
		backend:  b,
		poll:     poll,
		logger:   logger,
		quitKeys: quitKeys,
	}, nil
}

// FromConfig builds options from a loaded configuration.
func FromConfig(cfg config.Config) Options {
	logCfg := DefaultLoggerConfig()
	logCfg.Level = ParseLogLevel(cfg.Log.Level)
	logger := NewLogger(logCfg)

	return Options{
		Poll:   cfg.PollInterval(),
		Logger: logger,
	}
}

// Screen returns the app's screen.
func (a *App) Screen() *view.Screen {
	return a.screen
}

// Run drives the render/poll/dispatch loop until a quit chord arrives
// or the backend closes its event channel. The terminal is always
// restored, including on panic.
func (a *App) Run() (err error) {
	if initErr := a.backend.Init(); initErr != nil {
		return fmt.Errorf("initializing backend: %w", initErr)
	}
	// Deferred so the terminal is restored even when a widget hook
	// panics mid-dispatch.
	defer a.backend.Fini()

	a.logger.Info("run loop started")

	ticker := time.NewTicker(a.poll)
	defer ticker.Stop()

	for {
		a.render()

		select {
		case ev, ok := <-a.backend.Events():
			if !ok {
				a.logger.Info("backend closed, exiting")
				return nil
			}
			if err := a.dispatch(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					a.logger.Info("quit requested")
					return nil
				}
				return err
			}
		case <-ticker.C:
			// Periodic re-render, nothing to dispatch.
		}
	}
}

// render draws the screen into the backend.
func (a *App) render() {
	a.backend.Clear()
	a.screen.Render(a.backend)
	a.backend.Show()
}

// dispatch routes one event. Quit chords return ErrQuit; everything
// else goes to the screen's focus registry.
func (a *App) dispatch(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		for _, quit := range a.quitKeys {
			if ev.Key == quit {
				return ErrQuit
			}
		}
		a.logger.Debug("key %s", ev.Key.String())
		a.screen.HandleKey(ev.Key)
	case backend.EventResize:
		a.logger.Debug("resize to %dx%d", ev.Width, ev.Height)
	}
	return nil
}
