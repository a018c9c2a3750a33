// Package main is a small demo of the tessera widget layer: a wrapped
// paragraph with a fixed preferred size, a bordered paragraph, and two
// tagged input fields reachable with Tab / Shift+Tab and from Lua.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ecarlucci/tessera/internal/app"
	"github.com/ecarlucci/tessera/internal/clipboard"
	"github.com/ecarlucci/tessera/internal/config"
	"github.com/ecarlucci/tessera/internal/script"
	"github.com/ecarlucci/tessera/internal/style"
	"github.com/ecarlucci/tessera/internal/theme"
	"github.com/ecarlucci/tessera/internal/view"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		scriptPath  string
		logLevel    string
		watchConfig bool
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&scriptPath, "script", "", "Lua script to run at startup")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&watchConfig, "watch", false, "Reload theme when the config file changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("tessera-demo %s\n", version)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if scriptPath == "" {
		scriptPath = cfg.Script.File
	}

	opts := app.FromConfig(cfg)
	logger := opts.Logger
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logger.SetOutput(f)
	} else {
		// The UI owns the terminal; stderr logging would scribble on it.
		logger.Disable()
	}

	th, err := theme.FromSettings(cfg.Theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen := buildScreen(th)

	application, err := app.New(screen, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	engine := script.New(screen, clipboard.NewSystem())
	defer engine.Close()
	if scriptPath != "" {
		if err := engine.DoFile(scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if watchConfig && configPath != "" {
		watcher, err := config.WatchFile(configPath, 250*time.Millisecond, func(next config.Config) {
			applyTheme(screen, next, logger)
		}, func(err error) {
			logger.Warn("config reload failed: %v", err)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer watcher.Close()
	}

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// fieldTags names the demo's tagged input fields.
var fieldTags = []string{"input_field0", "input_field1"}

// buildScreen assembles the demo layout: a sized paragraph, a bordered
// paragraph, and a column with two tagged input fields.
func buildScreen(th theme.Theme) *view.Screen {
	builder := view.NewBuilder()

	left := view.NewSized(16, 16,
		view.NewParagraph("HELLO\n(This view has a preferred size of 16*16)").
			Bg(style.ColorYellow).
			Fg(style.ColorBlack).
			Wrap())

	middle := view.NewParagraph(
		"WORLD\n(This view doesn't have a preferred size, it just spreads out equally with other views)").
		Bg(style.ColorCyan).
		Fg(style.ColorBlack).
		Box("Borders!").
		Wrap()

	field0 := th.ApplyInput(view.NewInputField().
		Placeholder("Type something here..."))
	field1 := th.ApplyInput(view.NewInputField().
		Placeholder("Type something here...").
		Text("UTF-8 文本编辑!").
		CaretAtEnd())

	right := view.VStack(
		builder.TaggedCell(fieldTags[0], field0),
		view.NewSized(0, 4, builder.TaggedCell(fieldTags[1], field1)),
	)

	return builder.Finish(view.HStack(left, middle, right))
}

// applyTheme restyles the tagged fields after a config reload.
func applyTheme(screen *view.Screen, cfg config.Config, logger *app.Logger) {
	th, err := theme.FromSettings(cfg.Theme)
	if err != nil {
		logger.Warn("ignoring reloaded theme: %v", err)
		return
	}
	for _, tag := range fieldTags {
		err := view.InspectTag(screen, tag, func(in *view.InputField) {
			th.ApplyInput(in)
		})
		if err != nil {
			logger.Warn("restyling %s: %v", tag, err)
		}
	}
	logger.Info("theme reloaded")
}
